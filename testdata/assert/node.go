// Package assert contains test assertions for model elements.
package assert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/damedic/fhir-model-go/model"
	"github.com/google/go-cmp/cmp"
)

// NodeEqual fails the test if expected and actual are not structurally equal.
// The difference is reported as a diff of both trees.
func NodeEqual(t *testing.T, expected, actual model.Element) {
	t.Helper()
	if model.Equal(expected, actual) {
		return
	}
	t.Errorf("elements differ (-expected +actual):\n%s", cmp.Diff(Dump(expected), Dump(actual)))
}

// NodeNotEqual fails the test if expected and actual are structurally equal.
func NodeNotEqual(t *testing.T, expected, actual model.Element) {
	t.Helper()
	if model.Equal(expected, actual) {
		t.Errorf("elements are equal, expected them to differ:\n%s", strings.Join(Dump(actual), "\n"))
	}
}

// Dump renders an element tree, one line per element or value, indented by depth.
// The root element is rendered by its type name only.
func Dump(e model.Element) []string {
	if model.IsNil(e) {
		return []string{"<nil>"}
	}
	d := &dumper{}
	e.Accept("", model.NoIndex, d)
	return d.lines
}

type dumper struct {
	depth int
	lines []string
}

func label(name string, index int) string {
	if index == model.NoIndex {
		return name
	}
	return fmt.Sprintf("%s[%d]", name, index)
}

func (d *dumper) PreVisit(e model.Element) bool { return true }

func (d *dumper) VisitStart(name string, index int, e model.Element) {
	line := e.TypeName()
	if name != "" {
		line = label(name, index) + ": " + line
	}
	d.lines = append(d.lines, strings.Repeat("  ", d.depth)+line)
	d.depth++
}

func (d *dumper) Visit(name string, index int, e model.Element) bool { return true }

func (d *dumper) VisitEnd(name string, index int, e model.Element) {
	d.depth--
}

func (d *dumper) PostVisit(e model.Element) {}

func (d *dumper) VisitValue(name string, index int, value any) {
	if s, ok := value.(fmt.Stringer); ok {
		value = s.String()
	}
	d.lines = append(d.lines, fmt.Sprintf("%s%s = %#v", strings.Repeat("  ", d.depth), label(name, index), value))
}
