package generate

import (
	"go/token"
	"slices"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

// coreTypes are provided by the model package instead of being generated.
var coreTypes = []string{"Extension", "Meta", "Narrative", "Coding"}

// fieldGroup returns the names of the field group and its builder a struct embeds.
func fieldGroup(s ir.Struct) (fields string, builder string) {
	switch {
	case s.IsDomainResource:
		return "DomainResourceFields", "DomainResourceBuilder"
	case s.IsResource:
		return "ResourceFields", "ResourceBuilder"
	case s.IsBackbone:
		return "BackboneElementFields", "BackboneElementBuilder"
	default:
		return "ElementFields", "ElementBuilder"
	}
}

// groupMethod returns the name of a method of the embedded field group,
// e.g. "AcceptDomainResourceFields" or "HasDomainResourceChildren".
func groupMethod(s ir.Struct, prefix string, suffix string) string {
	fields, _ := fieldGroup(s)
	return prefix + strings.TrimSuffix(fields, "Fields") + suffix
}

// privateName is the name of the unexported struct field holding a field's value.
func privateName(f ir.StructField) string {
	name := strcase.ToLowerCamel(f.MarshalName)
	if token.IsKeyword(name) || name == "hashCache" {
		name += "_"
	}
	return name
}

func isDecimalValue(s ir.Struct, f ir.StructField) bool {
	return s.Name == "Decimal" && f.Name == "Value"
}

// unionName is the name of the interface of a polymorphic field.
func unionName(s ir.Struct, f ir.StructField) string {
	return s.Name + f.Name
}

// closedUnion reports whether a marker method can be added to every possible type of a polymorphic field.
// Types of other packages can not get one, so such fields fall back to model.Element.
func closedUnion(f ir.StructField) bool {
	for _, t := range f.PossibleTypes {
		if slices.Contains(coreTypes, t.Name) || t.IsNestedResource {
			return false
		}
	}
	return true
}

// elemType returns the type of a single value of the field.
func elemType(s ir.Struct, f ir.StructField) *Statement {
	if f.Polymorph {
		return Id(unionName(s, f))
	}

	t := f.PossibleTypes[0]
	switch {
	case t.IsNestedResource:
		return Qual(modelPkg, "Resource")
	case isDecimalValue(s, f):
		return Op("*").Qual(apdPkg, "Decimal")
	case t.IsGoValue():
		return Id(t.Name)
	case slices.Contains(coreTypes, t.Name):
		return Op("*").Qual(modelPkg, t.Name)
	default:
		return Op("*").Id(t.Name)
	}
}

// fieldType returns the type of the struct and builder field.
func fieldType(s ir.Struct, f ir.StructField) *Statement {
	if f.Multiple {
		return Index().Add(elemType(s, f))
	}
	if !f.Polymorph && f.PossibleTypes[0].IsGoValue() && !isDecimalValue(s, f) {
		return Op("*").Add(elemType(s, f))
	}
	return elemType(s, f)
}

// isGoValue reports whether the field holds plain Go values instead of elements.
func isGoValue(s ir.Struct, f ir.StructField) bool {
	return !f.Polymorph && (f.PossibleTypes[0].IsGoValue() || isDecimalValue(s, f))
}

// interfaceFor returns the model interface a struct satisfies.
func interfaceFor(s ir.Struct) string {
	switch {
	case s.IsDomainResource:
		return "DomainResource"
	case s.IsResource:
		return "Resource"
	case s.IsBackbone:
		return "BackboneElement"
	default:
		return "Element"
	}
}

func docComment(g *Group, doc string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		g.Comment(line)
	}
}

func stringLits(values []string) []Code {
	codes := make([]Code, 0, len(values))
	for _, v := range values {
		codes = append(codes, Lit(v))
	}
	return codes
}
