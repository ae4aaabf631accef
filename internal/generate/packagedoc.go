package generate

import (
	"fmt"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// ModelPkgDocGenerator emits the package comment of a release.
type ModelPkgDocGenerator struct {
	NoOpGenerator
}

func (g ModelPkgDocGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	pkg := strings.ToLower(release)

	var resources []string
	for _, r := range ir.FilterResources(rt) {
		resources = append(resources, r.Name)
	}

	file := f("doc", pkg)
	file.PackageComment(fmt.Sprintf("Package %s provides generated models for FHIR release %s.", pkg, release))
	file.PackageComment("")
	file.PackageComment("Every type is built with its builder and immutable afterwards:")
	file.PackageComment("")
	file.PackageComment("\tb := " + pkg + ".NewIdentifierBuilder()")
	file.PackageComment("\tb.System = " + pkg + ".NewUri(\"urn:oid:1.2.36.146.595.217.0.1\")")
	file.PackageComment("\tid, err := b.Build()")
	if len(resources) > 0 {
		file.PackageComment("")
		file.PackageComment("Resources: " + strings.Join(resources, ", ") + ".")
	}
}
