package generate

import (
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// ImplResourceGenerator emits ResourceType. The remaining resource accessors
// are promoted from the embedded model.ResourceFields.
type ImplResourceGenerator struct {
	NoOpGenerator
}

func (g ImplResourceGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	if !rt.IsResource {
		return false
	}
	f.Func().Params(Id("r").Op("*").Id(rt.Name)).Id("ResourceType").Params().String().Block(
		Return(Lit(rt.Structs[0].MarshalName)),
	)
	f.Line()
	return true
}
