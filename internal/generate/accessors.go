package generate

import (
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// AccessorsGenerator emits read accessors for the declared fields.
//
// Repeated fields are returned as copies, so callers can never change an element.
type AccessorsGenerator struct {
	NoOpGenerator
}

func (g AccessorsGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		for _, sf := range s.Fields {
			generateAccessor(f, s, sf)
		}
	}
	return true
}

func generateAccessor(f *File, s ir.Struct, sf ir.StructField) {
	field := Id("r").Dot(privateName(sf))
	recv := Id("r").Op("*").Id(s.Name)

	switch {
	case sf.Multiple:
		f.Commentf("%s returns a copy of the %s entries.", sf.Name, sf.MarshalName)
		f.Func().Params(recv).Id(sf.Name).Params().Add(fieldType(s, sf)).Block(
			Return(Qual("slices", "Clone").Call(field)),
		)
	case isDecimalValue(s, sf):
		f.Commentf("%s returns a copy of the %s, if set.", sf.Name, sf.MarshalName)
		f.Func().Params(recv).Id(sf.Name).Params().Params(elemType(s, sf), Bool()).Block(
			Return(Id("cloneDecimal").Call(field), field.Clone().Op("!=").Nil()),
		)
	case isGoValue(s, sf):
		f.Commentf("%s returns the %s, if set.", sf.Name, sf.MarshalName)
		f.Func().Params(recv).Id(sf.Name).Params().Params(elemType(s, sf), Bool()).Block(
			Return(Qual(ptrPkg, "Deref").Call(field), field.Clone().Op("!=").Nil()),
		)
	default:
		f.Commentf("%s returns the %s, or nil.", sf.Name, sf.MarshalName)
		f.Func().Params(recv).Id(sf.Name).Params().Add(fieldType(s, sf)).Block(
			Return(field),
		)
	}
	f.Line()
}
