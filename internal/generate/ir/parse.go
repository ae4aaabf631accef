package ir

import (
	"fmt"
	"slices"
	"strings"

	coremodel "github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/internal/generate/model"
)

var (
	primitives = []string{
		"base64Binary",
		"boolean",
		"canonical",
		"code",
		"date",
		"dateTime",
		"decimal",
		"id",
		"instant",
		"integer",
		"integer64",
		"markdown",
		"oid",
		"positiveInt",
		"string",
		"time",
		"unsignedInt",
		"uri",
		"url",
		"uuid",
		"xhtml",
	}
	notDomainResources = []string{"Binary", "Bundle", "Parameters"}
	// types provided by the core model package, never generated
	coreTypes = []string{"Element", "BackboneElement", "Resource", "DomainResource", "Extension", "Meta", "Narrative", "Coding"}

	elementFields         = []string{"id", "extension"}
	backboneElementFields = []string{"id", "extension", "modifierExtension"}
	resourceFields        = []string{"id", "meta", "implicitRules", "language"}
	domainResourceFields  = []string{"id", "meta", "implicitRules", "language", "text", "contained", "extension", "modifierExtension"}
)

// Parse parses a FHIR Bundle of StructureDefinitions into the intermediate representation.
//
// If types is not empty, only the named resources and types are returned.
func Parse(bundle *model.Bundle, types ...string) ([]ResourceOrType, error) {
	var resourcesOrTypes []ResourceOrType

	for _, s := range flattenBundle(bundle) {
		if s.Kind == "logical" || s.Abstract {
			continue
		}
		if slices.Contains(coreTypes, s.Name) {
			continue
		}
		if len(types) > 0 && !slices.Contains(types, s.Name) {
			continue
		}
		// profiles constrain a base type, they are not generated as types of their own
		if s.Type != "" && s.Type != s.Name && s.Kind != "primitive-type" {
			continue
		}

		isResource := s.Kind == "resource"
		isDomainResource := isResource && !slices.Contains(notDomainResources, s.Name)

		structs, err := parseStructs(
			s.Name,
			isResource,
			isDomainResource,
			false,
			s.BaseDefinition,
			s.Snapshot.Element,
			s.Type,
			strings.TrimSpace(fmt.Sprintf("%s\n\n%s", s.Description, s.Purpose)),
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.Name, err)
		}

		resourcesOrTypes = append(resourcesOrTypes, ResourceOrType{
			Name:        toGoTypeCasing(s.Name),
			FileName:    toGoFileCasing(s.Name),
			IsResource:  isResource,
			IsPrimitive: slices.Contains(primitives, s.Name),
			Structs:     structs,
		})
	}

	return resourcesOrTypes, nil
}

func flattenBundle(bundle *model.Bundle) []*model.StructureDefinition {
	var definitions []*model.StructureDefinition

	for _, e := range bundle.Entry {
		if sd, ok := e.Resource.(*model.StructureDefinition); ok {
			definitions = append(definitions, sd)
		}
	}

	return definitions
}

func parseStructs(
	name string,
	isResource bool,
	isDomainResource bool,
	isBackbone bool,
	baseDefinition string,
	elementDefinitions []model.ElementDefinition,
	elementPathStripPrefix string,
	docComment string,
) ([]Struct, error) {
	structName := toGoTypeCasing(name)

	groupedDefinitions := groupElementDefinitionsByPrefix(elementDefinitions, elementPathStripPrefix)

	// e.g. "http://hl7.org/fhir/StructureDefinition/uri" -> "uri"
	baseType := ""
	if baseDefinition != "" {
		parts := strings.Split(baseDefinition, "/")
		baseType = parts[len(parts)-1]
	}

	parsedStructs := []Struct{{
		Name:             structName,
		MarshalName:      name,
		IsResource:       isResource,
		IsDomainResource: isDomainResource,
		IsPrimitive:      slices.Contains(primitives, name),
		IsBackbone:       isBackbone,
		BaseType:         baseType,
		DocComment:       docComment,
	}}

	inherited := elementFields
	switch {
	case isDomainResource:
		inherited = domainResourceFields
	case isResource:
		inherited = resourceFields
	case isBackbone:
		inherited = backboneElementFields
	}

	for _, g := range groupedDefinitions {
		if g.definitions[0].Max == "0" {
			continue
		}
		if slices.Contains(inherited, g.fieldName) {
			continue
		}

		typeName := structName + toGoTypeCasing(g.fieldName)

		if len(g.definitions) > 1 {
			nested, err := parseStructs(
				typeName,
				false,
				false,
				isBackboneDefinition(g.definitions[0]),
				"", // backbone elements don't have baseDefinition
				g.definitions,
				g.definitions[0].Path,
				g.definitions[0].Definition,
			)
			if err != nil {
				return nil, err
			}
			parsedStructs = append(parsedStructs, nested...)
		}

		field, err := parseField(structName, g.definitions[0], elementPathStripPrefix)
		if err != nil {
			return nil, err
		}
		parsedStructs[0].Fields = append(parsedStructs[0].Fields, field)
	}

	return parsedStructs, nil
}

func isBackboneDefinition(d model.ElementDefinition) bool {
	return len(d.Type) > 0 && d.Type[0].Code == "BackboneElement"
}

type definitionsGroup struct {
	fieldName   string
	definitions []model.ElementDefinition
}

func groupElementDefinitionsByPrefix(elementDefinitions []model.ElementDefinition, stripPrefix string) []definitionsGroup {
	var grouped []definitionsGroup

	for _, d := range elementDefinitions {
		if d.Path == stripPrefix || !strings.HasPrefix(d.Path, stripPrefix+".") {
			continue
		}

		fieldName := strings.SplitN(d.Path[len(stripPrefix)+1:], ".", 2)[0]

		if len(grouped) == 0 || grouped[len(grouped)-1].fieldName != fieldName {
			grouped = append(grouped, definitionsGroup{
				fieldName: fieldName,
			})
		}

		grouped[len(grouped)-1].definitions = append(grouped[len(grouped)-1].definitions, d)
	}

	return grouped
}

func parseField(
	structName string,
	elementDefinition model.ElementDefinition,
	elementPathStripPrefix string,
) (StructField, error) {
	fieldName := elementDefinition.Path[len(elementPathStripPrefix)+1:]
	fieldName, polymorph := strings.CutSuffix(fieldName, "[x]")

	var fieldTypes []FieldType
	if polymorph {
		for _, t := range elementDefinition.Type {
			fieldTypes = append(fieldTypes, matchFieldType(elementDefinition.Path, t))
		}
	} else if elementDefinition.Type != nil {
		switch t := elementDefinition.Type[0]; t.Code {
		case "BackboneElement", "Element":
			fieldTypes = append(fieldTypes, FieldType{
				Name: structName + toGoTypeCasing(fieldName),
				Code: structName + toGoTypeCasing(fieldName),
			})
		default:
			fieldTypes = append(fieldTypes, matchFieldType(elementDefinition.Path, t))
		}
	} else if elementDefinition.ContentReference != "" {
		// content reference, strip "#"
		ref := toGoTypeCasing(strings.ReplaceAll(elementDefinition.ContentReference[1:], ".", "_"))
		fieldTypes = append(fieldTypes, FieldType{
			Name: ref,
			Code: ref,
		})
	} else {
		return StructField{}, fmt.Errorf("element %s has no type", elementDefinition.Path)
	}

	cardinality, err := coremodel.ParseCardinality(elementDefinition.Min, elementDefinition.Max)
	if err != nil {
		return StructField{}, fmt.Errorf("element %s: %w", elementDefinition.Path, err)
	}

	return StructField{
		Name:          toGoFieldCasing(fieldName),
		MarshalName:   fieldName,
		PossibleTypes: fieldTypes,
		Polymorph:     polymorph,
		Multiple:      cardinality.Repeated(),
		Optional:      cardinality.Min == 0,
		Cardinality:   cardinality,
		DocComment:    elementDefinition.Definition,
	}, nil
}

func matchFieldType(path string, t model.ElementDefinitionType) FieldType {
	var fieldType FieldType

	// type like http://hl7.org/fhirpath/System.String
	switch code := t.Code[strings.LastIndex(t.Code, "/")+1:]; code {
	case "System.Boolean":
		fieldType.Name = "bool"
	case "System.Integer":
		switch path {
		case "integer64.value":
			fieldType.Name = "int64"
		default:
			fieldType.Name = "int32"
		}
	case "System.String":
		switch path {
		case "unsignedInt.value", "positiveInt.value":
			fieldType.Name = "uint32"
		default:
			fieldType.Name = "string"
		}
	case "System.Decimal", "System.Date", "System.DateTime", "System.Time":
		fieldType.Name = "string"
	case "Resource":
		fieldType.Name = "Resource"
		fieldType.Code = "Resource"
		fieldType.IsNestedResource = true
	default:
		fieldType.Name = toGoTypeCasing(code)
		fieldType.Code = code
		fieldType.IsPrimitive = slices.Contains(primitives, code)
		if code == "Reference" {
			fieldType.TargetTypes = targetTypes(t.TargetProfile)
		}
	}
	if fieldType.Code == "" {
		fieldType.Code = fieldType.Name
	}

	return fieldType
}

// targetTypes converts target profiles like "http://hl7.org/fhir/StructureDefinition/Patient"
// to resource types. A target of "Resource" allows any type.
func targetTypes(profiles []string) []string {
	var types []string
	for _, p := range profiles {
		t := p[strings.LastIndex(p, "/")+1:]
		if t == "Resource" {
			return nil
		}
		types = append(types, t)
	}
	return types
}
