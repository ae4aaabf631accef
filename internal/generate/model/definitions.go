// Package model contains the subset of the FHIR definition resources the generator reads.
package model

import (
	"encoding/json"
	"fmt"
)

// Bundle is a FHIR Bundle holding definition resources.
type Bundle struct {
	Entry []BundleEntry `json:"entry"`
}

// BundleEntry holds a single definition resource.
//
// Only StructureDefinitions are decoded, all other resources are skipped.
type BundleEntry struct {
	Resource any
}

func (e *BundleEntry) UnmarshalJSON(b []byte) error {
	var raw struct {
		Resource json.RawMessage `json:"resource"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw.Resource) == 0 {
		return nil
	}

	var t struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(raw.Resource, &t); err != nil {
		return fmt.Errorf("decode resourceType: %w", err)
	}

	switch t.ResourceType {
	case "StructureDefinition":
		var sd StructureDefinition
		if err := json.Unmarshal(raw.Resource, &sd); err != nil {
			return fmt.Errorf("decode StructureDefinition: %w", err)
		}
		e.Resource = &sd
	}
	return nil
}

// StructureDefinition defines a resource or data type.
type StructureDefinition struct {
	Url            string `json:"url"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	Abstract       bool   `json:"abstract"`
	Type           string `json:"type"`
	BaseDefinition string `json:"baseDefinition"`
	Description    string `json:"description"`
	Purpose        string `json:"purpose"`
	Snapshot       struct {
		Element []ElementDefinition `json:"element"`
	} `json:"snapshot"`
}

// ElementDefinition defines a single element of a StructureDefinition.
type ElementDefinition struct {
	Path             string                  `json:"path"`
	Short            string                  `json:"short"`
	Definition       string                  `json:"definition"`
	Min              int                     `json:"min"`
	Max              string                  `json:"max"`
	Type             []ElementDefinitionType `json:"type"`
	ContentReference string                  `json:"contentReference"`
}

// ElementDefinitionType is a possible type of an element.
type ElementDefinitionType struct {
	Code          string   `json:"code"`
	TargetProfile []string `json:"targetProfile"`
}
