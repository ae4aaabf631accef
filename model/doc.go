// Package model contains the building blocks every FHIR element is made of.
//
// Concrete types are generated (see model/gen) and compose the field groups
// of this package ([ElementFields], [BackboneElementFields], [ResourceFields],
// [DomainResourceFields]) instead of inheriting from each other.
//
// Elements are only created by builders. A builder is a plain struct whose
// exported fields can be set in any order; nothing is checked until Build is
// called, which validates required fields, choice types, reference target types
// and cardinalities, and returns either an immutable element or the first violation:
//
//	b := r4.NewObservationBuilder()
//	b.Status = r4.NewCode("final")
//	b.Code = code
//	b.Value = r4.NewString("positive")
//	obs, err := b.Build()
//	if err != nil {
//		var missing *model.MissingRequiredFieldError
//		if errors.As(err, &missing) {
//			// missing.Field names the field
//		}
//	}
//
// Elements can be traversed with a [Visitor], compared with Equal and hashed with Hash.
// To derive a modified element, call ToBuilder, change the builder and Build again.
//
// Elements are acyclic by construction: an element can only hold elements that
// were built before it, and nothing can be changed afterwards.
package model
