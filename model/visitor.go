package model

// NoIndex is passed as index for elements that are not part of a repeated field.
const NoIndex = -1

// Visitor receives callbacks while an element tree is walked.
//
// For every element the walk calls, in this order:
//
//  1. PreVisit; if it returns false the element and its subtree are skipped.
//  2. VisitStart.
//  3. Visit; if it returns true the fields of the element are walked
//     in declaration order, repeated fields once per entry.
//  4. VisitEnd.
//  5. PostVisit.
//
// The walk is synchronous and depth first.
type Visitor interface {
	PreVisit(e Element) bool
	VisitStart(name string, index int, e Element)
	Visit(name string, index int, e Element) bool
	VisitEnd(name string, index int, e Element)
	PostVisit(e Element)
}

// ValueVisitor can additionally be implemented by a Visitor that wants to see
// the plain Go values held by elements, like ids, urls and primitive values.
//
// Values are reported while the fields of their owning element are walked,
// at their position in declaration order.
type ValueVisitor interface {
	Visitor
	VisitValue(name string, index int, value any)
}

// Visit runs the visitor protocol for a single element.
// Every element's Accept method delegates here, passing a function that walks its fields.
func Visit(name string, index int, e Element, v Visitor, children func(v Visitor)) {
	if !v.PreVisit(e) {
		return
	}
	v.VisitStart(name, index, e)
	if v.Visit(name, index, e) {
		children(v)
	}
	v.VisitEnd(name, index, e)
	v.PostVisit(e)
}

// AcceptElement walks a singular field, doing nothing if it is absent.
func AcceptElement(name string, e Element, v Visitor) {
	if IsNil(e) {
		return
	}
	e.Accept(name, NoIndex, v)
}

// AcceptElements walks every entry of a repeated field with its position as index.
func AcceptElements[T Element](name string, list []T, v Visitor) {
	for i, e := range list {
		if IsNil(e) {
			continue
		}
		e.Accept(name, i, v)
	}
}

// AcceptValue reports an optional plain value to a ValueVisitor.
func AcceptValue[T any](name string, value *T, v Visitor) {
	if value == nil {
		return
	}
	if vv, ok := v.(ValueVisitor); ok {
		vv.VisitValue(name, NoIndex, *value)
	}
}

// AcceptValues reports every entry of a repeated plain value to a ValueVisitor.
func AcceptValues[T any](name string, values []T, v Visitor) {
	vv, ok := v.(ValueVisitor)
	if !ok {
		return
	}
	for i, value := range values {
		vv.VisitValue(name, i, value)
	}
}
