/*
File    : go-slate/objects/utils.go
Project : go-slate
*/
package objects

// IsTruthy implements the Slate truthiness rule used by conditionals and
// the NOT/JMP_FALSE/JMP_TRUE instructions: nil and boolean false are
// falsy; everything else (including 0 and the empty string) is truthy.
func IsTruthy(obj SlateObject) bool {
	switch o := obj.(type) {
	case *Nil:
		return false
	case *Boolean:
		return o.Value
	default:
		return true
	}
}

// Equals implements Slate value equality:
//   - nil == nil is true
//   - nil == anything-else is false
//   - values of different types are never equal
//   - otherwise tags match and payloads are compared structurally
func Equals(a, b SlateObject) bool {
	if a.GetType() == NilType || b.GetType() == NilType {
		return a.GetType() == b.GetType()
	}
	if a.GetType() != b.GetType() {
		return false
	}
	switch av := a.(type) {
	case *Number:
		return av.Value == b.(*Number).Value
	case *String:
		return av.Value == b.(*String).Value
	case *Boolean:
		return av.Value == b.(*Boolean).Value
	case *Function:
		return av.Label == b.(*Function).Label
	default:
		return false
	}
}
