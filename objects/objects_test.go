/*
File    : go-slate/objects/objects_test.go
Project : go-slate
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNumber_Formatting checks that integral numbers drop the trailing
// fraction: 7.0 must display as "7".
func TestNumber_Formatting(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{7, "7"},
		{0, "0"},
		{-3, "-3"},
		{3.5, "3.5"},
		{0.25, "0.25"},
		{-0.5, "-0.5"},
		{100000, "100000"},
	}
	for _, test := range tests {
		num := &Number{Value: test.value}
		assert.Equal(t, test.expected, num.ToString())
	}
}

func TestToString_PerType(t *testing.T) {
	assert.Equal(t, "hello", (&String{Value: "hello"}).ToString())
	assert.Equal(t, "true", (&Boolean{Value: true}).ToString())
	assert.Equal(t, "false", (&Boolean{Value: false}).ToString())
	assert.Equal(t, "nil", (&Nil{}).ToString())
	assert.Equal(t, "<fn sq>", (&Function{Name: "sq", Label: "L1", Arity: 1}).ToString())
}

func TestGetType_PerType(t *testing.T) {
	assert.Equal(t, NumberType, (&Number{}).GetType())
	assert.Equal(t, StringType, (&String{}).GetType())
	assert.Equal(t, BooleanType, (&Boolean{}).GetType())
	assert.Equal(t, NilType, (&Nil{}).GetType())
	assert.Equal(t, FunctionType, (&Function{}).GetType())
}

// TestIsTruthy checks the truthiness rule: nil and false are falsy,
// everything else - including 0 and the empty string - is truthy.
func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(&Nil{}))
	assert.False(t, IsTruthy(&Boolean{Value: false}))

	assert.True(t, IsTruthy(&Boolean{Value: true}))
	assert.True(t, IsTruthy(&Number{Value: 0}))
	assert.True(t, IsTruthy(&Number{Value: 1}))
	assert.True(t, IsTruthy(&String{Value: ""}))
	assert.True(t, IsTruthy(&String{Value: "x"}))
	assert.True(t, IsTruthy(&Function{Name: "f"}))
}

// TestEquals checks value equality: nil equals only nil, different
// types are never equal, same types compare payloads.
func TestEquals(t *testing.T) {
	assert.True(t, Equals(&Nil{}, &Nil{}))
	assert.False(t, Equals(&Nil{}, &Number{Value: 0}))
	assert.False(t, Equals(&Boolean{Value: false}, &Nil{}))

	assert.True(t, Equals(&Number{Value: 2}, &Number{Value: 2}))
	assert.False(t, Equals(&Number{Value: 2}, &Number{Value: 3}))

	assert.True(t, Equals(&String{Value: "a"}, &String{Value: "a"}))
	assert.False(t, Equals(&String{Value: "a"}, &String{Value: "b"}))

	// same payload text, different types
	assert.False(t, Equals(&Number{Value: 1}, &String{Value: "1"}))
	assert.False(t, Equals(&Boolean{Value: true}, &Number{Value: 1}))

	assert.True(t, Equals(&Function{Label: "L1"}, &Function{Label: "L1"}))
	assert.False(t, Equals(&Function{Label: "L1"}, &Function{Label: "L2"}))
}
