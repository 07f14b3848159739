/*
File    : go-slate/vm/builtins.go
Project : go-slate
*/
package vm

import (
	"fmt"
	"time"

	"github.com/alpharomercoma/go-slate/objects"
)

// BuiltinFunc is the native implementation of a built-in function.
// Arguments arrive in source order.
type BuiltinFunc func(m *VM, args []objects.SlateObject) (objects.SlateObject, error)

// Builtin describes one built-in function: its name, its fixed arity,
// and the native callback.
type Builtin struct {
	Name     string      // Callable name
	Arity    int         // Required argument count
	Callback BuiltinFunc // Native implementation
}

// Builtins is the registry of native functions. A global bound to the
// same name shadows the built-in, since CALL consults the name table
// first.
var Builtins = []*Builtin{
	{Name: "print", Arity: 1, Callback: builtinPrint}, // Prints a value, yields nil
	{Name: "clock", Arity: 0, Callback: builtinClock}, // Wall-clock seconds as a number
}

// lookupBuiltin finds a built-in by name, or returns nil.
func lookupBuiltin(name string) *Builtin {
	for _, builtin := range Builtins {
		if builtin.Name == name {
			return builtin
		}
	}
	return nil
}

// invokeBuiltin checks the arity, pops the arguments off the value
// stack and runs the callback, pushing its result.
//
// Arguments were pushed in reverse source order, so popping yields them
// first-to-last.
func (m *VM) invokeBuiltin(builtin *Builtin, argc int) error {
	if argc != builtin.Arity {
		return fmt.Errorf("%s() takes exactly %d argument(s) but got %d.", builtin.Name, builtin.Arity, argc)
	}

	args := make([]objects.SlateObject, argc)
	for i := 0; i < argc; i++ {
		value, err := m.pop()
		if err != nil {
			return err
		}
		args[i] = value
	}

	result, err := builtin.Callback(m, args)
	if err != nil {
		return err
	}
	m.push(result)
	return nil
}

// builtinPrint prints its argument followed by a newline and yields nil.
func builtinPrint(m *VM, args []objects.SlateObject) (objects.SlateObject, error) {
	fmt.Fprintln(m.writer, args[0].ToString())
	return &objects.Nil{}, nil
}

// builtinClock yields the current wall-clock time in seconds.
func builtinClock(m *VM, _ []objects.SlateObject) (objects.SlateObject, error) {
	seconds := float64(time.Now().UnixNano()) / float64(time.Second)
	return &objects.Number{Value: seconds}, nil
}
