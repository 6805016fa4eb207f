package calc

import (
	"strconv"

	"github.com/ytget/calculator/internal/model"
)

// ButtonEvent is a single key press: either a digit or an operation
type ButtonEvent struct {
	isDigit bool
	digit   int
	op      model.Operation
}

// Digit creates a digit press event. Values outside 0..9 are rejected by Handle.
func Digit(d int) ButtonEvent {
	return ButtonEvent{isDigit: true, digit: d}
}

// Press creates an operation press event
func Press(op model.Operation) ButtonEvent {
	return ButtonEvent{op: op}
}

// IsDigit reports whether the event is a digit press
func (ev ButtonEvent) IsDigit() bool {
	return ev.isDigit
}

// Value returns the pressed digit; meaningful only when IsDigit is true
func (ev ButtonEvent) Value() int {
	return ev.digit
}

// Operation returns the pressed operation; meaningful only when IsDigit is false
func (ev ButtonEvent) Operation() model.Operation {
	return ev.op
}

// Label returns a short name for logs
func (ev ButtonEvent) Label() string {
	if ev.isDigit {
		return strconv.Itoa(ev.digit)
	}
	return ev.op.Name()
}
