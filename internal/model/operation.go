package model

// Operation is one of the nine non-digit calculator buttons
type Operation int

const (
	// OpAC clears the whole sequence
	OpAC Operation = iota
	// OpSignChange toggles the sign of the most recent numeric entry
	OpSignChange
	// OpPercent marks the tail number as a percentage
	OpPercent
	OpDivide
	OpMultiply
	OpSubtract
	OpSum
	// OpEquals triggers evaluation
	OpEquals
	// OpDot adds a decimal point to the tail number
	OpDot
)

// Symbol returns the fixed display symbol of the operation
func (op Operation) Symbol() string {
	switch op {
	case OpAC:
		return "AC"
	case OpSignChange:
		return "-"
	case OpPercent:
		return "%"
	case OpDivide:
		return "÷"
	case OpMultiply:
		return "*"
	case OpSubtract:
		return "-"
	case OpSum:
		return "+"
	case OpEquals:
		return "="
	case OpDot:
		return "."
	default:
		return ""
	}
}

// String returns the display symbol of the operation
func (op Operation) String() string {
	return op.Symbol()
}

// Name returns the identifier-like name used in logs
func (op Operation) Name() string {
	switch op {
	case OpAC:
		return "AC"
	case OpSignChange:
		return "SignChange"
	case OpPercent:
		return "Percent"
	case OpDivide:
		return "Divide"
	case OpMultiply:
		return "Multiply"
	case OpSubtract:
		return "Subtract"
	case OpSum:
		return "Sum"
	case OpEquals:
		return "Equals"
	case OpDot:
		return "Dot"
	default:
		return "Unknown"
	}
}

// IsArithmetic returns true for the four binary operators consumed by the evaluator
func (op Operation) IsArithmetic() bool {
	return op == OpSum || op == OpSubtract || op == OpMultiply || op == OpDivide
}
