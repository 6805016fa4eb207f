package model

import "testing"

func TestOperation_Symbol(t *testing.T) {
	tests := []struct {
		op       Operation
		expected string
	}{
		{OpAC, "AC"},
		{OpSignChange, "-"},
		{OpPercent, "%"},
		{OpDivide, "÷"},
		{OpMultiply, "*"},
		{OpSubtract, "-"},
		{OpSum, "+"},
		{OpEquals, "="},
		{OpDot, "."},
	}

	for _, test := range tests {
		result := test.op.Symbol()
		if result != test.expected {
			t.Errorf("Operation(%s).Symbol() = %q, expected %q", test.op.Name(), result, test.expected)
		}
		if test.op.String() != result {
			t.Errorf("Operation(%s).String() = %q, expected %q", test.op.Name(), test.op.String(), result)
		}
	}
}

func TestOperation_IsArithmetic(t *testing.T) {
	tests := []struct {
		op       Operation
		expected bool
	}{
		{OpAC, false},
		{OpSignChange, false},
		{OpPercent, false},
		{OpDivide, true},
		{OpMultiply, true},
		{OpSubtract, true},
		{OpSum, true},
		{OpEquals, false},
		{OpDot, false},
	}

	for _, test := range tests {
		result := test.op.IsArithmetic()
		if result != test.expected {
			t.Errorf("Operation(%s).IsArithmetic() = %v, expected %v", test.op.Name(), result, test.expected)
		}
	}
}

func TestOperations_Complete(t *testing.T) {
	operations := []Operation{
		OpAC, OpSignChange, OpPercent, OpDivide, OpMultiply, OpSubtract, OpSum, OpEquals, OpDot,
	}
	seen := make(map[string]bool)
	for _, op := range operations {
		name := op.Name()
		if name == "Unknown" {
			t.Errorf("Operation %d has no name", int(op))
		}
		if seen[name] {
			t.Errorf("Duplicate operation name %s", name)
		}
		seen[name] = true
	}
}
