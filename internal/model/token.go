package model

import "strings"

// Kind identifies the variant of a Token
type Kind int

const (
	KindOperation Kind = iota
	KindNumber
	KindPercentage
	KindResult
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindOperation:
		return "Operation"
	case KindNumber:
		return "Number"
	case KindPercentage:
		return "Percentage"
	case KindResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Token is one entry of the input log. Op is meaningful only for
// KindOperation, Text only for the other kinds.
type Token struct {
	Kind Kind
	Op   Operation
	Text string
}

// OperationToken creates an operation token
func OperationToken(op Operation) Token {
	return Token{Kind: KindOperation, Op: op}
}

// NumberToken creates a digit buffer token
func NumberToken(text string) Token {
	return Token{Kind: KindNumber, Text: text}
}

// PercentageToken creates a percentage buffer token
func PercentageToken(text string) Token {
	return Token{Kind: KindPercentage, Text: text}
}

// ResultToken creates a computed result token
func ResultToken(text string) Token {
	return Token{Kind: KindResult, Text: text}
}

// String renders the token the way it appears on the display
func (t Token) String() string {
	switch t.Kind {
	case KindOperation:
		return t.Op.Symbol()
	case KindPercentage:
		return t.Text + "%"
	default:
		return t.Text
	}
}

// IsNumeric reports whether the token holds an editable numeric buffer
func (t Token) IsNumeric() bool {
	return t.Kind == KindNumber || t.Kind == KindPercentage
}

// IsArithmeticOperation reports whether the token is a Sum/Subtract/Multiply/Divide operation
func (t Token) IsArithmeticOperation() bool {
	return t.Kind == KindOperation && t.Op.IsArithmetic()
}

// HasDot reports whether the token text already contains a decimal point
func (t Token) HasDot() bool {
	return strings.Contains(t.Text, ".")
}

// GoString is used by %#v and the token trace log
func (t Token) GoString() string {
	if t.Kind == KindOperation {
		return "Operation(" + t.Op.Name() + ")"
	}
	return t.Kind.String() + "(\"" + t.Text + "\")"
}
