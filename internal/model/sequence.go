package model

import "strings"

// Sequence is the ordered input log accumulated since the last clear
type Sequence struct {
	tokens []Token
}

// NewSequence creates an empty sequence
func NewSequence() *Sequence {
	return &Sequence{tokens: make([]Token, 0)}
}

// Tokens returns a copy of the tokens in order
func (s *Sequence) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Len returns the number of tokens
func (s *Sequence) Len() int {
	return len(s.tokens)
}

// At returns the token at index i
func (s *Sequence) At(i int) Token {
	return s.tokens[i]
}

// Last returns the tail token, if any
func (s *Sequence) Last() (Token, bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	return s.tokens[len(s.tokens)-1], true
}

// Push appends a token to the tail
func (s *Sequence) Push(t Token) {
	s.tokens = append(s.tokens, t)
}

// Set replaces the token at index i
func (s *Sequence) Set(i int, t Token) {
	s.tokens[i] = t
}

// LastIndex scans from the tail backward and returns the index of the first
// token matching pred, or -1
func (s *Sequence) LastIndex(pred func(Token) bool) int {
	for i := len(s.tokens) - 1; i >= 0; i-- {
		if pred(s.tokens[i]) {
			return i
		}
	}
	return -1
}

// AppendToTail appends text to the tail Number buffer. It returns false and
// leaves the sequence untouched when the tail is not a Number.
func (s *Sequence) AppendToTail(text string) bool {
	n := len(s.tokens)
	if n == 0 || s.tokens[n-1].Kind != KindNumber {
		return false
	}
	s.tokens[n-1].Text += text
	return true
}

// Clear removes every token
func (s *Sequence) Clear() {
	s.tokens = s.tokens[:0]
}

// Display concatenates the rendering of every token in order
func (s *Sequence) Display() string {
	var b strings.Builder
	for _, t := range s.tokens {
		b.WriteString(t.String())
	}
	return b.String()
}

// Trace renders the tokens in their debug form, e.g. [Number("2") Operation(Sum)]
func (s *Sequence) Trace() string {
	parts := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		parts[i] = t.GoString()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
