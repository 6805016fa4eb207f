package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ytget/calculator/internal/model"
)

// ErrMalformedNumber is matched by errors.Is for any buffer that fails to parse
var ErrMalformedNumber = errors.New("malformed number buffer")

// MalformedNumberError reports a Number or Percentage token whose text is not a float
type MalformedNumberError struct {
	Index int
	Text  string
	Err   error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("token %d: malformed number %q: %v", e.Index, e.Text, e.Err)
}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrMalformedNumber
func (e *MalformedNumberError) Is(target error) bool {
	return target == ErrMalformedNumber
}

// Evaluate reduces the tokens left to right and returns the running result.
// There is no precedence; each arithmetic operation becomes the pending
// operator applied to the next operand.
func Evaluate(tokens []model.Token) (float64, error) {
	var result float64
	var pending model.Operation
	hasPending := false

	for i, token := range tokens {
		switch token.Kind {
		case model.KindNumber:
			num, err := parseBuffer(i, token.Text)
			if err != nil {
				return 0, err
			}
			if !hasPending {
				result = num
				continue
			}
			result = apply(pending, result, num)

		case model.KindPercentage:
			num, err := parseBuffer(i, token.Text)
			if err != nil {
				return 0, err
			}
			fraction := num / 100.0
			if !hasPending {
				result = fraction
				continue
			}
			switch pending {
			case model.OpSum:
				result += result * fraction
			case model.OpSubtract:
				result -= result * fraction
			case model.OpMultiply:
				result *= fraction
			case model.OpDivide:
				result /= fraction
			}

		case model.KindOperation:
			// Equals does not repeat the last operation.
			if token.Op.IsArithmetic() {
				pending = token.Op
				hasPending = true
			}

		case model.KindResult:
			// Results from earlier evaluations are not operands.
		}
	}

	return result, nil
}

// apply performs result <op> num for an arithmetic operation
func apply(op model.Operation, result, num float64) float64 {
	switch op {
	case model.OpSum:
		return result + num
	case model.OpSubtract:
		return result - num
	case model.OpMultiply:
		return result * num
	case model.OpDivide:
		return result / num
	default:
		return result
	}
}

func parseBuffer(index int, text string) (float64, error) {
	num, err := strconv.ParseFloat(text, 64)
	// Overlong buffers saturate to ±Inf instead of failing.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &MalformedNumberError{Index: index, Text: text, Err: err}
	}
	return num, nil
}

// FormatResult renders a value as the shortest decimal that round-trips,
// without exponent notation. Non-finite values render as inf, -inf and NaN.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
