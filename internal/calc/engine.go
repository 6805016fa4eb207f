package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/calculator/internal/model"
)

// ErrInvalidDigit is returned for digit events outside 0..9
var ErrInvalidDigit = errors.New("digit out of range")

var _ Calculator = (*Engine)(nil)

// Engine is the input state machine. It owns the token sequence and is not
// safe for concurrent use: events must be handled one at a time.
type Engine struct {
	seq     *model.Sequence
	log     zerolog.Logger
	session string
	trace   bool
}

// NewEngine creates an engine with an empty sequence
func NewEngine(log zerolog.Logger) *Engine {
	session := generateSessionID()
	return &Engine{
		seq:     model.NewSequence(),
		log:     log.With().Str("session", session).Logger(),
		session: session,
	}
}

// Session returns the id attached to every log line of this engine
func (e *Engine) Session() string {
	return e.session
}

// SetTrace enables debug logging of the whole sequence after every event
func (e *Engine) SetTrace(enabled bool) {
	e.trace = enabled
}

// Display returns the concatenated rendering of the sequence
func (e *Engine) Display() string {
	return e.seq.Display()
}

// Tokens returns a copy of the current sequence
func (e *Engine) Tokens() []model.Token {
	return e.seq.Tokens()
}

// Handle applies one button press. Ignored presses are not errors; the only
// errors are an out-of-range digit and a malformed buffer found during
// evaluation, which cannot be produced through Handle itself.
func (e *Engine) Handle(ev ButtonEvent) error {
	var err error
	if ev.IsDigit() {
		err = e.handleDigit(ev.Value())
	} else {
		err = e.handleOperation(ev.Operation())
	}

	if e.trace {
		e.log.Debug().
			Str("event", ev.Label()).
			Str("tokens", e.seq.Trace()).
			Msg("Sequence updated")
	}
	return err
}

func (e *Engine) handleDigit(d int) error {
	if d < 0 || d > 9 {
		return fmt.Errorf("%w: %d", ErrInvalidDigit, d)
	}
	digit := strconv.Itoa(d)
	if !e.seq.AppendToTail(digit) {
		e.seq.Push(model.NumberToken(digit))
	}
	return nil
}

func (e *Engine) handleOperation(op model.Operation) error {
	switch op {
	case model.OpAC:
		e.seq.Clear()

	case model.OpSignChange:
		e.toggleSign()

	case model.OpPercent:
		if last, ok := e.seq.Last(); ok && last.Kind == model.KindNumber {
			e.seq.Set(e.seq.Len()-1, model.PercentageToken(last.Text))
		}

	case model.OpEquals:
		e.seq.Push(model.OperationToken(model.OpEquals))
		return e.calculate()

	case model.OpDot:
		e.addDot()

	case model.OpDivide, model.OpMultiply, model.OpSubtract, model.OpSum:
		// The first operator of a run sticks; later presses are dropped.
		if last, ok := e.seq.Last(); ok && last.IsArithmeticOperation() {
			return nil
		}
		e.seq.Push(model.OperationToken(op))

	default:
		e.log.Warn().Int("operation", int(op)).Msg("Unknown operation ignored")
	}
	return nil
}

// toggleSign flips the leading minus of the most recent Number or Percentage
func (e *Engine) toggleSign() {
	idx := e.seq.LastIndex(model.Token.IsNumeric)
	if idx < 0 {
		return
	}
	tok := e.seq.At(idx)
	if strings.HasPrefix(tok.Text, "-") {
		tok.Text = tok.Text[1:]
	} else {
		tok.Text = "-" + tok.Text
	}
	e.seq.Set(idx, tok)
}

func (e *Engine) addDot() {
	last, ok := e.seq.Last()
	if ok && last.Kind == model.KindNumber {
		if last.HasDot() {
			return
		}
		e.seq.AppendToTail(".")
		return
	}
	e.seq.Push(model.NumberToken("0."))
}

// calculate evaluates the whole sequence and appends the formatted result
func (e *Engine) calculate() error {
	result, err := Evaluate(e.seq.Tokens())
	if err != nil {
		e.log.Error().Err(err).Str("tokens", e.seq.Trace()).Msg("Evaluation failed")
		return fmt.Errorf("evaluate: %w", err)
	}

	text := FormatResult(result)
	e.seq.Push(model.ResultToken(text))

	e.log.Info().
		Str("expression", e.seq.Display()).
		Str("result", text).
		Msg("Evaluated")
	return nil
}

// generateSessionID returns a UUID v7 so sessions sort by start time
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
