package calc

import (
	"github.com/ytget/calculator/internal/model"
)

// Calculator defines the interface the UI uses to drive the engine.
type Calculator interface {
	// Handle applies one button press to the token sequence
	Handle(ev ButtonEvent) error

	// Display returns the concatenated rendering of the current sequence
	Display() string

	Tokens() []model.Token

	// SetTrace enables logging of the whole sequence after every event
	SetTrace(enabled bool)
}
