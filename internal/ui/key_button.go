package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// KeyStyle selects the fixed colours of a keypad button
type KeyStyle int

const (
	// KeyNumber is used for digits and the dot
	KeyNumber KeyStyle = iota
	// KeyPrimary is the right-hand operator column
	KeyPrimary
	// KeySecondary is the top row (AC, +/-, %)
	KeySecondary
)

// Background returns the fill colour of the key
func (s KeyStyle) Background() color.Color {
	switch s {
	case KeyPrimary:
		return HexColor(ColorPrimaryKey)
	case KeySecondary:
		return HexColor(ColorSecondaryKey)
	default:
		return HexColor(ColorNumberKey)
	}
}

// TextColor returns the label colour of the key
func (s KeyStyle) TextColor() color.Color {
	if s == KeyPrimary {
		return HexColor(ColorPrimaryKeyText)
	}
	return HexColor(ColorKeyText)
}

// KeyButton is a flat, fixed-colour keypad button
type KeyButton struct {
	widget.BaseWidget

	Label    string
	Style    KeyStyle
	OnTapped func()
}

// NewKeyButton creates a keypad button
func NewKeyButton(label string, style KeyStyle, tapped func()) *KeyButton {
	k := &KeyButton{Label: label, Style: style, OnTapped: tapped}
	k.ExtendBaseWidget(k)
	return k
}

// CreateRenderer implements fyne.Widget
func (k *KeyButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(k.Style.Background())
	bg.StrokeColor = HexColor(ColorKeyBorder)
	bg.StrokeWidth = KeyBorderWidth

	text := canvas.NewText(k.Label, k.Style.TextColor())
	text.TextSize = KeyTextSize
	text.Alignment = fyne.TextAlignCenter

	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewCenter(text)))
}

// Tapped implements fyne.Tappable
func (k *KeyButton) Tapped(*fyne.PointEvent) {
	if k.OnTapped != nil {
		k.OnTapped()
	}
}
