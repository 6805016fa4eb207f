package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// HexColor converts 0xRRGGBB into an opaque colour
func HexColor(c uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16 & 0xff),
		G: uint8(c >> 8 & 0xff),
		B: uint8(c & 0xff),
		A: 255,
	}
}

// CalcTheme paints the window background dark and the primary colour orange
type CalcTheme struct{}

// NewCalcTheme creates the calculator theme
func NewCalcTheme() fyne.Theme {
	return &CalcTheme{}
}

// Color returns theme colors
func (t *CalcTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return HexColor(ColorBackground)
	case theme.ColorNamePrimary:
		return HexColor(ColorPrimaryKey)
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *CalcTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CalcTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; keys are separated by a hairline only
func (t *CalcTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNamePadding {
		return 1
	}

	return theme.DefaultTheme().Size(name)
}
