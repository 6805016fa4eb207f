package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Colours (0xRRGGBB)
const (
	ColorBackground     uint32 = 0x272728
	ColorDisplayText    uint32 = 0xffffff
	ColorKeyBorder      uint32 = 0x999999
	ColorKeyText        uint32 = 0x111111
	ColorNumberKey      uint32 = 0xe0e0e0
	ColorPrimaryKey     uint32 = 0xf79432
	ColorPrimaryKeyText uint32 = 0xfff1df
	ColorSecondaryKey   uint32 = 0xd6d6d6
)

// Key labels that differ from the token symbols
const (
	LabelClear      = "AC"
	LabelSignChange = "+/-"
	LabelPercent    = "%"
	LabelDivide     = "÷"
	LabelMultiply   = "X"
	LabelSubtract   = "-"
	LabelSum        = "+"
	LabelDot        = "."
	LabelEquals     = "="
)

// Text fragments
const (
	// Two narrow no-break spaces keep the display off the right edge
	DisplayPadding = "\u202F\u202F"
)

// Layout sizing
const (
	KeyTextSize     float32 = 28
	DisplayTextSize float32 = 38
	KeyBorderWidth  float32 = 1

	WindowWidth  float32 = 330
	WindowHeight float32 = 350
)
