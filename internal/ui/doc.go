package ui

// Package ui contains the Fyne-based calculator window: a display row over a
// fixed keypad. Every key press is forwarded synchronously to the calc engine
// and the display is re-rendered from the engine afterwards. Colours are
// fixed constants; there is no theming beyond them.
