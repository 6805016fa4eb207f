package model

// Package model defines the calculator's token model: the operation enum,
// the tagged Token union (operation, number buffer, percentage buffer,
// result) and the ordered Sequence that accumulates everything entered since
// the last clear. The Sequence is mutated only by the input engine in
// package calc and rendered for display by the UI.
