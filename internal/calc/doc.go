package calc

// Package calc implements the calculator core: an input engine that turns
// button presses into token sequence mutations, and a single-pass
// left-to-right evaluator that runs when "=" is pressed. There is no operator
// precedence; percentages are relative to the running result for + and -
// and absolute multipliers for * and ÷.
