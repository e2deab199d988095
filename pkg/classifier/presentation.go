package classifier

import "strings"

// Class is the visual style a predicted label is rendered with.
type Class string

const (
	ClassPositive Class = "positive"
	ClassNeutral  Class = "neutral"
	ClassNegative Class = "negative"
)

// ClassOf maps a label to its presentation class. Only "positive" and
// "neutral" (any case) are matched; every other label, including ones the
// model was never meant to emit, falls through to ClassNegative.
func ClassOf(label string) Class {
	switch strings.ToLower(label) {
	case "positive":
		return ClassPositive
	case "neutral":
		return ClassNeutral
	default:
		return ClassNegative
	}
}

// IsKnownLabel reports whether label is one of the three sentiment labels.
// ClassOf does not consult it; callers use it to flag catch-all results.
func IsKnownLabel(label string) bool {
	switch strings.ToLower(label) {
	case "positive", "neutral", "negative":
		return true
	}
	return false
}

// Display is the card text for a class.
func (c Class) Display() string {
	switch c {
	case ClassPositive:
		return "Positive 😊"
	case ClassNeutral:
		return "Neutral 😐"
	default:
		return "Negative 😠"
	}
}
