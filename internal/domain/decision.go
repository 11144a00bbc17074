package domain

import "strings"

// Decision is the three-way routing classification plus a defensive none.
type Decision int

const (
	// DecisionNone means the classifier produced no usable output.
	DecisionNone Decision = iota
	// DecisionAnswer means the classifier answered the query itself.
	DecisionAnswer
	// DecisionGeneral routes to the general video-search provider.
	DecisionGeneral
	// DecisionPlatform routes to the video-platform provider.
	DecisionPlatform
)

// Route tokens the classifier is instructed to reply with. Matching is
// case-insensitive but requires the exact full string: output that merely
// mentions a token inside explanatory text is a direct answer, not a route.
const (
	TokenGeneral  = "google"
	TokenPlatform = "youtube"
)

// Outcome is the interpreted classifier output.
type Outcome struct {
	Decision Decision
	// Answer holds the verbatim trimmed output when Decision is DecisionAnswer.
	Answer string
}

// Interpret classifies raw classifier output into a routing outcome.
func Interpret(raw string) Outcome {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "":
		return Outcome{Decision: DecisionNone}
	case TokenGeneral:
		return Outcome{Decision: DecisionGeneral}
	case TokenPlatform:
		return Outcome{Decision: DecisionPlatform}
	}
	return Outcome{Decision: DecisionAnswer, Answer: trimmed}
}
