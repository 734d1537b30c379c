package model

// EvaluationResult is the outcome of scoring a scale from one candidate base
// pitch.
type EvaluationResult struct {
	Base    PitchClass       `json:"base"`
	Pattern Pattern          `json:"pattern"`
	Score   int              `json:"score"`
	Present []IntervalSymbol `json:"present"`

	// Reference is the interval name the scale's original Sa takes when
	// playing from Base.
	Reference IntervalSymbol `json:"reference"`
}
