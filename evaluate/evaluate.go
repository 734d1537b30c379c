// Package evaluate scores a resolved scale from each of the 12 candidate base
// pitches against a quality mask and ranks the outcomes.
//
// The mask is indexed by distance from the candidate being tested, not from
// the scale's own Sa.
package evaluate

import (
	"sort"

	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/model"
)

// Evaluator holds the immutable configuration a run is scored with.
type Evaluator struct {
	catalog *interval.Catalog
	mask    model.QualityMask
}

func New(cat *interval.Catalog, m model.QualityMask) *Evaluator {
	return &Evaluator{catalog: cat, mask: m}
}

// EvaluateOne scores s as played from the candidate base pitch.
func (e *Evaluator) EvaluateOne(s model.Scale, candidate model.PitchClass) model.EvaluationResult {
	candidate = interval.Mod(int(candidate))
	pattern := Membership(s.Set, candidate)
	return model.EvaluationResult{
		Base:      candidate,
		Pattern:   pattern,
		Score:     Score(pattern, e.mask),
		Present:   PresentSymbols(e.catalog, pattern),
		Reference: ReferenceSymbol(e.catalog, candidate, s.Base),
	}
}

// Evaluate scores all 12 candidates and returns them ranked best first.
func (e *Evaluator) Evaluate(s model.Scale) []model.EvaluationResult {
	results := make([]model.EvaluationResult, model.NumPitchClasses)
	for i := range results {
		results[i] = e.EvaluateOne(s, model.PitchClass(i))
	}
	return Rank(results)
}

// Membership marks, for each step j above candidate, whether that pitch class
// is in the scale.
func Membership(set model.PitchClassSet, candidate model.PitchClass) model.Pattern {
	var p model.Pattern
	for j, pc := range interval.Chromatic(candidate) {
		if set.Contains(pc) {
			p[j] = 1
		}
	}
	return p
}

// Score is the elementwise product-sum of pattern and mask.
func Score(p model.Pattern, m model.QualityMask) int {
	var total int
	for j := range p {
		total += int(p[j]) * int(m[j])
	}
	return total
}

// Rank returns a copy of results sorted by score, highest first. Ties keep
// their incoming order.
func Rank(results []model.EvaluationResult) []model.EvaluationResult {
	ranked := make([]model.EvaluationResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
