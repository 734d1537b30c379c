package evaluate

import (
	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/model"
)

// PresentSymbols names every set position of the pattern, lowest step first.
func PresentSymbols(cat *interval.Catalog, p model.Pattern) []model.IntervalSymbol {
	res := make([]model.IntervalSymbol, 0, model.NumPitchClasses)
	for j, v := range p {
		if v == 1 {
			res = append(res, cat.Symbol(model.PitchClass(j)))
		}
	}
	return res
}

// ReferenceSymbol answers "what does Sa mean here": the interval name the
// scale's base takes when the instrument starts at candidate.
func ReferenceSymbol(cat *interval.Catalog, candidate, base model.PitchClass) model.IntervalSymbol {
	return cat.Symbol(interval.Distance(candidate, base))
}
