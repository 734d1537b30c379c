// Package scale turns a sequence of interval symbols into absolute pitch
// classes relative to a chosen base pitch.
package scale

import (
	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/model"
	"github.com/jsphweid/ragakey/util"
)

// Validate reports the first token that is not in cat.
func Validate(cat *interval.Catalog, symbols []string) error {
	for _, token := range symbols {
		if !cat.Contains(token) {
			return &interval.UnknownIntervalSymbolError{Token: token}
		}
	}
	return nil
}

// Resolve transposes every symbol onto base. All symbols are checked before
// any is transposed, and no partial scale is returned.
func Resolve(cat *interval.Catalog, symbols []string, base model.PitchClass) (model.Scale, error) {
	if err := Validate(cat, symbols); err != nil {
		return model.Scale{}, err
	}
	base = interval.Mod(int(base))
	s := model.Scale{
		Symbols: make([]model.IntervalSymbol, 0, len(symbols)),
		Base:    base,
		Pitches: make([]model.PitchClass, 0, len(symbols)),
	}

	for _, token := range symbols {
		offset, err := cat.Offset(token)
		if err != nil {
			return model.Scale{}, err
		}
		pc := interval.Transpose(base, offset)
		s.Symbols = append(s.Symbols, model.IntervalSymbol(token))
		s.Pitches = append(s.Pitches, pc)
		s.Set[pc] = true
	}
	return s, nil
}

// Parse splits raw user input into symbol tokens.
func Parse(input string) []string {
	return util.SplitTokens(input)
}

// FromPitchClasses names each member of set relative to base, in ascending
// interval order. It is the inverse of Resolve for a collapsed set.
func FromPitchClasses(cat *interval.Catalog, set model.PitchClassSet, base model.PitchClass) []model.IntervalSymbol {
	var res []model.IntervalSymbol
	for j, pc := range interval.Chromatic(base) {
		if set.Contains(pc) {
			res = append(res, cat.Symbol(model.PitchClass(j)))
		}
	}
	return res
}

func SymbolStrings(symbols []model.IntervalSymbol) []string {
	res := make([]string, len(symbols))
	for i, s := range symbols {
		res[i] = string(s)
	}
	return res
}
