package model

// NumPitchClasses is the size of the fixed equal-tempered chromatic octave.
const NumPitchClasses = 12

// PitchClass is one of the 12 chromatic steps, 0 through 11. Enharmonic
// spellings share a value.
type PitchClass int

// IntervalSymbol is a relative scale-degree name measured from a movable Sa.
type IntervalSymbol string

// QualityMask flags, per rotation distance from a candidate base, whether a
// note landing there counts toward the score.
type QualityMask [NumPitchClasses]uint8

// Pattern is the binary membership of a scale over a rotated chromatic order.
type Pattern [NumPitchClasses]uint8

type PitchClassSet [NumPitchClasses]bool

func (s PitchClassSet) Contains(pc PitchClass) bool {
	if pc < 0 || pc >= NumPitchClasses {
		return false
	}
	return s[pc]
}

func (s PitchClassSet) Len() int {
	var n int
	for _, ok := range s {
		if ok {
			n++
		}
	}
	return n
}

// Members returns the set's pitch classes in ascending order.
func (s PitchClassSet) Members() []PitchClass {
	res := make([]PitchClass, 0, NumPitchClasses)
	for pc, ok := range s {
		if ok {
			res = append(res, PitchClass(pc))
		}
	}
	return res
}

// Scale is a user's interval sequence resolved against a base pitch.
type Scale struct {
	Symbols []IntervalSymbol
	Base    PitchClass

	// NOTE: keeps input order and duplicates, used for the western restatement
	Pitches []PitchClass
	Set     PitchClassSet
}
