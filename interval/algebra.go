package interval

import "github.com/jsphweid/ragakey/model"

// Mod reduces n into [0,12), also for negative n.
func Mod(n int) model.PitchClass {
	m := n % model.NumPitchClasses
	if m < 0 {
		m += model.NumPitchClasses
	}
	return model.PitchClass(m)
}

// Rotate returns a copy of s cyclically shifted left by k. Negative k shifts
// right. The input is never modified.
func Rotate[T any](s []T, k int) []T {
	res := make([]T, len(s))
	if len(s) == 0 {
		return res
	}
	k %= len(s)
	if k < 0 {
		k += len(s)
	}
	n := copy(res, s[k:])
	copy(res[n:], s[:k])
	return res
}

// Chromatic is the chromatic order starting at from: shifted[j] = (from+j) mod 12.
func Chromatic(from model.PitchClass) [model.NumPitchClasses]model.PitchClass {
	var shifted [model.NumPitchClasses]model.PitchClass
	for j := range shifted {
		shifted[j] = Mod(int(from) + j)
	}
	return shifted
}

// Distance is how many steps up from `from` one has to go to reach `to`.
func Distance(from, to model.PitchClass) model.PitchClass {
	return Mod(int(to) - int(from))
}

// Transpose moves pc up by the given number of semitones.
func Transpose(pc model.PitchClass, by model.PitchClass) model.PitchClass {
	return Mod(int(pc) + int(by))
}
