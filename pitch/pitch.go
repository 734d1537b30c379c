// Package pitch names absolute pitch classes in Western notation.
package pitch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/ragakey/model"
)

var ErrUnknownPitchName = errors.New("unknown pitch name")

type UnknownPitchNameError struct {
	Token string
}

func (e *UnknownPitchNameError) Error() string {
	return fmt.Sprintf("%s: %q (choose from %s)", ErrUnknownPitchName, e.Token, strings.Join(Names(), ", "))
}

func (e *UnknownPitchNameError) Unwrap() error {
	return ErrUnknownPitchName
}

const (
	C = model.PitchClass(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var names = [model.NumPitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var byName = func() map[string]model.PitchClass {
	m := make(map[string]model.PitchClass, len(names))
	for i, n := range names {
		m[n] = model.PitchClass(i)
	}
	return m
}()

// Parse resolves a Western pitch name. Surrounding whitespace is ignored,
// nothing else is normalized: "Db" and "c" are rejected.
func Parse(name string) (model.PitchClass, error) {
	token := strings.TrimSpace(name)
	pc, ok := byName[token]
	if !ok {
		return 0, &UnknownPitchNameError{Token: token}
	}
	return pc, nil
}

// Name returns the Western name of pc, reduced mod 12.
func Name(pc model.PitchClass) string {
	i := int(pc) % model.NumPitchClasses
	if i < 0 {
		i += model.NumPitchClasses
	}
	return names[i]
}

// Names lists the 12 Western names starting at C.
func Names() []string {
	res := make([]string, len(names))
	copy(res, names[:])
	return res
}

// NamesFrom lists the 12 Western names in chromatic order starting at from.
func NamesFrom(from model.PitchClass) []string {
	res := make([]string, model.NumPitchClasses)
	for j := range res {
		res[j] = Name(from + model.PitchClass(j))
	}
	return res
}

// NamesOf names each pitch class in pcs, keeping their order.
func NamesOf(pcs []model.PitchClass) []string {
	res := make([]string, len(pcs))
	for i, pc := range pcs {
		res[i] = Name(pc)
	}
	return res
}
