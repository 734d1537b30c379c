// Package interval holds the catalog of Hindustani interval symbols and the
// modulo-12 arithmetic used to move between relative and absolute pitch
// classes.
package interval

import (
	"fmt"

	"github.com/jsphweid/ragakey/model"
)

// Hindustani lists the default interval names in offset order, Sa first.
var Hindustani = []model.IntervalSymbol{
	"S", "r", "R", "g", "G", "m", "M", "P", "d", "D", "n", "N",
}

// Catalog is a bijection between interval symbols and pitch-class offsets.
// Both directions are built together so reverse lookups never scan.
type Catalog struct {
	toOffset map[model.IntervalSymbol]model.PitchClass
	toSymbol [model.NumPitchClasses]model.IntervalSymbol
}

// NewCatalog builds a catalog where symbols[i] names offset i. It needs
// exactly 12 distinct, non-empty symbols.
func NewCatalog(symbols []model.IntervalSymbol) (*Catalog, error) {
	if len(symbols) != model.NumPitchClasses {
		return nil, fmt.Errorf("catalog needs %d symbols, got %d", model.NumPitchClasses, len(symbols))
	}

	c := &Catalog{toOffset: make(map[model.IntervalSymbol]model.PitchClass, len(symbols))}
	for i, sym := range symbols {
		if sym == "" {
			return nil, fmt.Errorf("catalog symbol at offset %d is empty", i)
		}
		if prev, ok := c.toOffset[sym]; ok {
			return nil, fmt.Errorf("catalog symbol %q used for offsets %d and %d", sym, prev, i)
		}
		c.toOffset[sym] = model.PitchClass(i)
		c.toSymbol[i] = sym
	}
	return c, nil
}

var defaultCatalog = mustCatalog(Hindustani)

func mustCatalog(symbols []model.IntervalSymbol) *Catalog {
	c, err := NewCatalog(symbols)
	if err != nil {
		panic("Could not build interval catalog: " + err.Error())
	}
	return c
}

// Default returns the shared Hindustani catalog. Catalogs are read-only after
// construction so sharing is safe.
func Default() *Catalog {
	return defaultCatalog
}

// Offset resolves a symbol to its offset from Sa.
func (c *Catalog) Offset(token string) (model.PitchClass, error) {
	pc, ok := c.toOffset[model.IntervalSymbol(token)]
	if !ok {
		return 0, &UnknownIntervalSymbolError{Token: token}
	}
	return pc, nil
}

// Symbol names an offset. Any integer is accepted and reduced mod 12 first.
func (c *Catalog) Symbol(offset model.PitchClass) model.IntervalSymbol {
	return c.toSymbol[Mod(int(offset))]
}

// Symbols returns a copy of the catalog in offset order.
func (c *Catalog) Symbols() []model.IntervalSymbol {
	res := make([]model.IntervalSymbol, model.NumPitchClasses)
	copy(res, c.toSymbol[:])
	return res
}

// Contains reports whether token is one of the catalog's symbols. Matching
// is case sensitive.
func (c *Catalog) Contains(token string) bool {
	_, ok := c.toOffset[model.IntervalSymbol(token)]
	return ok
}
