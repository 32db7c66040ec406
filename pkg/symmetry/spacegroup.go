package symmetry

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/lexlapax/xmerge/pkg/errors"
)

type spaceGroupEntry struct {
	number     int
	symbol     string
	pointGroup string
	aliases    []string
}

// SpaceGroup is a space group type in a standard setting. Only the lattice
// centering and the point group take part in index reduction and Patterson
// derivation, so translations are not modelled.
type SpaceGroup struct {
	number     int
	symbol     string
	centering  byte
	pointGroup *PointGroup
}

// SpaceGroupInfo identifies a space group by its symbol and number.
type SpaceGroupInfo struct {
	Symbol string
	Number int
}

// SymbolAndNumber returns the canonical identity, e.g. "P 21 21 21 (No. 19)".
func (i SpaceGroupInfo) SymbolAndNumber() string {
	return fmt.Sprintf("%s (No. %d)", i.Symbol, i.Number)
}

func (i SpaceGroupInfo) String() string {
	return i.SymbolAndNumber()
}

// SpaceGroupType carries what index reduction needs from a space group.
type SpaceGroupType struct {
	number     int
	pointGroup *PointGroup
}

// Number returns the space group number of the type.
func (t SpaceGroupType) Number() int { return t.number }

// PointGroup returns the point group of the type.
func (t SpaceGroupType) PointGroup() *PointGroup { return t.pointGroup }

var (
	spaceGroupsByNumber = make(map[int]SpaceGroup, len(spaceGroupTable))
	spaceGroupsByKey    = make(map[string]SpaceGroup, len(spaceGroupTable)*2)
)

func init() {
	for _, e := range spaceGroupTable {
		pg, err := LookupPointGroup(e.pointGroup)
		if err != nil {
			panic(err)
		}
		sg := SpaceGroup{
			number:     e.number,
			symbol:     e.symbol,
			centering:  e.symbol[0],
			pointGroup: pg,
		}
		spaceGroupsByNumber[e.number] = sg
		spaceGroupsByKey[normalizeSymbol(e.symbol)] = sg
		for _, alias := range e.aliases {
			spaceGroupsByKey[normalizeSymbol(alias)] = sg
		}
	}
}

func normalizeSymbol(symbol string) string {
	s := strings.ToLower(strings.Join(strings.Fields(symbol), ""))
	for _, suffix := range []string{":h", ":1", ":2"} {
		s = strings.TrimSuffix(s, suffix)
	}
	return s
}

// LookupSpaceGroup resolves a space group from its number or Hermann-Mauguin
// symbol. Spacing and case are ignored, and the ":1", ":2" and ":H" setting
// suffixes are accepted. Rhombohedral axes (":R") are not supported.
func LookupSpaceGroup(symbol string) (SpaceGroup, error) {
	trimmed := strings.TrimSpace(symbol)
	if trimmed == "" {
		return SpaceGroup{}, fmt.Errorf("%w: empty symbol", errs.ErrUnknownSpaceGroup)
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if sg, ok := spaceGroupsByNumber[n]; ok {
			return sg, nil
		}
		return SpaceGroup{}, fmt.Errorf("%w: number %d", errs.ErrUnknownSpaceGroup, n)
	}
	if strings.HasSuffix(strings.ToLower(strings.ReplaceAll(trimmed, " ", "")), ":r") {
		return SpaceGroup{}, fmt.Errorf("%w: rhombohedral axes not supported: %q", errs.ErrUnknownSpaceGroup, symbol)
	}
	sg, ok := spaceGroupsByKey[normalizeSymbol(trimmed)]
	if !ok {
		return SpaceGroup{}, fmt.Errorf("%w: %q", errs.ErrUnknownSpaceGroup, symbol)
	}
	return sg, nil
}

// MustLookupSpaceGroup is like LookupSpaceGroup but panics on error.
func MustLookupSpaceGroup(symbol string) SpaceGroup {
	sg, err := LookupSpaceGroup(symbol)
	if err != nil {
		panic(err)
	}
	return sg
}

// Number returns the International Tables number.
func (g SpaceGroup) Number() int { return g.number }

// Symbol returns the Hermann-Mauguin symbol.
func (g SpaceGroup) Symbol() string { return g.symbol }

// Centering returns the lattice centering letter (P, A, C, F, I or R).
func (g SpaceGroup) Centering() byte { return g.centering }

// PointGroup returns the point group of the space group.
func (g SpaceGroup) PointGroup() *PointGroup { return g.pointGroup }

// IsZero reports whether g is the zero value.
func (g SpaceGroup) IsZero() bool { return g.pointGroup == nil }

// Info returns the symbol and number of the group.
func (g SpaceGroup) Info() SpaceGroupInfo {
	return SpaceGroupInfo{Symbol: g.symbol, Number: g.number}
}

// Type returns the space group type used for asymmetric unit mapping.
func (g SpaceGroup) Type() SpaceGroupType {
	return SpaceGroupType{number: g.number, pointGroup: g.pointGroup}
}

func (g SpaceGroup) String() string {
	return g.Info().SymbolAndNumber()
}

type pattersonEntry struct {
	symbol string
	number int
}

// pattersonGroups maps centering plus Laue class to the symmorphic
// centrosymmetric group with that lattice and point symmetry.
var pattersonGroups = map[string]pattersonEntry{
	"P-1":    {"P -1", 2},
	"P2/m":   {"P 1 2/m 1", 10},
	"C2/m":   {"C 1 2/m 1", 12},
	"Pmmm":   {"P m m m", 47},
	"Cmmm":   {"C m m m", 65},
	"Ammm":   {"A m m m", 65},
	"Fmmm":   {"F m m m", 69},
	"Immm":   {"I m m m", 71},
	"P4/m":   {"P 4/m", 83},
	"I4/m":   {"I 4/m", 87},
	"P4/mmm": {"P 4/m m m", 123},
	"I4/mmm": {"I 4/m m m", 139},
	"P-3":    {"P -3", 147},
	"R-3":    {"R -3 :H", 148},
	"P-3m1":  {"P -3 m 1", 164},
	"P-31m":  {"P -3 1 m", 162},
	"R-3m1":  {"R -3 m :H", 166},
	"P6/m":   {"P 6/m", 175},
	"P6/mmm": {"P 6/m m m", 191},
	"Pm-3":   {"P m -3", 200},
	"Fm-3":   {"F m -3", 202},
	"Im-3":   {"I m -3", 204},
	"Pm-3m":  {"P m -3 m", 221},
	"Fm-3m":  {"F m -3 m", 225},
	"Im-3m":  {"I m -3 m", 229},
}

// BuildDerivedPattersonGroup returns the centrosymmetric group obtained by
// adding an inversion centre to the point group and dropping the
// translational parts, keeping the lattice centering.
func (g SpaceGroup) BuildDerivedPattersonGroup() SpaceGroup {
	laue := g.pointGroup.LaueClass()
	entry, ok := pattersonGroups[string(g.centering)+laue]
	if !ok {
		// every centering/Laue pair of the standard table is listed above
		panic(fmt.Sprintf("no patterson group for %s", g))
	}
	pg, err := LookupPointGroup(laue)
	if err != nil {
		panic(err)
	}
	return SpaceGroup{
		number:     entry.number,
		symbol:     entry.symbol,
		centering:  g.centering,
		pointGroup: pg,
	}
}
