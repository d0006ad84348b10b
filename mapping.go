// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// mappingKind is one of the seven UTS #46 mapping kinds a code point can
// fall into (UTS #46 §5).
type mappingKind uint8

const (
	kindValid mappingKind = iota
	kindIgnored
	kindMapped
	kindDeviation
	kindDisallowed
	kindDisallowedSTD3Valid
	kindDisallowedSTD3Mapped
)

// charRange is a closed, inclusive range of code points sharing a single
// index-table entry. Ranges are sorted by from and pairwise disjoint, and
// together they cover all of U+0000..U+10FFFF.
type charRange struct {
	from, to rune
}

// mapping is one entry of the mapping table. For kinds that carry a
// replacement string (Mapped, Deviation, DisallowedStd3Mapped), the
// replacement lives in stringTable[byteStart:byteStart+byteLen]. byteStart
// is split into two bytes, as in the original IDNA mapping-table generator,
// so that the struct packs into four bytes instead of six.
type mapping struct {
	kind        mappingKind
	byteStartLo uint8
	byteStartHi uint8
	byteLen     uint8
}

func (m mapping) replacement() string {
	start := int(m.byteStartHi)<<8 | int(m.byteStartLo)
	return stringTable[start : start+int(m.byteLen)]
}

// singleMarker flags an index-table entry that refers to one mapping entry
// shared by every code point in the range (as opposed to one mapping entry
// per code point, offset from the range's start). It occupies the high bit
// of the 16-bit index, leaving 15 bits — ample, since mappingTable never
// approaches 2^15 entries.
const singleMarker = 1 << 15

// find returns the Mapping that applies to c. The table covers the entire
// range U+0000..U+10FFFF, so the search always succeeds.
func find(c rune) mapping {
	lo, hi := 0, len(tableRanges)
	for lo < hi {
		mid := (lo + hi) / 2
		r := tableRanges[mid]
		switch {
		case c < r.from:
			hi = mid
		case c > r.to:
			lo = mid + 1
		default:
			x := tableIndex[mid]
			offset := x &^ singleMarker
			if x&singleMarker != 0 {
				return mappingTable[offset]
			}
			return mappingTable[offset+uint16(c-r.from)]
		}
	}
	// Unreachable: tableRanges is a total, gap-free partition of
	// U+0000..U+10FFFF (see tables.go and DESIGN.md).
	return mapping{kind: kindDisallowed}
}

// isFastASCII reports whether c is in the seven-bit subset that map_char
// always treats as Valid without consulting the table. This is purely a
// performance short-circuit: find(c) must agree for every c in this set.
func isFastASCII(c rune) bool {
	switch {
	case c == '.' || c == '-':
		return true
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	}
	return false
}

// foldFullwidthASCII folds a code point from the Halfwidth and Fullwidth
// Forms block (U+FF00-U+FFEF) to its narrow counterpart using
// golang.org/x/text/width, then applies the ASCII lowercasing a plain
// Mapped table entry would apply to a regular uppercase letter. Halfwidth
// Katakana and Hangul and the fullwidth symbol forms are folded too, to their
// wide or narrow counterparts. It reports ok=false for code points in the
// block that fold to themselves, which are left to the ordinary table lookup.
func foldFullwidthASCII(c rune) (s string, ok bool) {
	folded, _, err := transform.String(width.Fold, string(c))
	if err != nil || folded == string(c) {
		return "", false
	}
	if len(folded) == 1 && folded[0] >= 'A' && folded[0] <= 'Z' {
		folded = string(rune(folded[0] - 'A' + 'a'))
	}
	return folded, true
}

// mapChar applies UTS #46 §4 step 2 to a single code point, writing its
// replacement (if any) to out and flagging errs as appropriate.
func mapChar(out *strings.Builder, c rune, transitional, useSTD3 bool, errs *Errors) {
	if isFastASCII(c) {
		out.WriteRune(c)
		return
	}
	if c >= 0xFF00 && c <= 0xFFEF {
		if s, ok := foldFullwidthASCII(c); ok {
			out.WriteString(s)
			return
		}
	}
	m := find(c)
	switch m.kind {
	case kindValid:
		out.WriteRune(c)
	case kindIgnored:
		// produces no output
	case kindMapped:
		out.WriteString(m.replacement())
	case kindDeviation:
		if transitional {
			out.WriteString(m.replacement())
		} else {
			out.WriteRune(c)
		}
	case kindDisallowed:
		errs.disallowedCharacter = true
		out.WriteRune(c)
	case kindDisallowedSTD3Valid:
		if useSTD3 {
			errs.disallowedBySTD3ASCIIRule = true
		}
		out.WriteRune(c)
	case kindDisallowedSTD3Mapped:
		if useSTD3 {
			errs.disallowedMappedInSTD3 = true
		}
		out.WriteString(m.replacement())
	}
}
