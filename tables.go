// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"sort"
	"strings"
)

// This file is the static classification data backing find (mapping.go).
// It plays the role the teacher package's generated tables.go/trie.go play,
// but in the range+index+mapping-kind shape spec.md §3/§4.A specifies
// rather than a trie: the official build-time generator that turns
// IdnaMappingTable.txt into such a table is out of scope (see SPEC_FULL.md
// §4.A), so the data below is hand-authored from the publicly documented
// UTS #46 mapping rules for the ranges that matter to this package's
// contract, plus a conservative default for everything else.
//
// Source entries (sourceEntries) are deliberately higher-level than the
// packed runtime representation: a single sourceEntry can expand to many
// mappingTable rows (the "per code point" storage mode) or to one shared
// row (the "singleton" storage mode). buildTables expands sourceEntries
// into tableRanges/tableIndex/mappingTable/stringTable once, at package
// load, exactly as a real code generator would, except the expansion runs
// in Go rather than in a separate command.

const maxRune = 0x10FFFF

// sourceEntry describes one contiguous, disjoint run of code points sharing
// a classification.
type sourceEntry struct {
	from, to rune
	kind     mappingKind
	repl     string           // singleton replacement, shared by the whole run
	perChar  func(rune) string // when non-nil, computed independently per code point
}

func lower32(c rune) string { return string(c + 32) }

func digitsFrom(base rune) func(rune) string {
	return func(c rune) string { return string(rune('0') + (c - base)) }
}

// sourceEntries must be pairwise disjoint; they need not be listed in order,
// since buildTables sorts them by from before it fills every gap between them (and before the first / after the last) with
// Valid, which is the correct default for the overwhelming majority of
// assigned, uncontroversial Unicode scalars that this table does not single
// out. Known-bad zones (controls, surrogates, private-use areas,
// noncharacters) are listed explicitly as Disallowed instead of relying on
// that default.
var sourceEntries = []sourceEntry{
	// C0 controls.
	{0x0000, 0x001F, kindDisallowed, "", nil},
	{0x0020, 0x0020, kindDisallowedSTD3Valid, "", nil}, // space
	{0x0021, 0x002C, kindDisallowedSTD3Valid, "", nil}, // ! " # $ % & ' ( ) * + ,
	{0x002D, 0x002D, kindValid, "", nil},                // -
	{0x002E, 0x002E, kindValid, "", nil},                // .
	{0x002F, 0x002F, kindDisallowedSTD3Valid, "", nil},  // /
	{0x0030, 0x0039, kindValid, "", nil},                // 0-9
	{0x003A, 0x0040, kindDisallowedSTD3Valid, "", nil},  // : ; < = > ? @
	{0x0041, 0x005A, kindMapped, "", lower32},           // A-Z -> a-z
	{0x005B, 0x0060, kindDisallowedSTD3Valid, "", nil},  // [ \ ] ^ _ `
	{0x0061, 0x007A, kindValid, "", nil},                // a-z
	{0x007B, 0x007E, kindDisallowedSTD3Valid, "", nil},  // { | } ~
	{0x007F, 0x007F, kindDisallowed, "", nil},           // DEL

	// Latin-1 Supplement.
	{0x0080, 0x009F, kindDisallowed, "", nil}, // C1 controls
	{0x00A0, 0x00A0, kindMapped, " ", nil},    // NBSP -> space
	{0x00A1, 0x00A7, kindDisallowedSTD3Valid, "", nil},
	{0x00A8, 0x00A8, kindDisallowedSTD3Valid, "", nil},
	{0x00A9, 0x00A9, kindDisallowedSTD3Valid, "", nil},
	{0x00AA, 0x00AA, kindMapped, "a", nil}, // FEMININE ORDINAL INDICATOR
	{0x00AB, 0x00AC, kindDisallowedSTD3Valid, "", nil},
	{0x00AD, 0x00AD, kindIgnored, "", nil}, // SOFT HYPHEN
	{0x00AE, 0x00AF, kindDisallowedSTD3Valid, "", nil},
	{0x00B0, 0x00B1, kindDisallowedSTD3Valid, "", nil},
	{0x00B2, 0x00B2, kindMapped, "2", nil}, // SUPERSCRIPT TWO
	{0x00B3, 0x00B3, kindMapped, "3", nil}, // SUPERSCRIPT THREE
	{0x00B4, 0x00B4, kindDisallowedSTD3Valid, "", nil},
	{0x00B5, 0x00B5, kindMapped, "μ", nil}, // MICRO SIGN -> GREEK SMALL LETTER MU
	{0x00B6, 0x00B8, kindDisallowedSTD3Valid, "", nil},
	{0x00B9, 0x00B9, kindMapped, "1", nil}, // SUPERSCRIPT ONE
	{0x00BA, 0x00BA, kindMapped, "o", nil}, // MASCULINE ORDINAL INDICATOR
	{0x00BB, 0x00BF, kindDisallowedSTD3Valid, "", nil},
	{0x00C0, 0x00D6, kindMapped, "", lower32}, // À-Ö -> à-ö
	{0x00D7, 0x00D7, kindDisallowedSTD3Valid, "", nil},
	{0x00D8, 0x00DE, kindMapped, "", lower32}, // Ø-Þ -> ø-þ
	{0x00DF, 0x00DF, kindDeviation, "ss", nil}, // ß
	{0x00E0, 0x00F6, kindValid, "", nil},
	{0x00F7, 0x00F7, kindDisallowedSTD3Valid, "", nil},
	{0x00F8, 0x00FF, kindValid, "", nil},

	// Combining Diacritical Marks.
	{0x0300, 0x036F, kindValid, "", nil},

	// Greek and Coptic.
	{0x037E, 0x037E, kindMapped, ";", nil},     // GREEK QUESTION MARK
	{0x0391, 0x03A1, kindMapped, "", lower32},  // Α-Ρ -> α-ρ
	{0x03A3, 0x03AB, kindMapped, "", lower32},  // Σ-Ϋ -> σ-ϋ (skips reserved 03A2)
	{0x03C2, 0x03C2, kindDeviation, "σ", nil}, // ς -> σ

	// Cyrillic.
	{0x0410, 0x042F, kindMapped, "", lower32}, // А-Я -> а-я

	// General Punctuation.
	{0x2000, 0x200A, kindMapped, " ", nil},  // various spaces -> space
	{0x200B, 0x200B, kindIgnored, "", nil},  // ZERO WIDTH SPACE
	{0x200C, 0x200C, kindDeviation, "", nil}, // ZWNJ
	{0x200D, 0x200D, kindDeviation, "", nil}, // ZWJ
	{0x200E, 0x200F, kindDisallowed, "", nil}, // LRM, RLM
	{0x2010, 0x2015, kindMapped, "-", nil},  // hyphens and dashes -> hyphen-minus
	{0x2016, 0x2027, kindDisallowedSTD3Valid, "", nil},
	{0x2028, 0x202E, kindDisallowed, "", nil}, // separators, embeddings, overrides
	{0x202F, 0x202F, kindMapped, " ", nil},    // NARROW NO-BREAK SPACE
	{0x2030, 0x205E, kindDisallowedSTD3Valid, "", nil},
	{0x205F, 0x205F, kindMapped, " ", nil}, // MEDIUM MATHEMATICAL SPACE
	{0x2060, 0x2064, kindIgnored, "", nil}, // word joiner, invisible operators
	{0x2065, 0x2065, kindDisallowed, "", nil},
	{0x2066, 0x206F, kindDisallowed, "", nil}, // directional isolates, deprecated format chars

	// Superscripts and Subscripts.
	{0x2070, 0x2070, kindMapped, "0", nil},
	{0x2074, 0x2079, kindMapped, "", digitsFrom(0x2070)}, // superscript 4-9
	{0x2080, 0x2089, kindMapped, "", digitsFrom(0x2080)}, // subscript 0-9

	// Enclosed Alphanumerics.
	{0x2488, 0x2488, kindDisallowedSTD3Mapped, "1.", nil}, // DIGIT ONE FULL STOP

	// CJK Symbols and Punctuation.
	{0x3000, 0x3000, kindMapped, " ", nil}, // IDEOGRAPHIC SPACE
	{0x3002, 0x3002, kindMapped, ".", nil}, // IDEOGRAPHIC FULL STOP

	// Halfwidth and Fullwidth Forms: every code point that
	// golang.org/x/text/width folds to a different one is replaced at
	// runtime in mapChar (see mapping.go); this entry only covers the code
	// points of the block that fold to themselves, which this table treats
	// as valid rather than itemizing individually.
	{0xFF00, 0xFFEF, kindValid, "", nil},
	{0xFFFE, 0xFFFF, kindDisallowed, "", nil}, // BMP noncharacters

	// Surrogates and Private Use Area.
	{0xD800, 0xDFFF, kindDisallowed, "", nil},
	{0xE000, 0xF8FF, kindDisallowed, "", nil},

	// Supplementary Private Use Areas A and B.
	{0xF0000, 0xFFFFD, kindDisallowed, "", nil},
	{0x100000, 0x10FFFD, kindDisallowed, "", nil},
}

func init() {
	tableRanges, tableIndex, mappingTable, stringTable = buildTables(sourceEntries)
}

var (
	tableRanges  []charRange
	tableIndex   []uint16
	mappingTable []mapping
	stringTable  string
)

// buildTables expands the human-authored sourceEntries into the packed,
// binary-searchable representation find (mapping.go) queries at run time,
// filling any gaps between entries with Valid so the result is total over
// U+0000..U+10FFFF.
func buildTables(entries []sourceEntry) (ranges []charRange, index []uint16, maps []mapping, strs string) {
	sorted := append([]sourceEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].from < sorted[j].from })

	var filled []sourceEntry
	next := rune(0)
	for _, e := range sorted {
		if e.from > next {
			filled = append(filled, sourceEntry{from: next, to: e.from - 1, kind: kindValid})
		}
		filled = append(filled, e)
		next = e.to + 1
	}
	if next <= maxRune {
		filled = append(filled, sourceEntry{from: next, to: maxRune, kind: kindValid})
	}

	var sb strings.Builder
	intern := func(s string) (lo, hi, ln uint8) {
		if s == "" {
			return 0, 0, 0
		}
		start := sb.Len()
		sb.WriteString(s)
		return uint8(start & 0xFF), uint8((start >> 8) & 0xFF), uint8(len(s))
	}

	for _, e := range filled {
		ranges = append(ranges, charRange{from: e.from, to: e.to})
		if e.perChar != nil {
			offset := uint16(len(maps))
			for c := e.from; c <= e.to; c++ {
				lo, hi, ln := intern(e.perChar(c))
				maps = append(maps, mapping{kind: e.kind, byteStartLo: lo, byteStartHi: hi, byteLen: ln})
			}
			index = append(index, offset)
		} else {
			lo, hi, ln := intern(e.repl)
			offset := uint16(len(maps))
			maps = append(maps, mapping{kind: e.kind, byteStartLo: lo, byteStartHi: hi, byteLen: ln})
			index = append(index, offset|singleMarker)
		}
	}
	return ranges, index, maps, sb.String()
}
