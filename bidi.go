// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "golang.org/x/text/unicode/bidi"

// bidiClass returns the Unicode bidi class of c, the external property
// lookup spec.md §1 calls bidi_class(c). golang.org/x/text/unicode/bidi is
// the same package the teacher's own idna.go imports for this purpose.
func bidiClass(c rune) bidi.Class {
	p, _ := bidi.LookupRune(c)
	return p.Class()
}

// isBidiLabel reports whether label contains a non-ASCII-graphic scalar of
// bidi class R, AL or AN — the condition that makes the whole domain a
// "bidi domain" under RFC 5893 §1.1.
func isBidiLabel(label string) bool {
	for _, c := range label {
		if c >= 0x21 && c <= 0x7E {
			continue // ASCII graphic characters are never R/AL/AN
		}
		switch bidiClass(c) {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
	}
	return false
}

// passesBidi enforces RFC 5893 §2 on a single validated label. It is only
// meaningful once the caller has established that the domain as a whole is
// a bidi domain; a non-bidi domain passes trivially.
func passesBidi(label string) bool {
	runes := []rune(label)
	if len(runes) == 0 {
		return true
	}

	switch bidiClass(runes[0]) {
	case bidi.L:
		return passesBidiLTR(runes)
	case bidi.R, bidi.AL:
		return passesBidiRTL(runes)
	default:
		// Rule 1: the first character must set an LTR or RTL label direction.
		return false
	}
}

func passesBidiLTR(runes []rune) bool {
	// Rule 5: every character after the first must be in this set.
	for _, c := range runes[1:] {
		switch bidiClass(c) {
		case bidi.L, bidi.EN, bidi.ES, bidi.CS, bidi.ET, bidi.ON, bidi.BN, bidi.NSM:
		default:
			return false
		}
	}
	// Rule 6: strip trailing NSM, then require L or EN.
	last := lastNonNSM(runes)
	if last < 0 {
		return true
	}
	switch bidiClass(runes[last]) {
	case bidi.L, bidi.EN:
		return true
	default:
		return false
	}
}

func passesBidiRTL(runes []rune) bool {
	var foundEN, foundAN bool
	// Rule 2: every character after the first must be in this set.
	for _, c := range runes[1:] {
		class := bidiClass(c)
		switch class {
		case bidi.EN:
			foundEN = true
		case bidi.AN:
			foundAN = true
		}
		switch class {
		case bidi.R, bidi.AL, bidi.AN, bidi.EN, bidi.ES, bidi.CS, bidi.ET, bidi.ON, bidi.BN, bidi.NSM:
		default:
			return false
		}
	}
	// Rule 3: strip trailing NSM, then require R, AL, EN or AN.
	last := lastNonNSM(runes)
	if last >= 0 {
		switch bidiClass(runes[last]) {
		case bidi.R, bidi.AL, bidi.EN, bidi.AN:
		default:
			return false
		}
	}
	// Rule 4: must not contain both EN and AN.
	return !(foundEN && foundAN)
}

// lastNonNSM returns the index of the last rune that is not of bidi class
// NSM, or -1 if every rune after the first is NSM (or there is only one
// rune, the one Rule 1 already classified).
func lastNonNSM(runes []rune) int {
	for i := len(runes) - 1; i > 0; i-- {
		if bidiClass(runes[i]) != bidi.NSM {
			return i
		}
	}
	return -1
}
