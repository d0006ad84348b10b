// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "unicode"

// isCombiningMark reports whether c is a Unicode combining mark (general
// category M: Mn, Mc or Me). Every other external property this package
// needs (bidi class, NFC normalization, fullwidth folding) comes from
// golang.org/x/text, which the teacher package already depends on for the
// same purposes; golang.org/x/text has no exported combining-mark query, so
// this one case falls back to the standard library's unicode package.
func isCombiningMark(c rune) bool {
	return unicode.Is(unicode.Mn, c) || unicode.Is(unicode.Mc, c) || unicode.Is(unicode.Me, c)
}

// isValidLabel reports whether label passes the UTS #46 validity criteria
// V3, V5 and V6. The NFC and bidi criteria are checked by the caller,
// processing, to avoid duplicate work across the whole domain; see UTS #46
// §4, Validity Criteria.
//
// V2 (no hyphen in both the third and fourth position) is deliberately not
// checked: real-world deployments like "r3---sn-apo3qvuoxuxbt-j5pe" violate
// it routinely, and enforcing it would reject working domain names.
func isValidLabel(label string, transitional, useSTD3, checkHyphens bool) bool {
	runes := []rune(label)
	if len(runes) == 0 {
		return true
	}

	// V3: must not begin or end with a hyphen-minus.
	if checkHyphens && (runes[0] == '-' || runes[len(runes)-1] == '-') {
		return false
	}

	// V5: must not begin with a combining mark.
	if isCombiningMark(runes[0]) {
		return false
	}

	// V6: every code point's mapping kind must be acceptable.
	for _, c := range runes {
		if isFastASCII(c) {
			continue
		}
		switch find(c).kind {
		case kindValid:
		case kindDeviation:
			if transitional {
				return false
			}
		case kindDisallowedSTD3Valid:
			if useSTD3 {
				return false
			}
		default:
			return false
		}
	}

	// V7 (ContextJ) is unimplemented; see SPEC_FULL.md §9 for the deferred
	// CheckJoiners flag this leaves room for.
	return true
}
