// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "testing"

func TestIsCombiningMark(t *testing.T) {
	cases := map[rune]bool{
		'a':     false,
		'1':     false,
		0x0300:  true, // COMBINING GRAVE ACCENT
		0x11C3A: true, // BHAIKSUKI VOWEL SIGN O, Mn
	}
	for c, want := range cases {
		if got := isCombiningMark(c); got != want {
			t.Errorf("isCombiningMark(%#x) = %v, want %v", c, got, want)
		}
	}
}

func TestIsValidLabelHyphens(t *testing.T) {
	if isValidLabel("-ab", false, false, true) {
		t.Error(`isValidLabel("-ab", checkHyphens=true) = true, want false`)
	}
	if !isValidLabel("-ab", false, false, false) {
		t.Error(`isValidLabel("-ab", checkHyphens=false) = false, want true`)
	}
	if !isValidLabel("r3---sn-apo3qvuoxuxbt-j5pe", false, false, true) {
		t.Error("isValidLabel rejected a real-world label with hyphens in positions 3-4 (V2 deliberately unenforced)")
	}
}

func TestIsValidLabelCombiningMarkStart(t *testing.T) {
	if isValidLabel("̀ab", false, false, false) {
		t.Error("isValidLabel accepted a label starting with a combining mark")
	}
}

func TestIsValidLabelDeviationTransitional(t *testing.T) {
	if isValidLabel("ß", true, false, false) {
		t.Error("isValidLabel accepted a deviation character under transitional processing")
	}
	if !isValidLabel("ß", false, false, false) {
		t.Error("isValidLabel rejected a deviation character under non-transitional processing")
	}
}

func TestIsValidLabelSTD3(t *testing.T) {
	if isValidLabel("a b", false, true, false) {
		t.Error("isValidLabel accepted a space under UseSTD3ASCIIRules")
	}
	if !isValidLabel("a b", false, false, false) {
		t.Error("isValidLabel rejected a space with UseSTD3ASCIIRules off")
	}
}

func TestIsValidLabelEmpty(t *testing.T) {
	if !isValidLabel("", false, false, false) {
		t.Error(`isValidLabel("") = false, want true`)
	}
}
