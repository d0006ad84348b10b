// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "testing"

func TestIsBidiLabel(t *testing.T) {
	cases := []struct {
		label string
		want  bool
	}{
		{"abc", false},
		{"123", false},
		{"א", true},   // Hebrew, class R
		{"ا", true},   // Arabic, class AL
		{"日本語", false}, // CJK, class L
	}
	for _, tc := range cases {
		if got := isBidiLabel(tc.label); got != tc.want {
			t.Errorf("isBidiLabel(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestPassesBidiLTR(t *testing.T) {
	if !passesBidi("abc123") {
		t.Error(`passesBidi("abc123") = false, want true`)
	}
}

func TestPassesBidiRule1(t *testing.T) {
	// A digit (class EN) cannot open a label in a bidi domain: it sets
	// neither an LTR nor an RTL label direction (Rule 1).
	if passesBidi("0a") {
		t.Error(`passesBidi("0a") = true, want false`)
	}
}

func TestPassesBidiRule4ENAndANExclusive(t *testing.T) {
	// A Hebrew (R) label may contain Western digits (EN) or Arabic-Indic
	// digits (AN), but Rule 4 forbids mixing both in the same label.
	mixed := "א1١" // alef, '1' (EN), ARABIC-INDIC DIGIT ONE (AN)
	if passesBidi(mixed) {
		t.Errorf("passesBidi(%q) = true, want false (mixes EN and AN)", mixed)
	}
}

func TestPassesBidiEmptyLabel(t *testing.T) {
	if !passesBidi("") {
		t.Error(`passesBidi("") = false, want true`)
	}
}
