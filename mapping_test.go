// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"strings"
	"testing"
)

func TestFindIsTotal(t *testing.T) {
	// A scan over the whole codespace is too slow to run on every test
	// invocation; spot-check the range boundaries around the controls,
	// surrogates, private-use areas and noncharacters instead.
	probes := []rune{
		0, 0x7F, 0x80, 0x9F, 0xA0, 0xD7FF, 0xD800, 0xDFFF, 0xE000,
		0xFFFD, 0xFFFE, 0xFFFF, 0x10000, 0x10FFFD, 0x10FFFE, 0x10FFFF,
	}
	for _, c := range probes {
		m := find(c)
		if int(m.kind) > int(kindDisallowedSTD3Mapped) {
			t.Errorf("find(%#x).kind = %d, out of range", c, m.kind)
		}
	}
}

func TestFindUppercaseMapsToLowercase(t *testing.T) {
	m := find('A')
	if m.kind != kindMapped || m.replacement() != "a" {
		t.Errorf("find('A') = {kind:%d, repl:%q}, want {kindMapped, \"a\"}", m.kind, m.replacement())
	}
}

func TestFindDeviationCharacters(t *testing.T) {
	cases := map[rune]string{
		0x00DF: "ss", // ß
		0x03C2: "σ",  // ς
		0x200C: "",   // ZWNJ
		0x200D: "",   // ZWJ
	}
	for c, want := range cases {
		m := find(c)
		if m.kind != kindDeviation {
			t.Errorf("find(%#x).kind = %d, want kindDeviation", c, m.kind)
			continue
		}
		if m.replacement() != want {
			t.Errorf("find(%#x).replacement() = %q, want %q", c, m.replacement(), want)
		}
	}
}

func TestFindDefaultsToValid(t *testing.T) {
	// Code points not itemized in sourceEntries, e.g. ordinary CJK
	// ideographs, must default to Valid rather than be rejected.
	for _, c := range []rune{0x65E5, 0x672C, 0x8A9E} { // 日 本 語
		if m := find(c); m.kind != kindValid {
			t.Errorf("find(%#x).kind = %d, want kindValid", c, m.kind)
		}
	}
}

func TestMapCharDisallowed(t *testing.T) {
	var out strings.Builder
	errs := &Errors{}
	mapChar(&out, 0x0000, false, false, errs) // C0 control, unconditionally Disallowed
	if !errs.disallowedCharacter {
		t.Error("mapChar(U+0000): disallowedCharacter not set")
	}
}

func TestMapCharSTD3(t *testing.T) {
	var out strings.Builder
	errs := &Errors{}
	mapChar(&out, ' ', false, true, errs) // space, DisallowedStd3Valid
	if !errs.disallowedBySTD3ASCIIRule {
		t.Error("mapChar(' ', useSTD3=true): disallowedBySTD3ASCIIRule not set")
	}

	out.Reset()
	errs = &Errors{}
	mapChar(&out, ' ', false, false, errs)
	if errs.failed() {
		t.Error("mapChar(' ', useSTD3=false): unexpected error")
	}
}

func TestIsFastASCIIAgreesWithFind(t *testing.T) {
	for c := rune('a'); c <= 'z'; c++ {
		if !isFastASCII(c) {
			t.Fatalf("isFastASCII(%q) = false, want true", c)
		}
		if m := find(c); m.kind != kindValid {
			t.Errorf("find(%q).kind = %d, want kindValid (isFastASCII disagrees with find)", c, m.kind)
		}
	}
	for c := rune('0'); c <= '9'; c++ {
		if m := find(c); m.kind != kindValid {
			t.Errorf("find(%q).kind = %d, want kindValid", c, m.kind)
		}
	}
}
