// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "testing"

type toASCIITest struct {
	profile *Profile
	in      string
	out     string
	wantErr bool
}

func doTest(t *testing.T, tests []toASCIITest, run func(p *Profile, s string) (string, error)) {
	for _, tc := range tests {
		got, err := run(tc.profile, tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("%q: got err = %v; want error: %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.out {
			t.Errorf("%q: got %q; want %q", tc.in, got, tc.out)
		}
	}
}

func TestProfileToASCII(t *testing.T) {
	doTest(t, []toASCIITest{
		{Punycode, "Bloß.de", "xn--blo-7ka.de", false},
		{Punycode, "xn--blo-7ka.de", "xn--blo-7ka.de", false},
		{Punycode, "example.com", "example.com", false},
		{Punycode, "日本語。ＪＰ", "xn--wgv71a119e.jp", false},
		{Punycode, "a⒈com", "a1.com", false},
		{New(UseSTD3ASCIIRules(true)), "a b.com", "", true},
	}, func(p *Profile, s string) (string, error) { return p.ToASCII(s) })
}

func TestProfileToUnicode(t *testing.T) {
	doTest(t, []toASCIITest{
		{Punycode, "xn--blo-7ka.de", "bloß.de", false},
		{Punycode, "example.com", "example.com", false},
		{Punycode, "xn--u-ccb.com", "", true},
	}, func(p *Profile, s string) (string, error) { return p.ToUnicode(s) })
}

func TestBidiDomains(t *testing.T) {
	out, err := Punycode.ToASCII("אבּג.ابج")
	if err != nil {
		t.Fatalf("ToASCII(%q): %v", "אבּג.ابج", err)
	}
	if out == "" {
		t.Errorf("ToASCII(%q): got empty output", "אבּג.ابج")
	}
	uni, err := Punycode.ToUnicode(out)
	if err != nil {
		t.Fatalf("ToUnicode(%q): %v", out, err)
	}
	if uni != "אבּג.ابج" {
		t.Errorf("round trip: got %q, want %q", uni, "אבּג.ابج")
	}

	if _, err := Punycode.ToASCII("0a.א"); err == nil {
		t.Error(`ToASCII("0a.א"): got nil error, want non-nil (bidi Rule 1 violation)`)
	}
}

func TestCombiningMarkStart(t *testing.T) {
	const in = "\U00011C3Aabc.com" // U+11C3A, a combining mark, at label start
	if _, err := Punycode.ToASCII(in); err == nil {
		t.Errorf("ToASCII(%q): got nil error, want non-nil", in)
	}
}

func TestVerifyDNSLength(t *testing.T) {
	p := New(VerifyDNSLength(true))
	if _, err := p.ToASCII(""); err == nil {
		t.Error(`ToASCII(""): got nil error, want non-nil`)
	}
	long63 := make([]byte, 63)
	for i := range long63 {
		long63[i] = 'a'
	}
	if _, err := p.ToASCII(string(long63) + ".com"); err != nil {
		t.Errorf("ToASCII(63-byte label): got %v, want nil", err)
	}
	if _, err := p.ToASCII(string(long63) + "a.com"); err == nil {
		t.Error("ToASCII(64-byte label): got nil error, want non-nil")
	}
}

func TestCheckHyphens(t *testing.T) {
	p := New(CheckHyphens(true))
	if _, err := p.ToUnicode("-a.com"); err == nil {
		t.Error(`ToUnicode("-a.com"): got nil error, want non-nil`)
	}
	if _, err := Punycode.ToUnicode("-a.com"); err != nil {
		t.Errorf(`Punycode.ToUnicode("-a.com"): got %v, want nil`, err)
	}
}

func TestToASCIIToUnicodeRoundTrip(t *testing.T) {
	cases := []string{"example.com", "Bloß.de", "日本語。ＪＰ"}
	for _, in := range cases {
		ascii, err := ToASCII(in)
		if err != nil {
			t.Errorf("ToASCII(%q): %v", in, err)
			continue
		}
		uni, err := ToUnicode(ascii)
		if err != nil {
			t.Errorf("ToUnicode(%q): %v", ascii, err)
			continue
		}
		asciiAgain, err := ToASCII(uni)
		if err != nil {
			t.Errorf("ToASCII(%q): %v", uni, err)
			continue
		}
		if asciiAgain != ascii {
			t.Errorf("round trip for %q: got %q, want %q", in, asciiAgain, ascii)
		}
	}
}

func TestASCIIFastPathIdempotent(t *testing.T) {
	const s = "www.example-site123.com"
	out, err := ToASCII(s)
	if err != nil {
		t.Fatalf("ToASCII(%q): %v", s, err)
	}
	if out != s {
		t.Errorf("ToASCII(%q) = %q, want unchanged", s, out)
	}
}
