// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "strings"

// Errors is the aggregate of every UTS #46 error flag raised while
// processing a domain. A zero Errors reports no failure; any flag set makes
// it a non-nil error. Errors deliberately does not record which label or
// code point triggered a flag: the contract is coarse on purpose, leaving
// room for future refinement without breaking callers that only branch on
// the predicate methods.
type Errors struct {
	punycode                  bool
	validityCriteria          bool
	disallowedBySTD3ASCIIRule bool
	disallowedMappedInSTD3    bool
	disallowedCharacter       bool
	tooLongForDNS             bool
	tooShortForDNS            bool
}

// Punycode reports whether a label's Punycode decoding failed, or a label's
// Punycode encoding overflowed.
func (e *Errors) Punycode() bool { return e.punycode }

// ValidityCriteria reports whether some label failed the UTS #46
// validity checks (hyphen placement, combining-mark start, disallowed
// mapping kind, or the bidi rule).
func (e *Errors) ValidityCriteria() bool { return e.validityCriteria }

// DisallowedBySTD3ASCIIRules reports whether a code point was
// DisallowedStd3Valid while UseSTD3ASCIIRules was enabled.
func (e *Errors) DisallowedBySTD3ASCIIRules() bool { return e.disallowedBySTD3ASCIIRule }

// DisallowedMappedInSTD3 reports whether a code point was
// DisallowedStd3Mapped while UseSTD3ASCIIRules was enabled.
func (e *Errors) DisallowedMappedInSTD3() bool { return e.disallowedMappedInSTD3 }

// DisallowedCharacter reports whether a code point was unconditionally
// Disallowed.
func (e *Errors) DisallowedCharacter() bool { return e.disallowedCharacter }

// TooLongForDNS reports whether VerifyDNSLength found a label longer than
// 63 bytes, or a domain longer than 253 bytes.
func (e *Errors) TooLongForDNS() bool { return e.tooLongForDNS }

// TooShortForDNS reports whether VerifyDNSLength found an empty label, or
// an empty domain.
func (e *Errors) TooShortForDNS() bool { return e.tooShortForDNS }

// failed reports whether any flag is set.
func (e *Errors) failed() bool {
	return e.punycode ||
		e.validityCriteria ||
		e.disallowedBySTD3ASCIIRule ||
		e.disallowedMappedInSTD3 ||
		e.disallowedCharacter ||
		e.tooLongForDNS ||
		e.tooShortForDNS
}

// asError returns e as an error if any flag is set, nil otherwise. This is
// how the package turns the accumulator into the Go-idiomatic error return
// of ToASCII/ToUnicode.
func (e *Errors) asError() error {
	if e == nil || !e.failed() {
		return nil
	}
	return e
}

// Error implements the error interface. It lists the flags that are set, in
// the fixed order they appear in UTS #46 §4, e.g. "idna: punycode,
// validity-criteria".
func (e *Errors) Error() string {
	var kinds []string
	if e.punycode {
		kinds = append(kinds, "punycode")
	}
	if e.validityCriteria {
		kinds = append(kinds, "validity-criteria")
	}
	if e.disallowedBySTD3ASCIIRule {
		kinds = append(kinds, "disallowed-by-std3-ascii-rules")
	}
	if e.disallowedMappedInSTD3 {
		kinds = append(kinds, "disallowed-mapped-in-std3")
	}
	if e.disallowedCharacter {
		kinds = append(kinds, "disallowed-character")
	}
	if e.tooLongForDNS {
		kinds = append(kinds, "too-long-for-dns")
	}
	if e.tooShortForDNS {
		kinds = append(kinds, "too-short-for-dns")
	}
	if len(kinds) == 0 {
		return "idna: no error"
	}
	return "idna: " + strings.Join(kinds, ", ")
}
