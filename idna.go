// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"fmt"
	"strings"
)

// options holds the four knobs spec.md's Config exposes, gathered by
// applying a Profile's Options in order. The zero value matches the most
// permissive combination: no STD3 restriction, non-transitional processing,
// no DNS length check, no hyphen check.
type options struct {
	useSTD3ASCIIRules bool
	transitional      bool
	verifyDNSLength   bool
	checkHyphens      bool
}

// Option configures a Profile. It follows the same functional-options shape
// golang.org/x/text uses throughout its public API.
type Option func(*options)

// UseSTD3ASCIIRules sets whether to enforce the restrictions on ASCII
// characters (STD3 rules) defined in RFC 1122 and the UTS #46 validity
// criteria V1 and V6. When use is true, an ASCII code point other than a
// letter, a digit, the hyphen-minus or the label separator '.' anywhere in a
// domain makes the domain invalid; uppercase letters are still mapped to
// lowercase.
func UseSTD3ASCIIRules(use bool) Option {
	return func(o *options) { o.useSTD3ASCIIRules = use }
}

// Transitional sets whether to use the transitional (IDNA2003-compatible)
// mapping for the four deviation characters, instead of IDNA2008's
// non-transitional mapping. Almost all consumers want this false; it exists
// only for interoperability with software that has not migrated off
// IDNA2003.
func Transitional(transitional bool) Option {
	return func(o *options) { o.transitional = transitional }
}

// VerifyDNSLength sets whether ToASCII and ToUnicode enforce the DNS length
// restrictions: no empty label, no label over 63 bytes, no domain over 253
// bytes.
func VerifyDNSLength(verify bool) Option {
	return func(o *options) { o.verifyDNSLength = verify }
}

// CheckHyphens sets whether to enforce UTS #46 validity criterion V3 (a
// label may not begin or end with a hyphen-minus). Real-world domains that
// use Punycode-like naming conventions for unrelated purposes routinely
// violate this, so it defaults to off.
func CheckHyphens(check bool) Option {
	return func(o *options) { o.checkHyphens = check }
}

// A Profile is an idna profile combining a set of options into a consistent
// ToASCII/ToUnicode pair, as described in UTS #46.
type Profile options

// New creates a new Profile by applying opts in order.
func New(opts ...Option) *Profile {
	var o options
	for _, f := range opts {
		f(&o)
	}
	return (*Profile)(&o)
}

// Punycode is the Profile that applies no validation beyond what Punycode
// itself requires: no STD3 rules, no DNS length check, no hyphen check,
// non-transitional mapping. It is the Profile the package-level ToASCII and
// ToUnicode functions use.
var Punycode = New()

// Display is a Profile suitable for presenting domain names to a user,
// mirroring the matching profile in UTS #46 §4, Processing: non-transitional
// mapping, STD3 rules and hyphen checks enabled, no DNS length enforcement.
var Display = New(UseSTD3ASCIIRules(true), CheckHyphens(true))

// Registration is a Profile suitable for a domain registrar accepting new
// registrations, mirroring the matching profile in UTS #46 §4, Processing:
// every optional check enabled.
var Registration = New(
	UseSTD3ASCIIRules(true),
	CheckHyphens(true),
	VerifyDNSLength(true),
)

// ToASCII converts a domain name to its ASCII form using the Punycode
// profile (no extra validation). It is a shorthand for Punycode.ToASCII.
func ToASCII(s string) (string, error) { return Punycode.ToASCII(s) }

// ToUnicode converts a domain name to its Unicode form using the Punycode
// profile (no extra validation). It is a shorthand for Punycode.ToUnicode.
func ToUnicode(s string) (string, error) { return Punycode.ToUnicode(s) }

// ToUnicode converts domain to Unicode per UTS #46 §4: map, normalize,
// split into labels, decode any Punycode label, validate, and bidi-check.
// It returns the best-effort processed string together with any validation
// error; the string is returned even on error, since partial processing is
// often still useful to a caller that only logs the failure.
func (p *Profile) ToUnicode(domain string) (string, error) {
	o := (*options)(p)
	out, errs := processing(domain, o.transitional, o.useSTD3ASCIIRules, o.checkHyphens)
	if o.verifyDNSLength {
		checkDNSLength(out, errs)
	}
	return out, errs.asError()
}

// ToASCII converts domain to its ASCII, Punycode-encoded form per UTS #46
// §4: it runs the same mapping/normalization/validation pipeline as
// ToUnicode, then Punycode-encodes every label that is not already pure
// ASCII, prefixing it with "xn--".
func (p *Profile) ToASCII(domain string) (string, error) {
	o := (*options)(p)
	unicodeForm, errs := processing(domain, o.transitional, o.useSTD3ASCIIRules, o.checkHyphens)

	labels := strings.Split(unicodeForm, ".")
	for i, label := range labels {
		if isASCII(label) {
			continue
		}
		encoded, err := encode(label)
		if err != nil {
			errs.punycode = true
			continue
		}
		labels[i] = acePrefix + encoded
	}
	out := strings.Join(labels, ".")

	if o.verifyDNSLength {
		checkDNSLength(out, errs)
	}
	return out, errs.asError()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// checkDNSLength enforces the DNS length restrictions VerifyDNSLength opts
// into: no empty label, no label over 63 bytes, no domain (excluding the
// trailing root dot) over 253 bytes.
func checkDNSLength(domain string, errs *Errors) {
	if domain == "" {
		errs.tooShortForDNS = true
		return
	}
	trimmed := strings.TrimSuffix(domain, ".")
	if len(trimmed) > 253 {
		errs.tooLongForDNS = true
	}
	for _, label := range strings.Split(trimmed, ".") {
		switch {
		case len(label) == 0:
			errs.tooShortForDNS = true
		case len(label) > 63:
			errs.tooLongForDNS = true
		}
	}
}

// String is provided so a Profile prints usefully in logs and test failures;
// it is not part of the processing contract.
func (p *Profile) String() string {
	o := (*options)(p)
	return fmt.Sprintf(
		"idna.Profile{UseSTD3ASCIIRules:%v, Transitional:%v, VerifyDNSLength:%v, CheckHyphens:%v}",
		o.useSTD3ASCIIRules, o.transitional, o.verifyDNSLength, o.checkHyphens,
	)
}
