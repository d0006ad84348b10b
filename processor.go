// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const acePrefix = "xn--"

// hasTrivialFastPath reports whether domain can be returned verbatim
// without running the mapping/normalization/validation pipeline at all:
// non-empty, every byte in [a-z0-9.-], no label begins or ends with a
// hyphen, and no label begins with the ACE prefix. This is a performance
// shortcut only — find must classify every one of these bytes as Valid, so
// skipping the pipeline can never change the result (UTS #46 §4 step 1).
func hasTrivialFastPath(domain string) bool {
	if domain == "" {
		return false
	}
	for i := 0; i < len(domain); i++ {
		c := domain[i]
		switch {
		case c == '.' || c == '-':
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		default:
			return false
		}
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			continue
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		if strings.HasPrefix(label, acePrefix) {
			return false
		}
	}
	return true
}

// processing runs UTS #46 §4 over domain: map, NFC-normalize, split and
// decode/validate each label, then bidi-check the whole domain if needed.
// It returns the processed string and the accumulated error flags; any flag
// set there makes the domain invalid as a whole, but processing never
// short-circuits on the first failure (only a single label's Punycode
// decode is localized), so the returned string always reflects as much
// successful processing as possible.
func processing(domain string, transitional, useSTD3, checkHyphens bool) (string, *Errors) {
	errs := &Errors{}

	if hasTrivialFastPath(domain) {
		return domain, errs
	}

	var mapped strings.Builder
	mapped.Grow(len(domain))
	for _, c := range domain {
		mapChar(&mapped, c, transitional, useSTD3, errs)
	}

	normalized := norm.NFC.String(mapped.String())

	labels := strings.Split(normalized, ".")
	isBidiDomain := false
	valid := true
	for idx, label := range labels {
		if strings.HasPrefix(label, acePrefix) {
			decoded, err := decode(label[len(acePrefix):])
			if err != nil {
				errs.punycode = true
				isBidiDomain = true
				labels[idx] = ""
				continue
			}
			if !isBidiDomain {
				isBidiDomain = isBidiLabel(decoded)
			}
			if valid && (!norm.NFC.IsNormalString(decoded) || !isValidLabel(decoded, false, useSTD3, checkHyphens)) {
				valid = false
			}
			labels[idx] = decoded
		} else {
			if !isBidiDomain {
				isBidiDomain = isBidiLabel(label)
			}
			if !isValidLabel(label, transitional, useSTD3, checkHyphens) {
				valid = false
			}
		}
	}

	if isBidiDomain {
		for _, label := range labels {
			if !passesBidi(label) {
				valid = false
				break
			}
		}
	}

	if !valid {
		errs.validityCriteria = true
	}

	return strings.Join(labels, "."), errs
}
