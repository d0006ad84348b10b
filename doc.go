// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package idna implements IDNA compatibility processing as defined by
// Unicode Technical Standard #46 (https://www.unicode.org/reports/tr46),
// together with the Punycode bootstring encoding of RFC 3492.
//
// Given a domain name containing arbitrary Unicode, Profile.ToASCII produces
// an ASCII-compatible encoding (ACE) suitable for DNS resolution, and
// Profile.ToUnicode produces a display form with every label decoded back to
// Unicode. Both apply the mapping, normalization, validation and bidi steps
// of UTS #46 §4 before touching the wire format.
//
// This package does not implement the ContextJ/ContextO joiner rules of RFC
// 5892, and it does not attempt to reproduce legacy IDNA2003 behavior beyond
// the four UTS #46 deviation characters.
package idna
