// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"errors"
	"sort"
	"strings"
)

// Bootstring parameters for Punycode (RFC 3492 §5).
const (
	puncBase        uint32 = 36
	puncTMin        uint32 = 1
	puncTMax        uint32 = 26
	puncSkew        uint32 = 38
	puncDamp        uint32 = 700
	puncInitialBias uint32 = 72
	puncInitialN    uint32 = 0x80
	puncDelimiter          = '-'
)

var errPunycodeOverflow = errors.New("idna: punycode overflow")
var errPunycodeInvalid = errors.New("idna: malformed punycode")

// adapt is the bias adaptation function shared by encode and decode
// (RFC 3492 §6.1).
func adapt(delta, numPoints uint32, firstTime bool) uint32 {
	if firstTime {
		delta /= puncDamp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := uint32(0)
	for delta > ((puncBase-puncTMin)*puncTMax)/2 {
		delta /= puncBase - puncTMin
		k += puncBase
	}
	return k + ((puncBase-puncTMin+1)*delta)/(delta+puncSkew)
}

func digitValue(b byte) (uint32, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b-'0') + 26, true
	case b >= 'A' && b <= 'Z':
		return uint32(b - 'A'), true
	case b >= 'a' && b <= 'z':
		return uint32(b - 'a'), true
	}
	return 0, false
}

func digitSymbol(v uint32) byte {
	if v < 26 {
		return byte(v) + 'a'
	}
	return byte(v-26) + '0'
}

func threshold(k, bias uint32) uint32 {
	switch {
	case k <= bias:
		return puncTMin
	case k >= bias+puncTMax:
		return puncTMax
	}
	return k - bias
}

// decode converts the bare Punycode payload of a single label (the part
// after the "xn--" ACE prefix) to Unicode. It returns an error on malformed
// input or on arithmetic overflow, never on anything else; overflow can
// only occur on inputs that would need to encode more than the 63-byte DNS
// label limit allows.
func decode(input string) (string, error) {
	base, extended := "", input
	if i := strings.LastIndexByte(input, puncDelimiter); i >= 0 {
		base, extended = input[:i], input[i+1:]
	}
	for i := 0; i < len(base); i++ {
		if base[i] >= 0x80 {
			return "", errPunycodeInvalid
		}
	}

	type insertion struct {
		pos int
		c   rune
	}
	var insertions []insertion

	length := uint32(len(base))
	codePoint := puncInitialN
	bias := puncInitialBias
	i := uint32(0)

	pos := 0
	for pos < len(extended) {
		previousI := i
		weight := uint32(1)
		k := puncBase
		for {
			if pos >= len(extended) {
				return "", errPunycodeInvalid
			}
			digit, ok := digitValue(extended[pos])
			pos++
			if !ok {
				return "", errPunycodeInvalid
			}
			if digit > (maxUint32-i)/weight {
				return "", errPunycodeOverflow
			}
			i += digit * weight
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if weight > maxUint32/(puncBase-t) {
				return "", errPunycodeOverflow
			}
			weight *= puncBase - t
			k += puncBase
		}
		bias = adapt(i-previousI, length+1, previousI == 0)
		if i/(length+1) > maxUint32-codePoint {
			return "", errPunycodeOverflow
		}
		codePoint += i / (length + 1)
		i %= length + 1
		if codePoint > maxRune || !isValidScalar(rune(codePoint)) {
			return "", errPunycodeInvalid
		}

		insertAt := int(i)
		for idx := range insertions {
			if insertions[idx].pos >= insertAt {
				insertions[idx].pos++
			}
		}
		insertions = append(insertions, insertion{pos: insertAt, c: rune(codePoint)})
		length++
		i++
	}

	sort.SliceStable(insertions, func(a, b int) bool { return insertions[a].pos < insertions[b].pos })

	var out strings.Builder
	out.Grow(len(base) + len(insertions))
	baseRunes := []rune(base)
	bi, ii, position := 0, 0, 0
	for bi < len(baseRunes) || ii < len(insertions) {
		if ii < len(insertions) && insertions[ii].pos == position {
			out.WriteRune(insertions[ii].c)
			ii++
			position++
			continue
		}
		if bi < len(baseRunes) {
			out.WriteRune(baseRunes[bi])
			bi++
			position++
			continue
		}
		break
	}
	return out.String(), nil
}

// isValidScalar reports whether c is a Unicode scalar value (excludes
// surrogates, which are never legal standalone code points).
func isValidScalar(c rune) bool {
	return c >= 0 && c <= maxRune && !(c >= 0xD800 && c <= 0xDFFF)
}

const maxUint32 = 1<<32 - 1

// encode converts a single Unicode label to its bare Punycode payload (no
// "xn--" prefix). It returns an error on arithmetic overflow, which can
// only happen on inputs longer than the 63-byte DNS label limit allows.
func encode(input string) (string, error) {
	runes := []rune(input)
	var out strings.Builder
	basicLength := 0
	for _, c := range runes {
		if c < 0x80 {
			out.WriteRune(c)
			basicLength++
		}
	}
	if basicLength > 0 {
		out.WriteByte(puncDelimiter)
	}

	inputLength := uint32(len(runes))
	codePoint := puncInitialN
	delta := uint32(0)
	bias := puncInitialBias
	processed := uint32(basicLength)

	for processed < inputLength {
		minCodePoint := uint32(maxRune) + 1
		for _, c := range runes {
			u := uint32(c)
			if u >= codePoint && u < minCodePoint {
				minCodePoint = u
			}
		}
		if minCodePoint-codePoint > (maxUint32-delta)/(processed+1) {
			return "", errPunycodeOverflow
		}
		delta += (minCodePoint - codePoint) * (processed + 1)
		codePoint = minCodePoint

		for _, c := range runes {
			u := uint32(c)
			if u < codePoint {
				delta++
				if delta == 0 {
					return "", errPunycodeOverflow
				}
			}
			if u == codePoint {
				q := delta
				for k := puncBase; ; k += puncBase {
					t := threshold(k, bias)
					if q < t {
						out.WriteByte(digitSymbol(q))
						break
					}
					out.WriteByte(digitSymbol(t + (q-t)%(puncBase-t)))
					q = (q - t) / (puncBase - t)
				}
				bias = adapt(delta, processed+1, processed == uint32(basicLength))
				delta = 0
				processed++
			}
		}
		delta++
		codePoint++
	}
	return out.String(), nil
}
