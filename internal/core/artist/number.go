// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// decimalLiteral is the ECMAScript StrDecimalLiteral grammar without Infinity.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// toNumber converts a string the way ECMAScript's Number() does.
//
// Price band bounds come from the query string verbatim, so malformed input
// must degrade to NaN (which fails every comparison) rather than to an error.
// Surrounding whitespace is ignored and the empty string is 0.
func toNumber(raw string) float64 {
	s := strings.TrimFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return radixNumber(s[2:], 16)
		case 'o', 'O':
			return radixNumber(s[2:], 8)
		case 'b', 'B':
			return radixNumber(s[2:], 2)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	// ErrRange already yields ±Inf or 0, matching ECMAScript overflow.
	return value
}

// radixNumber parses an unsigned, prefix-stripped integer literal.
func radixNumber(digits string, base int) float64 {
	for _, r := range digits {
		value, err := strconv.ParseUint(string(r), base, 8)
		if err != nil || value >= uint64(base) {
			return math.NaN()
		}
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}

	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}
