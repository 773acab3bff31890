package token

import (
	"errors"
	"math"
	"strconv"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseUint accumulates decimal digits, failing on anything else or when the
// value would pass max.
func parseUint(t Trimmer, max uint64) (uint64, bool) {
	var v uint64
	n := 0
	for b, ok := t.Next(); ok; b, ok = t.Next() {
		if !isDigit(b) {
			return 0, false
		}
		d := uint64(b - '0')
		if v > (max-d)/10 {
			return 0, false
		}
		v = v*10 + d
		n++
	}
	return v, n > 0
}

func parseInt(t Trimmer, min, max int64) (int64, bool) {
	fork := t
	b, ok := fork.Next()
	if !ok {
		return 0, false
	}
	neg := b == '-'
	limit := uint64(max)
	if neg {
		t = fork
		limit = uint64(-(min + 1)) + 1
	}
	u, ok := parseUint(t, limit)
	if !ok {
		return 0, false
	}
	if neg {
		return -int64(u-1) - 1, true
	}
	return int64(u), true
}

// exponent accumulation saturates here; anything beyond is 0 or ±Inf for
// every float width.
const maxExp = 1 << 20

// parseFloat scans an optionally signed decimal with optional fraction and
// exponent, or one of the tokens nan, inf and infinity in any case.
//
// The scan validates the text and tracks the mantissa in the target width: if
// the mantissa alone overflows, the result is ±Inf straight away. Otherwise
// the normalized digits are handed to strconv for a correctly rounded value.
func parseFloat(d []byte, bits int) (float64, bool) {
	if f, ok := specialFloat(d); ok {
		return f, true
	}
	i := 0
	neg := false
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		neg = d[i] == '-'
		i++
	}
	overflow := func(m float64) bool {
		if bits == 32 {
			return math.IsInf(float64(float32(m)), 0)
		}
		return math.IsInf(m, 0)
	}
	inf := math.Inf(1)
	if neg {
		inf = math.Inf(-1)
	}

	norm := make([]byte, 0, len(d)+8)
	if neg {
		norm = append(norm, '-')
	}
	var (
		mant   float64
		exp    int64
		digits int
	)
	for ; i < len(d) && isDigit(d[i]); i++ {
		mant = mant*10 + float64(d[i]-'0')
		if overflow(mant) {
			return inf, true
		}
		norm = append(norm, d[i])
		digits++
	}
	if i < len(d) && d[i] == '.' {
		i++
		for ; i < len(d) && isDigit(d[i]); i++ {
			mant = mant*10 + float64(d[i]-'0')
			if overflow(mant) {
				return inf, true
			}
			norm = append(norm, d[i])
			exp--
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		eneg := false
		if i < len(d) && (d[i] == '-' || d[i] == '+') {
			eneg = d[i] == '-'
			i++
		}
		var e int64
		n := 0
		for ; i < len(d) && isDigit(d[i]); i++ {
			if e < maxExp {
				e = e*10 + int64(d[i]-'0')
			}
			n++
		}
		if n == 0 {
			return 0, false
		}
		if eneg {
			exp = max(exp-e, -maxExp)
		} else {
			exp = min(exp+e, maxExp)
		}
	}
	if i != len(d) {
		return 0, false
	}
	norm = append(norm, 'e')
	norm = strconv.AppendInt(norm, exp, 10)
	f, err := strconv.ParseFloat(string(norm), bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func specialFloat(d []byte) (float64, bool) {
	neg := false
	if len(d) > 0 && (d[0] == '-' || d[0] == '+') {
		neg = d[0] == '-'
		d = d[1:]
	}
	switch {
	case equalFold(d, "nan"):
		return math.NaN(), true
	case equalFold(d, "inf"), equalFold(d, "infinity"):
		if neg {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	return 0, false
}

// equalFold compares ASCII case-insensitively against a lower case word.
func equalFold(d []byte, lower string) bool {
	if len(d) != len(lower) {
		return false
	}
	for i := range d {
		b := d[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if b != lower[i] {
			return false
		}
	}
	return true
}
