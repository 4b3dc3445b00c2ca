package adcp

import (
	"math"
	"strconv"
	"strings"
)

// Values are the comma separated tokens of one command block, e.g.
// "0.4,1.0,1.0". Accessors never fail: a missing or malformed token comes
// back as a value that every bounded setter treats as out of range.
type Values []string

// SplitValues splits a CSV value list and trims each token.
func SplitValues(s string) Values {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return Values(parts)
}

func (v Values) Str(i int) string {
	if i < 0 || i >= len(v) {
		return ""
	}
	return v[i]
}

// Float returns NaN for a missing or malformed token.
func (v Values) Float(i int) float64 {
	f, err := strconv.ParseFloat(v.Str(i), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Uint returns math.MaxUint32 for a missing, negative, fractional or
// malformed token. "30.0" is accepted as 30.
func (v Values) Uint(i int) uint32 {
	tok := v.Str(i)
	if n, err := strconv.ParseUint(tok, 10, 32); err == nil {
		return uint32(n)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(f)
}

// Int is the signed variant of Uint; it returns math.MinInt for bad tokens.
func (v Values) Int(i int) int {
	tok := v.Str(i)
	if n, err := strconv.Atoi(tok); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return math.MinInt
	}
	return int(f)
}

// Bool reads 1/0, true/false or on/off. Anything else returns def.
func (v Values) Bool(i int, def bool) bool {
	switch strings.ToUpper(v.Str(i)) {
	case "1", "TRUE", "ON", "YES":
		return true
	case "0", "FALSE", "OFF", "NO":
		return false
	default:
		return def
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatUint(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func inRange(v, lo, hi float64) bool { return v >= lo && v <= hi }

// boundFloat keeps v when it lies in [lo, hi] and returns def otherwise.
// NaN is never in range.
func boundFloat(v, lo, hi, def float64) float64 {
	if inRange(v, lo, hi) {
		return v
	}
	return def
}

func boundUint(v, lo, hi, def uint32) uint32 {
	if v >= lo && v <= hi {
		return v
	}
	return def
}
