package stats

import (
	"math"
	"strconv"
	"strings"
)

type compactUnit struct {
	threshold float64
	suffix    string
	decimals  int
}

// Units are checked in descending order so only the first matching suffix
// is ever applied. Thousands keep a single decimal, larger units two.
var compactUnits = []compactUnit{
	{1e12, "T", 2},
	{1e9, "B", 2},
	{1e6, "M", 2},
	{1e3, "K", 1},
}

// FormatCompact renders a number with a K/M/B/T suffix, e.g. 1234 as
// "1.2K" and 1250000000 as "1.25B". Numbers below 1000 are returned as
// plain integers.
func FormatCompact(n int64) string {
	v := float64(n)
	for _, unit := range compactUnits {
		if math.Abs(v) >= unit.threshold {
			scaled := strconv.FormatFloat(v/unit.threshold, 'f', unit.decimals, 64)
			return trimTrailingZeros(scaled) + unit.suffix
		}
	}
	return strconv.FormatInt(n, 10)
}

// FormatGrouped renders a number with thousands separators, e.g. 1234567
// as "1,234,567". Values below 1000 come back as plain integers.
func FormatGrouped(n float64) string {
	rounded := int64(math.Round(n))
	s := strconv.FormatInt(rounded, 10)
	if rounded > -1000 && rounded < 1000 {
		return s
	}
	return GroupDigits(s)
}

// GroupDigits inserts a comma every three digits from the right into the
// integer part of a numeric string. A fractional part, if present, is
// carried through untouched, so "12345.67" becomes "12,345.67".
func GroupDigits(s string) string {
	intPart := s
	rest := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, rest = s[:dot], s[dot:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + rest
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	return sign + b.String() + rest
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
