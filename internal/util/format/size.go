package format

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// UnlimitedLabel is returned for a byte count of exactly zero, which quota
// fields use to mean "no limit".
const UnlimitedLabel = "( unlimited size )"

// unitTable is the fixed scale table. PB and larger are intentionally absent.
var unitTable = [...]string{"bytes", "KB", "MB", "GB", "TB"}

// floatPrefix matches the leading decimal number of a string, so "10 MB"
// reads as 10. Hex and other Go-only float syntax is not accepted.
var floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// fixedLimit is the magnitude from which toFixed switches to exponent form.
const fixedLimit = 1e21

// Sink receives the normalized byte count as text, e.g. a form field.
type Sink interface {
	SetValue(s string)
}

// ReadableSize normalizes raw to a byte count, writes the rounded count into
// target and returns a label such as "( 1.50 MB )". It never fails: anything
// that is not a finite number is treated as zero.
func ReadableSize(target Sink, raw any) string {
	v := ParseOrDefault(raw)
	if target != nil {
		target.SetValue(toFixed(v, 0))
	}
	return Label(v)
}

// Label formats an already-normalized byte count.
func Label(v float64) string {
	if v == 0 {
		return UnlimitedLabel
	}
	unit := 0
	// The last table entry is never reached; large values stay in the
	// previous unit.
	for idx := 1; idx < len(unitTable)-1; idx++ {
		if v < 1024 {
			break
		}
		unit = idx
		v /= 1024
	}
	return "( " + toFixed(v, 2) + " " + unitTable[unit] + " )"
}

// ParseOrDefault converts raw to a finite float64, or 0 when it can't.
func ParseOrDefault(raw any) float64 {
	v, _ := Normalize(raw)
	return v
}

// Normalize is ParseOrDefault that also reports whether raw was usable.
// Strings are read up to the end of their leading number.
func Normalize(raw any) (float64, bool) {
	var (
		v  float64
		ok bool
	)
	switch x := raw.(type) {
	case nil, bool:
		return 0, false
	case string:
		v, ok = parseFloatPrefix(x)
	case []byte:
		v, ok = parseFloatPrefix(string(x))
	default:
		f, err := cast.ToFloat64E(raw)
		v, ok = f, err == nil
	}
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseFloatPrefix(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" || strings.HasSuffix(m, "Infinity") {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// toFixed formats v with the given number of decimals. Exact decimal ties
// round away from zero (2.5 gives "3", 1.125 gives "1.13"); everything else
// is rounded from the exact binary value.
func toFixed(v float64, digits int) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	if math.Abs(v) >= fixedLimit {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if isDecimalTie(v, digits) {
		v = math.Nextafter(v, math.Copysign(math.Inf(1), v))
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// isDecimalTie reports whether v*10^digits has a fractional part of exactly 1/2.
func isDecimalTie(v float64, digits int) bool {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return false
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	return r.Denom().Cmp(big.NewInt(2)) == 0
}
