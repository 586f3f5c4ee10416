package scalar

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal is FixedDecimal(n) over decimal.Decimal. Values are rounded half
// away from zero to n fraction digits on output.
func Decimal(n int) Codec[decimal.Decimal] {
	k := Kind{Class: FixedDecimal, Digits: n}
	return NewCodec(k,
		func(v decimal.Decimal) (string, error) { return v.StringFixed(int32(n)), nil },
		func(s string, o Options) (decimal.Decimal, error) {
			s, err := decimalText(k, s, o)
			if err != nil {
				return decimal.Decimal{}, err
			}
			d, err := decimal.NewFromString(s)
			if err != nil {
				return decimal.Decimal{}, mismatch(k, "%q", s)
			}
			return d, nil
		},
		func(v decimal.Decimal) bool { return v.IsZero() },
	)
}

// Float is FixedDecimal(n) over float64.
func Float(n int) Codec[float64] {
	k := Kind{Class: FixedDecimal, Digits: n}
	return NewCodec(k,
		func(v float64) (string, error) {
			s := strconv.FormatFloat(v, 'f', n, 64)
			if strings.ContainsAny(s, "IN") {
				return "", mismatch(k, "%s is not finite", s)
			}
			return s, nil
		},
		func(s string, o Options) (float64, error) {
			s, err := decimalText(k, s, o)
			if err != nil {
				return 0, err
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, mismatch(k, "%q", s)
			}
			return f, nil
		},
		func(v float64) bool { return v == 0 },
	)
}

// decimalText validates s as an optionally signed decimal with at most
// k.Digits fraction digits and returns it with '.' as separator.
func decimalText(k Kind, s string, o Options) (string, error) {
	s = strings.TrimSpace(s)
	if o.DecimalComma && !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	body := strings.TrimPrefix(s, "-")
	intPart, frac, hasPoint := strings.Cut(body, ".")
	if !isDigits(intPart) {
		return "", mismatch(k, "%q is not a decimal number", s)
	}
	if hasPoint {
		if !isDigits(frac) {
			return "", mismatch(k, "%q is not a decimal number", s)
		}
		if len(frac) > k.Digits {
			return "", mismatch(k, "%q has more than %d fraction digits", s, k.Digits)
		}
	}
	return s, nil
}
