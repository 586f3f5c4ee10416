package scalar

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Text is the PlainText kind: surrounding whitespace is trimmed both ways.
func Text() Codec[string] {
	k := Kind{Class: PlainText}
	return NewCodec(k,
		func(v string) (string, error) { return strings.TrimSpace(v), nil },
		func(s string, _ Options) (string, error) { return strings.TrimSpace(s), nil },
		func(v string) bool { return strings.TrimSpace(v) == "" },
	)
}

// Int is a plain base-10 integer without padding.
func Int[I constraints.Integer]() Codec[I] {
	k := Kind{Class: Integer}
	return NewCodec(k,
		func(v I) (string, error) { return formatInt(v), nil },
		func(s string, _ Options) (I, error) {
			s = strings.TrimSpace(s)
			if !isSignedDigits(s) {
				return 0, mismatch(k, "%q is not an integer", s)
			}
			return parseInt[I](k, s)
		},
		func(v I) bool { return v == 0 },
	)
}

// Padded is ZeroPaddedNumeric(width) over integers.
func Padded[I constraints.Integer](width int) Codec[I] {
	k := Kind{Class: ZeroPaddedNumeric, Digits: width}
	return NewCodec(k,
		func(v I) (string, error) {
			if v < 0 {
				return "", mismatch(k, "negative value %d", int64(v))
			}
			return pad(k, formatInt(v))
		},
		func(s string, _ Options) (I, error) {
			s = strings.TrimSpace(s)
			if len(s) != width || !isDigits(s) {
				return 0, mismatch(k, "%q is not %d digits", s, width)
			}
			return parseInt[I](k, s)
		},
		func(v I) bool { return v == 0 },
	)
}

// PaddedDigits is ZeroPaddedNumeric(width) over digit strings, for codes such
// as CSOSN or NCM that are numeric in the schema but not arithmetic.
func PaddedDigits(width int) Codec[string] {
	k := Kind{Class: ZeroPaddedNumeric, Digits: width}
	return NewCodec(k,
		func(v string) (string, error) {
			v = strings.TrimSpace(v)
			if v != "" && !isDigits(v) {
				return "", mismatch(k, "%q is not numeric", v)
			}
			return pad(k, v)
		},
		func(s string, _ Options) (string, error) {
			s = strings.TrimSpace(s)
			if len(s) != width || !isDigits(s) {
				return "", mismatch(k, "%q is not %d digits", s, width)
			}
			return s, nil
		},
		func(v string) bool { return strings.TrimLeft(strings.TrimSpace(v), "0") == "" },
	)
}

func pad(k Kind, digits string) (string, error) {
	if len(digits) > k.Digits {
		return "", mismatch(k, "%q wider than %d", digits, k.Digits)
	}
	return strings.Repeat("0", k.Digits-len(digits)) + digits, nil
}

func formatInt[I constraints.Integer](v I) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func parseInt[I constraints.Integer](k Kind, s string) (I, error) {
	var zero I
	if zero-1 < 0 {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || int64(I(n)) != n {
			return 0, mismatch(k, "%q out of range", s)
		}
		return I(n), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || uint64(I(n)) != n {
		return 0, mismatch(k, "%q out of range", s)
	}
	return I(n), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isSignedDigits(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	return isDigits(s)
}
