package scalar

import (
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05-07:00"
)

// DateOnly formats calendar dates (AAAA-MM-DD).
func DateOnly() Codec[time.Time] {
	return timeCodec(Kind{Class: Date}, DateLayout)
}

// Timestamp formats date-times with a UTC offset, as in dhEmi.
func Timestamp() Codec[time.Time] {
	return timeCodec(Kind{Class: DateTime}, DateTimeLayout)
}

func timeCodec(k Kind, layout string) Codec[time.Time] {
	return NewCodec(k,
		func(v time.Time) (string, error) { return v.Format(layout), nil },
		func(s string, _ Options) (time.Time, error) {
			s = strings.TrimSpace(s)
			t, err := time.Parse(layout, s)
			if err != nil {
				return time.Time{}, mismatch(k, "%q", s)
			}
			return t, nil
		},
		func(v time.Time) bool { return v.IsZero() },
	)
}
