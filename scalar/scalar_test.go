package scalar

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		f    Formatter
		v    any
		want string
	}{
		{name: "fixed decimal 2", f: Decimal(2), v: decimal.NewFromFloat(123.4), want: "123.40"},
		{name: "fixed decimal 4", f: Decimal(4), v: decimal.RequireFromString("18"), want: "18.0000"},
		{name: "fixed decimal rounds", f: Decimal(2), v: decimal.RequireFromString("0.125"), want: "0.13"},
		{name: "fixed decimal zero", f: Decimal(2), v: decimal.Decimal{}, want: "0.00"},
		{name: "float 2", f: Float(2), v: 123.4, want: "123.40"},
		{name: "float negative", f: Float(3), v: -1.5, want: "-1.500"},
		{name: "padded", f: Padded[int](3), v: 7, want: "007"},
		{name: "padded exact", f: Padded[uint8](2), v: uint8(35), want: "35"},
		{name: "padded digits", f: PaddedDigits(8), v: "1234", want: "00001234"},
		{name: "int", f: Int[int](), v: 990, want: "990"},
		{name: "text", f: Text(), v: "  SEM GTIN ", want: "SEM GTIN"},
		{name: "date", f: DateOnly(), v: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), want: "2024-03-09"},
		{name: "datetime", f: Timestamp(), v: time.Date(2024, 3, 9, 13, 4, 5, 0, time.FixedZone("BRT", -3*3600)), want: "2024-03-09T13:04:05-03:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.FormatAny(tt.v)
			if err != nil {
				t.Fatalf("FormatAny() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatAny() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		f    Formatter
		v    any
	}{
		{name: "padded too wide", f: Padded[int](3), v: 1000},
		{name: "padded negative", f: Padded[int](3), v: -1},
		{name: "digits not numeric", f: PaddedDigits(3), v: "1a"},
		{name: "wrong type", f: Decimal(2), v: 1.5},
		{name: "float nan", f: Float(2), v: nan()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.f.FormatAny(tt.v)
			if !errors.Is(err, ErrFormatMismatch) {
				t.Errorf("err = %v, want ErrFormatMismatch", err)
			}
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestParse(t *testing.T) {
	d, err := Decimal(2).Parse(" 123.4 ", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(decimal.RequireFromString("123.4")) {
		t.Errorf("Decimal.Parse = %s", d)
	}
	if _, err := Decimal(2).Parse("1,50", Options{}); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("comma accepted without DecimalComma: %v", err)
	}
	d, err = Decimal(2).Parse("1,50", Options{DecimalComma: true})
	if err != nil || !d.Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("Decimal.Parse(1,50) = %s, %v", d, err)
	}
	n, err := Padded[int](3).Parse("007", Options{})
	if err != nil || n != 7 {
		t.Errorf("Padded.Parse = %d, %v", n, err)
	}
	s, err := PaddedDigits(3).Parse("202", Options{})
	if err != nil || s != "202" {
		t.Errorf("PaddedDigits.Parse = %q, %v", s, err)
	}
	ts, err := Timestamp().Parse("2024-03-09T13:04:05-03:00", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !ts.Equal(time.Date(2024, 3, 9, 16, 4, 5, 0, time.UTC)) {
		t.Errorf("Timestamp.Parse = %v", ts)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		f    Formatter
		text string
	}{
		{name: "decimal letters", f: Decimal(2), text: "abc"},
		{name: "decimal too precise", f: Decimal(2), text: "1.234"},
		{name: "decimal grouping", f: Decimal(2), text: "1.234,56"},
		{name: "decimal empty", f: Decimal(2), text: ""},
		{name: "float trailing point", f: Float(2), text: "1."},
		{name: "padded short", f: Padded[int](3), text: "7"},
		{name: "padded signed", f: Padded[int](3), text: "-07"},
		{name: "int overflow", f: Int[int8](), text: "300"},
		{name: "uint negative", f: Int[uint](), text: "-1"},
		{name: "date", f: DateOnly(), text: "09/03/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.f.ParseAny(tt.text, Options{})
			if !errors.Is(err, ErrFormatMismatch) {
				t.Errorf("err = %v, want ErrFormatMismatch", err)
			}
		})
	}
}

type origem int

const (
	nacional origem = iota
	estrangeira
)

func TestCodeTable(t *testing.T) {
	tbl := MustCodeTable("origem", map[origem]string{nacional: "0", estrangeira: "1"})
	c := Code(tbl)
	got, err := c.Format(estrangeira)
	if err != nil || got != "1" {
		t.Errorf("Format = %q, %v", got, err)
	}
	v, err := c.Parse("0", Options{})
	if err != nil || v != nacional {
		t.Errorf("Parse = %v, %v", v, err)
	}
	if _, err := c.Parse("9", Options{}); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Parse(9) err = %v", err)
	}
	if _, err := c.Format(origem(7)); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Format(7) err = %v", err)
	}
	if !c.IsZero(nacional) || c.IsZero(estrangeira) {
		t.Errorf("IsZero wrong")
	}
	if codes := tbl.Codes(); len(codes) != 2 || codes[0] != "0" || codes[1] != "1" {
		t.Errorf("Codes() = %v", codes)
	}
	if _, err := NewCodeTable("dup", map[origem]string{nacional: "0", estrangeira: "0"}); err == nil {
		t.Errorf("duplicate codes accepted")
	}
}

func TestKindString(t *testing.T) {
	if got := Decimal(2).Kind().String(); got != "FixedDecimal(2)" {
		t.Errorf("got %q", got)
	}
	if got := Padded[int](3).Kind().String(); got != "ZeroPaddedNumeric(3)" {
		t.Errorf("got %q", got)
	}
	if got := Text().Kind().String(); got != "PlainText" {
		t.Errorf("got %q", got)
	}
}
