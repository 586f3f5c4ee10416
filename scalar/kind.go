package scalar

import "fmt"

type Class int

const (
	PlainText Class = iota
	FixedDecimal
	ZeroPaddedNumeric
	EnumeratedCode
	Integer
	Date
	DateTime
)

func (c Class) String() string {
	switch c {
	case PlainText:
		return "PlainText"
	case FixedDecimal:
		return "FixedDecimal"
	case ZeroPaddedNumeric:
		return "ZeroPaddedNumeric"
	case EnumeratedCode:
		return "EnumeratedCode"
	case Integer:
		return "Integer"
	case Date:
		return "Date"
	case DateTime:
		return "DateTime"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Kind is a value-format rule. Digits is the number of fraction digits for
// FixedDecimal and the field width for ZeroPaddedNumeric.
type Kind struct {
	Class  Class
	Digits int
}

func (k Kind) String() string {
	switch k.Class {
	case FixedDecimal, ZeroPaddedNumeric:
		return fmt.Sprintf("%s(%d)", k.Class, k.Digits)
	default:
		return k.Class.String()
	}
}

// Options tune parsing.
type Options struct {
	// DecimalComma accepts ',' as the decimal separator on read.
	DecimalComma bool
}
