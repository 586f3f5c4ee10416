// Package scalar converts leaf values to and from the textual forms mandated
// by the fiscal document schemas.
//
// A Codec[V] formats and parses values of one Go type according to one Kind:
//
//	scalar.Decimal(2).Format(decimal.NewFromFloat(123.4)) // "123.40"
//	scalar.Padded[int](3).Format(7)                       // "007"
//	scalar.Code(origens).Format(OrigemNacional)            // "0"
//
// Codecs also implement Formatter, the type-erased form stored in field
// descriptors by the xmlmap package.
package scalar
