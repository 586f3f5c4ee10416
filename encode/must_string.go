package encode

import (
	"bytes"

	"github.com/signadot/go-dfe/fragment"
)

func MustString(f *fragment.Fragment, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(f, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
