package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Write prints one line per change, colored when colored is set.
func Write(w io.Writer, changes []Change, colored bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	mod := color.New(color.FgYellow)
	if !colored {
		del.DisableColor()
		ins.DisableColor()
		mod.DisableColor()
	}
	for _, c := range changes {
		var err error
		switch c.Kind {
		case Delete:
			_, err = del.Fprintf(w, "- %s: %s\n", c.Path, c.From)
		case Insert:
			_, err = ins.Fprintf(w, "+ %s: %s\n", c.Path, c.To)
		default:
			_, err = mod.Fprintf(w, "~ %s: %s -> %s\n", c.Path, c.From, c.To)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Summary is a one-line count of changes by kind.
func Summary(changes []Change) string {
	var n [Attr + 1]int
	for _, c := range changes {
		n[c.Kind]++
	}
	return fmt.Sprintf("%d changes: %d deleted, %d inserted, %d replaced, %d text, %d attr",
		len(changes), n[Delete], n[Insert], n[Replace], n[Text], n[Attr])
}
