// Package source renders a packed font as C or Go source code.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"io"
	"regexp"
	"strings"

	"github.com/pixfont/bmpfont"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name can be used as an identifier in both C and Go.
func ValidName(name string) bool {
	return identRe.MatchString(name)
}

// byteList writes bytes as comma separated hex literals.
func byteList(w io.Writer, data []byte) {
	for i, b := range data {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "0x%02X", b)
	}
}

// WriteC writes the font as a C array of 256 glyphs plus a font_t
// descriptor named name. include names the header declaring font_t.
func WriteC(out io.Writer, f *bmpfont.Font, name, include string) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "#include \"%s\"\n", include)
	fmt.Fprintf(w, "uint8_t PROGMEM %s_glyphs[%d][%d*%d] = {\n", name, bmpfont.NumGlyphs, f.RowBytes(), f.Height)
	for g, glyph := range f.Glyphs {
		fmt.Fprint(w, "\t{")
		byteList(w, glyph)
		if g == bmpfont.NumGlyphs-1 {
			fmt.Fprint(w, "}\n")
		} else {
			fmt.Fprint(w, "},\n")
		}
	}
	fmt.Fprint(w, "\t};\n")

	fmt.Fprintf(w, "font_t PROGMEM %s = {\n", name)
	fmt.Fprintf(w, "\t%d,\n", f.Width)
	fmt.Fprintf(w, "\t%d,\n", f.Height)
	fmt.Fprintf(w, "\t%s_glyphs\n", name)
	fmt.Fprint(w, "\t};\n")

	return w.Flush()
}

// WriteGo writes the font as a gofmt-ed Go file in package pkg declaring a
// variable name of type *bmpfont.Font. A banner drawn with the font itself
// heads the file.
func WriteGo(out io.Writer, f *bmpfont.Font, pkg, name string) error {
	template := `
		package %s

		import "github.com/pixfont/bmpfont"

		var %s = bmpfont.NewFont(%d, %d, [%d][]byte{
		%s})
	`

	glyphs := &bytes.Buffer{}
	for g, glyph := range f.Glyphs {
		fmt.Fprintf(glyphs, "%d: {", g)
		byteList(glyphs, glyph)
		fmt.Fprint(glyphs, "},\n")
	}

	code := fmt.Sprintf(template, pkg, name, f.Width, f.Height, bmpfont.NumGlyphs, glyphs)
	bcode, err := format.Source([]byte(code))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}

	// draw a comment header using the new font
	sd := &bmpfont.StringDrawable{}
	f.DrawString(sd, 0, 0, name, nil)
	banner := strings.TrimRight(sd.PrefixString("// "), "\n")
	if banner != "" {
		banner += "\n\n"
	}

	_, err = io.WriteString(out, banner+string(bcode))
	return err
}
