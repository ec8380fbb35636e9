package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/pixfont/bmpfont"
	"github.com/pixfont/bmpfont/bitmap"
)

func writeBitmap(t *testing.T, b *bitmap.Bitmap) string {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := bitmap.Encode(buf, b, false); err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "font.bmp")
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func testOptions(input, output, name string) *options {
	opts := &options{Format: "c", Package: "fonts", Include: "font.h", Scale: 1}
	opts.Args.Input = flags.Filename(input)
	opts.Args.Output = flags.Filename(output)
	opts.Args.Name = name
	return opts
}

func TestRunC(t *testing.T) {
	b := bitmap.New(16, 16)
	b.Set(0, 0, true)
	output := filepath.Join(t.TempDir(), "tiny.c")

	log, hook := test.NewNullLogger()
	stdout := &bytes.Buffer{}
	opts := testOptions(writeBitmap(t, b), output, "tiny")
	opts.Dump = true
	if err := run(opts, log, stdout); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "#include \"font.h\"\nuint8_t PROGMEM tiny_glyphs[256][1*1] = {\n\t{0x01},\n\t{0x00},\n") {
		t.Errorf("unexpected output:\n%s", data)
	}

	if !strings.HasPrefix(stdout.String(), "00  [X]\n01  [ ]\n") {
		t.Errorf("unexpected dump:\n%s", stdout.String())
	}

	var decoded *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "decoded bitmap" {
			decoded = e
		}
	}
	if decoded == nil || decoded.Data["width"] != 16 || decoded.Data["depth"] != 1 {
		t.Errorf("missing decode diagnostics: %v", hook.AllEntries())
	}
}

func TestRunGoWithPreview(t *testing.T) {
	b := bitmap.New(32, 32)
	b.Set(1, 1, true)
	dir := t.TempDir()
	output := filepath.Join(dir, "font.go")
	preview := filepath.Join(dir, "preview.png")

	log, _ := test.NewNullLogger()
	opts := testOptions(writeBitmap(t, b), output, "Small")
	opts.Format = "go"
	opts.Preview = preview
	opts.Scale = 3
	if err := run(opts, log, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "var Small = bmpfont.NewFont(2, 2, [256][]byte{") {
		t.Errorf("unexpected output:\n%s", data)
	}

	f, err := os.Open(preview)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 96 || img.Bounds().Dy() != 96 {
		t.Fatalf("unexpected preview size %v", img.Bounds())
	}
	// pixel (1,1) is drawn black, scaled by 3
	if r, _, _, _ := img.At(4, 4).RGBA(); r != 0 {
		t.Error("expected a set pixel at (4, 4)")
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r == 0 {
		t.Error("expected a clear pixel at (0, 0)")
	}
}

func TestRunInvert(t *testing.T) {
	output := filepath.Join(t.TempDir(), "full.c")

	log, _ := test.NewNullLogger()
	opts := testOptions(writeBitmap(t, bitmap.New(16, 16)), output, "full")
	opts.Invert = true
	if err := run(opts, log, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "0x00") {
		t.Error("expected every glyph to be set")
	}
}

func TestRunErrors(t *testing.T) {
	notBMP := filepath.Join(t.TempDir(), "font.png")
	if err := os.WriteFile(notBMP, []byte("\x89PNG\r\n\x1a\n plus some more bytes to fill a bitmap header"), 0644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name  string
		input string
		font  string
		err   error
	}{
		{"bad signature", notBMP, "font", bitmap.ErrBadSignature},
		{"font size", writeBitmap(t, bitmap.New(24, 16)), "font", bmpfont.ErrDimensionMismatch},
		{"missing file", filepath.Join(t.TempDir(), "missing.bmp"), "font", bitmap.ErrIO},
		{"bad name", writeBitmap(t, bitmap.New(16, 16)), "my-font", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "out.c")
			log, _ := test.NewNullLogger()

			err := run(testOptions(c.input, output, c.font), log, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if c.err != nil && !errors.Is(err, c.err) {
				t.Errorf("expected %v, got %v", c.err, err)
			}
			if _, err := os.Stat(output); !os.IsNotExist(err) {
				t.Error("no output file should be created on error")
			}
		})
	}
}
