// bmp2font is a commandline tool for generating bitmap fonts for small
// displays. First draw all 256 characters of your font in your favorite
// graphics program as a 16x16 grid of equally sized cells, character 0 in the
// top left corner, and save it as a monochrome (1 bit) .bmp file. The glyph
// size is the image size divided by 16. Then simply run:
//
//	./bmp2font font8x16.bmp font8x16.c font8x16
//
// Add font8x16.c to your firmware and declare font_t in font.h. Use
// -f go -p <package> to create a Go source file instead.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/pixfont/bmpfont"
	"github.com/pixfont/bmpfont/bitmap"
	"github.com/pixfont/bmpfont/internal/source"
)

type options struct {
	Format  string `short:"f" long:"format"  description:"output language" choice:"c" choice:"go" default:"c"`
	Package string `short:"p" long:"package" description:"package name for Go output" default:"fonts"`
	Include string `long:"include" description:"header included by C output" default:"font.h"`
	Invert  bool   `short:"i" long:"invert"  description:"treat clear pixels as set and vice versa"`
	Dump    bool   `short:"d" long:"dump"    description:"print every glyph as text to stdout"`
	Preview string `long:"preview" description:"write a PNG of the glyph grid rebuilt from the packed font"`
	Scale   int    `long:"scale"   description:"pixel scale of the preview image" default:"4"`
	Verbose bool   `short:"v" long:"verbose" description:"print debug information"`

	Args struct {
		Input  flags.Filename `positional-arg-name:"input.bmp"`
		Output flags.Filename `positional-arg-name:"output"`
		Name   string         `positional-arg-name:"fontname"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] <input.bmp> <output> <fontname>"

	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args, " "))
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(&opts, log, os.Stdout); err != nil {
		log.WithError(err).Error("bmp2font failed")
		os.Exit(1)
	}
}

func run(opts *options, log logrus.FieldLogger, stdout io.Writer) error {
	input, output, name := string(opts.Args.Input), string(opts.Args.Output), opts.Args.Name
	if !source.ValidName(name) {
		return fmt.Errorf("font name %q is not a valid identifier", name)
	}

	bm, err := bitmap.DecodeFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	log.WithFields(logrus.Fields{
		"file":   input,
		"width":  bm.Width,
		"height": bm.Height,
		"depth":  bm.Depth,
	}).Info("decoded bitmap")

	if opts.Invert {
		bm = bm.Invert()
	}

	w, h, err := bmpfont.GlyphSize(bm)
	if err != nil {
		return fmt.Errorf("could not detect font size: %w", err)
	}
	log.WithFields(logrus.Fields{"width": w, "height": h}).Info("detected font size")

	font, err := bmpfont.Pack(bm, w, h)
	if err != nil {
		return err
	}
	log.WithField("bytes", font.GlyphBytes()).Debug("packed glyphs")

	if opts.Dump {
		dumpFont(stdout, font)
	}
	if opts.Preview != "" {
		if err := writePreview(opts.Preview, font, opts.Scale); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
		log.WithField("file", opts.Preview).Info("wrote preview")
	}

	if err := writeFont(output, font, opts, name); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"file": output, "format": opts.Format}).Info("created font file")
	return nil
}

// writeFont creates the output file, removing it again if the font could
// not be written completely.
func writeFont(filename string, font *bmpfont.Font, opts *options, name string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "go":
		err = source.WriteGo(f, font, opts.Package, name)
	default:
		err = source.WriteC(f, font, name, opts.Include)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(filename)
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}
