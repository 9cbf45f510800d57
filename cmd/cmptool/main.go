// Command cmptool converts between text art and CMP images.
//
//	cmptool encode [--utf16] [--transparent C] <in.txt> <out.cmp>
//	cmptool dump [--raw] <in.cmp>
//	cmptool info <in.cmp>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/nullui/cmp"
)

// usageError exits with status 2
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }
func (e *usageError) ExitCode() int { return 2 }

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "cmptool: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return &usageError{"usage: cmptool encode|dump|info ..."}
	}
	switch args[0] {
	case "encode":
		return runEncode(args[1:])
	case "dump":
		return runDump(args[1:], stdout)
	case "info":
		return runInfo(args[1:], stdout)
	}
	return &usageError{fmt.Sprintf("unknown command %q", args[0])}
}

func runEncode(args []string) error {
	var utf16 bool
	var marker string
	flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	flagSet.BoolVar(&utf16, "utf16", false, "store 16-bit code points instead of 32-bit")
	flagSet.StringVarP(&marker, "transparent", "t", "", "character that marks transparent cells")
	if err := flagSet.Parse(args); err != nil {
		return &usageError{err.Error()}
	}
	if flagSet.NArg() != 2 {
		return &usageError{"usage: cmptool encode [--utf16] [--transparent C] <in.txt> <out.cmp>"}
	}

	flags := cmp.Flags{UTF16: utf16, UTF32: !utf16}
	if marker != "" {
		r, size := utf8.DecodeRuneInString(marker)
		if size != len(marker) || (r == utf8.RuneError && size == 1) {
			return &usageError{"--transparent takes exactly one UTF-8 character"}
		}
		flags.Transparent = true
		flags.TransparentChar = r
	}

	text, err := os.ReadFile(flagSet.Arg(0))
	if err != nil {
		return err
	}
	data, err := cmp.Encode(cmp.FromText(string(text), flags))
	if err != nil {
		return err
	}
	return os.WriteFile(flagSet.Arg(1), data, 0644)
}

func runDump(args []string, stdout io.Writer) error {
	var raw bool
	flagSet := pflag.NewFlagSet("dump", pflag.ContinueOnError)
	flagSet.BoolVar(&raw, "raw", false, "do not replace control characters with pictures")
	if err := flagSet.Parse(args); err != nil {
		return &usageError{err.Error()}
	}
	if flagSet.NArg() != 1 {
		return &usageError{"usage: cmptool dump [--raw] <in.cmp>"}
	}

	img, err := cmp.Load(flagSet.Arg(0))
	if err != nil {
		return err
	}
	out := img.Read()
	if raw {
		out = img.ReadWith(func(r rune) rune { return r })
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func runInfo(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return &usageError{"usage: cmptool info <in.cmp>"}
	}
	img, err := cmp.Load(args[0])
	var nse *cmp.NotSupportedError
	if errors.As(err, &nse) {
		_, err = fmt.Fprintf(stdout, "unsupported variant: %s\n", describe(nse.Flags))
		return err
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%dx%d %s\n", img.Width, img.Height, describe(img.Flags))
	return err
}

func describe(f cmp.Flags) string {
	enc := "utf8"
	switch {
	case f.UTF32:
		enc = "utf32"
	case f.UTF16:
		enc = "utf16"
	}
	if f.Colored {
		enc += " colored"
	}
	if f.Transparent {
		enc += fmt.Sprintf(" transparent=%U", f.TransparentChar)
	}
	return enc
}
