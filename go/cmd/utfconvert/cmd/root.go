/*
Copyright 2023 The utf-convert Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cmd implements the utfconvert command line tool, which converts
// files (or stdin/stdout) between the UTF-8, UTF-16 and UTF-32 transfer
// formats.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jr1221/utf-convert/go/utf"
)

// encodingValue is a pflag.Value restricted to the supported transfer
// formats. The bare "utf16"/"utf32" forms sniff the byte order mark on input
// and write big-endian output with one; the BE/LE forms do neither.
type encodingValue string

const (
	encUTF8    encodingValue = "utf8"
	encUTF16   encodingValue = "utf16"
	encUTF16BE encodingValue = "utf16be"
	encUTF16LE encodingValue = "utf16le"
	encUTF32   encodingValue = "utf32"
	encUTF32BE encodingValue = "utf32be"
	encUTF32LE encodingValue = "utf32le"
)

var allEncodings = []encodingValue{
	encUTF8, encUTF16, encUTF16BE, encUTF16LE, encUTF32, encUTF32BE, encUTF32LE,
}

var _ pflag.Value = (*encodingValue)(nil)

func (e *encodingValue) String() string { return string(*e) }
func (e *encodingValue) Type() string   { return "encoding" }

func (e *encodingValue) Set(v string) error {
	for _, enc := range allEncodings {
		if encodingValue(v) == enc {
			*e = enc
			return nil
		}
	}
	names := make([]string, 0, len(allEncodings))
	for _, enc := range allEncodings {
		names = append(names, string(enc))
	}
	return fmt.Errorf("unknown encoding %q (want one of %s)", v, strings.Join(names, ", "))
}

var (
	fromEnc  = encUTF8
	toEnc    = encUTF8
	strict   bool
	writeBOM bool
)

func Main() *cobra.Command {
	root := &cobra.Command{
		Use:   "utfconvert [--from encoding] [--to encoding] [in [out]]",
		Short: "Convert text between the UTF-8, UTF-16 and UTF-32 transfer formats",
		Long: "utfconvert decodes its input per --from, routing malformed sequences\n" +
			"through the replacement policy, and re-encodes the codepoints per --to.\n" +
			"Without file arguments it filters stdin to stdout.",
		Args: cobra.MaximumNArgs(2),
		Run:  runConvert,
	}

	root.Flags().Var(&fromEnc, "from", "encoding of the input")
	root.Flags().Var(&toEnc, "to", "encoding of the output")
	root.Flags().BoolVar(&strict, "strict", false,
		"fail on the first malformed input sequence instead of substituting U+FFFD")
	root.Flags().BoolVar(&writeBOM, "bom", false,
		"write a byte order mark when the output encoding is utf16be/le or utf32be/le")

	return root
}

func runConvert(cmd *cobra.Command, args []string) {
	src, err := readInput(args)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	cps, err := decode(src)
	if err != nil {
		log.Fatalf("decoding %s input: %v", fromEnc, err)
	}

	if err := writeOutput(args, encode(cps)); err != nil {
		log.Fatalf("writing output: %v", err)
	}
}

func decode(src []byte) ([]rune, error) {
	pol := utf.Policy{Strict: strict}
	switch fromEnc {
	case encUTF16:
		return utf.DecodeUTF16Bytes(src, pol)
	case encUTF16BE:
		return utf.DecodeUTF16BE(src, pol, false)
	case encUTF16LE:
		return utf.DecodeUTF16LE(src, pol, false)
	case encUTF32:
		return utf.DecodeUTF32(src, pol)
	case encUTF32BE:
		return utf.DecodeUTF32BE(src, pol, false)
	case encUTF32LE:
		return utf.DecodeUTF32LE(src, pol, false)
	default:
		return utf.DecodeUTF8(src, pol)
	}
}

func encode(cps []rune) []byte {
	switch toEnc {
	case encUTF16:
		return utf.EncodeUTF16Bytes(cps)
	case encUTF16BE:
		return utf.EncodeUTF16BE(cps, writeBOM)
	case encUTF16LE:
		return utf.EncodeUTF16LE(cps, writeBOM)
	case encUTF32:
		return utf.EncodeUTF32(cps)
	case encUTF32BE:
		return utf.EncodeUTF32BE(cps, writeBOM)
	case encUTF32LE:
		return utf.EncodeUTF32LE(cps, writeBOM)
	default:
		return utf.EncodeUTF8(cps)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func writeOutput(args []string, out []byte) error {
	if len(args) < 2 {
		_, err := os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(args[1], out, 0o644)
}
