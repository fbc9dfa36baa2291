// Completion: 100% - CLI driver complete
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
)

const versionString = "tasm32 1.0.0"

func main() {
	defaultOutput := env.Str("TASM_OUTPUT", "")
	defaultVerbose := env.Bool("TASM_VERBOSE")

	outputFlag := flag.String("o", defaultOutput, "output executable filename")
	outputLongFlag := flag.String("output", defaultOutput, "output executable filename")
	verboseFlag := flag.Bool("v", defaultVerbose, "verbose mode (print resolution warnings)")
	verboseLongFlag := flag.Bool("verbose", defaultVerbose, "verbose mode (print resolution warnings)")
	versionFlag := flag.Bool("V", false, "print version information and exit")
	versionLongFlag := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *versionFlag || *versionLongFlag {
		fmt.Println(versionString)
		os.Exit(0)
	}

	verbose := *verboseFlag || *verboseLongFlag

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: tasm32 [-o output] [-v] <source.asm>")
		os.Exit(1)
	}
	inputPath := args[0]

	output := *outputFlag
	if output == "" {
		output = *outputLongFlag
	}
	if output == "" {
		output = "a.out"
	}

	if err := assembleFile(inputPath, output, verbose); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// assembleFile runs the full pipeline: include-splicing, lexing,
// parsing, code generation, ELF assembly, and writing the executable.
func assembleFile(inputPath, outputPath string, verbose bool) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	readFile := func(path string) (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	spliced, err := preprocessIncludes(inputPath, string(source), readFile, 0)
	if err != nil {
		return err
	}

	lexer := NewLexer(inputPath, spliced)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return err
	}

	parser := NewParser(inputPath, tokens)
	root, err := parser.Parse()
	if err != nil {
		return err
	}

	gen := NewCodeGenerator(inputPath)
	program, err := gen.Generate(root)
	if err != nil {
		return err
	}

	image, err := AssembleELF(program)
	if err != nil {
		return err
	}

	diags := &Diagnostics{}
	if err := image.Save(outputPath, diags); err != nil {
		return err
	}

	if verbose {
		for _, w := range diags.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
		info, err := os.Stat(outputPath)
		if err == nil {
			fmt.Printf("wrote %s (%d bytes)\n", outputPath, info.Size())
		}
	}

	return nil
}

// reportError renders a CompilerError per the CLI's line-tagged
// contract, or any other failure as a plain message.
func reportError(err error) {
	if ce, ok := err.(*CompilerError); ok {
		fmt.Fprintln(os.Stderr, ce.Error())
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}
