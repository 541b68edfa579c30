package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cslr/lang"
	"github.com/npillmayer/cslr/lr/parsetree"
	"github.com/npillmayer/cslr/lr/scanner"
	"github.com/npillmayer/cslr/lr/slr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	sexpr  *bool
	source *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a token file or source text",
		Long: `parse reads whitespace separated terminal names (or source text with
--source) from a file or from stdin and prints the parse tree.`,
		Example: `  echo "type id ;" | cslr parse
  cslr parse --source --sexpr main.c`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	parseFlags.sexpr = cmd.Flags().Bool("sexpr", false, "print the tree as an indented S-expression")
	parseFlags.source = cmd.Flags().BoolP("source", "s", false, "input is source text instead of terminal names")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot open input file: %w", err)
		}
		defer f.Close()
		src = f
	}
	tree, err := parseInput(src, *parseFlags.source)
	if err != nil {
		return err
	}
	return printTree(cmd.OutOrStdout(), tree, *parseFlags.sexpr)
}

// parseInput reads and parses a complete input with the bundled language.
func parseInput(r io.Reader, source bool) (*parsetree.Node, error) {
	L := lang.Default()
	if source {
		text, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("cannot read input: %w", err)
		}
		tree, err := L.ParseSource(string(text))
		return tree, describe(err)
	}
	tokfile := scanner.TokenFile(r)
	var readErr error
	tokfile.SetErrorHandler(func(e error) {
		if readErr == nil {
			readErr = e
		}
	})
	toks := scanner.All(tokfile)
	if readErr != nil {
		return nil, fmt.Errorf("cannot read token file: %w", readErr)
	}
	tracer().Debugf("read %d tokens", len(toks))
	tree, err := L.ParseTokens(toks)
	return tree, describe(err)
}

// describe prefixes syntax errors with the position of the offending token.
func describe(err error) error {
	var perr *slr.ParseError
	if errors.As(err, &perr) && perr.Kind == slr.UnexpectedToken {
		return fmt.Errorf("syntax error at token %d (%q): %w", perr.Index, perr.Token, err)
	}
	return err
}

func printTree(w io.Writer, tree *parsetree.Node, sexpr bool) error {
	if sexpr {
		_, err := fmt.Fprintln(w, lang.Format(tree))
		return err
	}
	out, err := parsetree.Render(tree, parsetree.FlattenLists(lang.ListSymbols...))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	if err == nil {
		pterm.Success.Printfln("parsed %d declarations", len(lang.Declarations(tree)))
	}
	return err
}
