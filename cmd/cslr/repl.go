package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cslr/lang"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	source *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively",
		Long: `repl reads lines and parses each of them as a complete program, given
as terminal names (or as source text with --source). Quit with <ctrl>D.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	replFlags.source = cmd.Flags().BoolP("source", "s", false, "lines are source text instead of terminal names")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	repl, err := readline.New("cslr> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to cslr, quit with <ctrl>D")
	lang.Default() // build tables before the first prompt
	for {
		line, err := repl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		tree, err := parseInput(strings.NewReader(line), *replFlags.source)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if err = printTree(cmd.OutOrStdout(), tree, true); err != nil {
			return err
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}
