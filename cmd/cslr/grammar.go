package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cslr/lang"
	"github.com/npillmayer/cslr/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var grammarFlags = struct {
	sets *bool
	ebnf *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the rules of the bundled grammar",
		Args:  cobra.NoArgs,
		RunE:  runGrammar,
	}
	grammarFlags.sets = cmd.Flags().Bool("sets", false, "print FIRST and FOLLOW sets of the non-terminals")
	grammarFlags.ebnf = cmd.Flags().Bool("ebnf", true, "print the grammar in EBNF and verify it")
	rootCmd.AddCommand(cmd)
}

func runGrammar(cmd *cobra.Command, args []string) error {
	L := lang.Default()
	out := cmd.OutOrStdout()
	table := pterm.DefaultTable.WithHasHeader().WithData(ruleTable(L.Grammar))
	rules, err := table.Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rules)
	if *grammarFlags.sets {
		sets, err := pterm.DefaultTable.WithHasHeader().WithData(setTable(L.Analysis)).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sets)
	}
	if *grammarFlags.ebnf {
		var b bytes.Buffer
		if err = L.Grammar.EBNF(&b); err != nil {
			return err
		}
		fmt.Fprint(out, b.String())
		if err = lr.VerifyEBNF(L.Grammar); err != nil {
			return err
		}
		pterm.Success.Println("EBNF verified")
	}
	return nil
}

func ruleTable(g *lr.Grammar) pterm.TableData {
	data := pterm.TableData{{"#", "Rule"}}
	for _, r := range g.Rules() {
		data = append(data, []string{strconv.Itoa(r.Serial), r.String()})
	}
	return data
}

func setTable(ga *lr.LRAnalysis) pterm.TableData {
	data := pterm.TableData{{"Non-terminal", "FIRST", "FOLLOW"}}
	ga.Grammar().EachNonTerminal(func(A *lr.Symbol) {
		data = append(data, []string{
			A.Name,
			strings.Join(ga.First(A).Names(), " "),
			strings.Join(ga.Follow(A).Names(), " "),
		})
	})
	return data
}
