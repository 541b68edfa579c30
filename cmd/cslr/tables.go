package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/npillmayer/cslr/lang"
	"github.com/npillmayer/cslr/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tablesFlags = struct {
	dot       *string
	html      *string
	conflicts *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print statistics of the SLR(1) tables, optionally exporting them",
		Example: `  cslr tables --dot cfsm.dot --html ./tables
  dot -Tsvg cfsm.dot > cfsm.svg`,
		Args: cobra.NoArgs,
		RunE: runTables,
	}
	tablesFlags.dot = cmd.Flags().String("dot", "", "write the CFSM in Graphviz Dot format to this file")
	tablesFlags.html = cmd.Flags().String("html", "", "write ACTION and GOTO tables as HTML into this directory")
	tablesFlags.conflicts = cmd.Flags().Bool("trace-conflicts", false, "trace every table conflict at level Info")
	rootCmd.AddCommand(cmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	if *tablesFlags.conflicts {
		config.Set("lr.trace-conflicts", true)
	}
	L, err := lang.New()
	if err != nil {
		return err
	}
	summary, err := pterm.DefaultTable.WithHasHeader().WithData(tableSummary(L.Tables)).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), summary)
	if *tablesFlags.dot != "" {
		if err = exportDot(L.Tables, *tablesFlags.dot); err != nil {
			return err
		}
		pterm.Info.Printfln("CFSM written to %s", *tablesFlags.dot)
	}
	if *tablesFlags.html != "" {
		if err = exportHTML(L.Tables, *tablesFlags.html); err != nil {
			return err
		}
		pterm.Info.Printfln("tables written to %s", *tablesFlags.html)
	}
	return nil
}

// tableSummary lists the sizes of the parser tables of t.
func tableSummary(t *lr.Tables) pterm.TableData {
	return pterm.TableData{
		{"Grammar", t.Grammar().Name},
		{"Rules", strconv.Itoa(t.Grammar().Size())},
		{"Terminals", strconv.Itoa(len(t.Grammar().Terminals()))},
		{"Non-terminals", strconv.Itoa(len(t.Grammar().NonTerminals()))},
		{"CFSM states", strconv.Itoa(t.StateCount())},
		{"CFSM edges", strconv.Itoa(t.CFSM().EdgeCount())},
		{"ACTION entries", strconv.Itoa(t.ActionCount())},
		{"GOTO entries", strconv.Itoa(t.GotoCount())},
		{"Conflicts", strconv.Itoa(len(t.Conflicts()))},
	}
}

func exportDot(t *lr.Tables, path string) error {
	return writeFile(path, t.CFSM().CFSM2GraphViz)
}

func exportHTML(t *lr.Tables, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	err := writeFile(filepath.Join(dir, "action.html"), func(w io.Writer) error {
		return lr.ActionTableAsHTML(t, w)
	})
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, "goto.html"), func(w io.Writer) error {
		return lr.GotoTableAsHTML(t, w)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
