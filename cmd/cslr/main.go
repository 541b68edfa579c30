/*
Command cslr is a command line front end for the bundled C-like language.

	cslr parse [token-file]     parse whitespace separated terminal names
	cslr parse --source [file]  lex and parse source text
	cslr repl                   parse lines interactively
	cslr tables                 statistics and exports of the SLR(1) tables
	cslr grammar                rules, FIRST/FOLLOW sets and EBNF of the grammar

Configuration is read from NestedText files at the standard configuration
locations for tag "cslr" (see --config-tag). Trace levels are configured with
keys below "tracelevel", e.g.

	tracelevel:
	  cslr.slr: Debug

Flag --trace overrides the trace level of every tracer.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'cslr.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cslr.cli")
}

// tracerKeys are the tracers of this module.
var tracerKeys = []string{"cslr.lr", "cslr.slr", "cslr.tree", "cslr.scanner", "cslr.lang", "cslr.cli"}

var rootFlags = struct {
	trace     *string
	configTag *string
}{}

var config *koanfadapter.KConf

var rootCmd = &cobra.Command{
	Use:   "cslr",
	Short: "Parse a small C-like language with an SLR(1) parser",
	Long: `cslr builds SLR(1) parser tables for a bundled C-like grammar and
parses token sequences or source text with them.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupConfig,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "", "trace level [Debug|Info|Error]")
	rootFlags.configTag = rootCmd.PersistentFlags().String("config-tag", "cslr", "application tag for locating configuration files")
}

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupConfig creates the application configuration and connects the
// tracers of all packages to Go's log package.
func setupConfig(cmd *cobra.Command, args []string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	config = koanfadapter.New(nil, *rootFlags.configTag, []string{"nt"})
	gconf.Initialize(config)
	for _, key := range tracerKeys {
		k := "tracelevel." + key
		if *rootFlags.trace != "" {
			config.Set(k, *rootFlags.trace)
		} else if config.GetString(k) == "" {
			config.Set(k, "Error")
		}
	}
	if err := trace2go.ConfigureRoot(config, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("configuration tag is %q", *rootFlags.configTag)
	return nil
}
