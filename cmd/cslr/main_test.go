package main

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/cslr/lang"
	"github.com/npillmayer/cslr/lr/slr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.cli")
	defer teardown()
	//
	tree, err := parseInput(strings.NewReader("# decl\ntype id = num ;\n"), false)
	require.NoError(t, err)
	assert.Equal(t, "type id = num ;", strings.Join(tree.Kinds(), " "))
	tree, err = parseInput(strings.NewReader("int x = 7;"), true)
	require.NoError(t, err)
	assert.Equal(t, "type id = num ;", strings.Join(tree.Kinds(), " "))
}

func TestParseInputError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.cli")
	defer teardown()
	//
	_, err := parseInput(strings.NewReader("type id = = num ;"), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, slr.ErrUnexpectedToken))
	assert.Contains(t, err.Error(), `syntax error at token 3 ("=")`)
}

func TestParseInputReadError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.cli")
	defer teardown()
	//
	long := "type id " + strings.Repeat("x", bufio.MaxScanTokenSize+1) + " ;\n"
	tree, err := parseInput(strings.NewReader(long), false)
	require.Error(t, err)
	assert.Nil(t, tree)
	assert.True(t, errors.Is(err, bufio.ErrTooLong))
	assert.False(t, errors.Is(err, slr.ErrUnexpectedToken))
}

func TestTableSummary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.cli")
	defer teardown()
	//
	data := tableSummary(lang.Default().Tables)
	rows := make(map[string]string)
	for _, row := range data {
		rows[row[0]] = row[1]
	}
	assert.Equal(t, "105", rows["CFSM states"])
	assert.Equal(t, "0", rows["Conflicts"])
	assert.Equal(t, "21", rows["Terminals"])
}

func TestExports(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.cli")
	defer teardown()
	//
	dir := t.TempDir()
	tables := lang.Default().Tables
	require.NoError(t, exportDot(tables, filepath.Join(dir, "cfsm.dot")))
	require.NoError(t, exportHTML(tables, filepath.Join(dir, "html")))
	for _, name := range []string{"cfsm.dot", "html/action.html", "html/goto.html"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if assert.NoError(t, err, name) {
			assert.NotZero(t, info.Size(), name)
		}
	}
}

func TestGrammarTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.cli")
	defer teardown()
	//
	L := lang.Default()
	rules := ruleTable(L.Grammar)
	assert.Len(t, rules, L.Grammar.Size()+1)
	assert.Equal(t, []string{"0", "Program' ➞ Program"}, rules[1])
	sets := setTable(L.Analysis)
	assert.Len(t, sets, len(L.Grammar.NonTerminals())+1)
}
