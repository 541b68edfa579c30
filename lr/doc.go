/*
Package lr implements prerequisites for LR parsing: grammars, grammar
analysis, the characteristic finite state machine (CFSM) and SLR(1)
parser tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
are identified by name; a token matches a terminal if its kind equals
the terminal's name. Grammars may contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()     // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b").End()            // B  ->  b
    b.LHS("B").Epsilon()               // B  ->  ε
    b.LHS("D").T("d").End()            // D  ->  d
    b.LHS("D").Epsilon()               // D  ->  ε
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: S' ➞ S
   1: S ➞ A a
   2: A ➞ B D
   3: B ➞ b
   4: B ➞ ε
   5: D ➞ d
   6: D ➞ ε

Rule 0 is added by the builder, augmenting the grammar with a new start symbol.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LRAnalysis object, which computes FIRST and
FOLLOW sets for the grammar. Both are computed by iterating to a fixed point.

    ga := lr.Analysis(g)  // analyser for grammar above
    ga.Grammar().EachNonTerminal(func(N *lr.Symbol) {
        fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N))
    })

    // Output:
    FIRST(A) = {b, d, ε}
    FIRST(B) = {b, ε}
    FIRST(D) = {d, ε}
    FIRST(S) = {a, b, d}

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First a characteristic finite state machine (CFSM) is built from the
grammar. The CFSM will then be transformed into a GOTO table
and an ACTION table for a SLR(1) parser. The CFSM will not be thrown away,
but is made available to the client. This is intended
for debugging purposes, but may be useful for error recovery, too.
It can be exported to Graphviz's Dot-format.

Example:

    lrgen := lr.NewTableGenerator(ga)  // ga is a LRAnalysis, see above
    err := lrgen.CreateTables()        // construct LR parser tables
    if lrgen.HasConflicts {
        for _, c := range lrgen.Tables().Conflicts() { … }
    }

If an ACTION slot receives two different actions, the later one wins. Every
such overwrite is recorded as a Conflict.

Configuration

Setting "lr.trace-conflicts" in the global configuration (package gconf)
traces conflicts at level Info instead of Debug.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cslr.lr'.
func tracer() tracing.Trace {
	return tracing.Select("cslr.lr")
}
