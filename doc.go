/*
Package cslr is an SLR(1) parser toolbox for a small C-like language.

The toolbox builds parser tables from a context-free grammar and drives a
shift-reduce parser over a token sequence, producing a parse tree or
reporting the first unexpected token. Package structure is as follows:

■ lr: Package lr implements grammars, FIRST/FOLLOW analysis, the LR(0)
automaton (CFSM) and SLR(1) parser tables.

■ lr/slr: Package slr implements the shift-reduce driver.

■ lr/parsetree: Package parsetree holds the parse tree type, traversal and
formatting.

■ lr/scanner: Package scanner splits token files and lexes source text.

■ lang: Package lang bundles the grammar of the C-like language.

■ cmd/cslr: Command cslr parses token files or source text, prints the
tables and runs an interactive REPL.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cslr
