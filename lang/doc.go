/*
Package lang bundles a small C-like language with the SLR(1) machinery of
package lr.

The language knows variable and function declarations, blocks, if/else,
while and for loops, return statements and expressions with assignment,
equality, additive, multiplicative and unary operators, plus function calls.
Its terminals are

	type id num if else while for return ( ) { } ; = == != + - * / ,

The grammar is free of SLR(1) conflicts. The dangling else is resolved in
the grammar itself, by distinguishing matched and unmatched statements.

Parsers work on token kinds, not on source text. Clients may either provide
a sequence of terminal names

	tree, err := lang.Default().Parse(strings.Fields("type id ;"))

or let the bundled lexer turn source text into tokens first:

	tree, err := lang.Default().ParseSource("int x = 1 + 2;")

Type names (int, char, void, …) are lexed as terminal 'type', identifiers
as 'id' and numbers as 'num'.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lang

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cslr.lang'.
func tracer() tracing.Trace {
	return tracing.Select("cslr.lang")
}
