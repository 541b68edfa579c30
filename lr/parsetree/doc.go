/*
Package parsetree implements parse trees as produced by the SLR parser.

A parse tree consists of leaf nodes, each holding a matched input token, and
interior nodes, each holding a non-terminal and the ordered list of its
children. Every node belongs to exactly one parent.

Presentation concerns are kept out of the tree type: Sexpr and Render produce
textual forms, FlattenList collects the elements of right-recursive list
productions like

    DeclList ➞ Decl DeclList | ε

and Walk drives a Listener over a tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cslr.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cslr.tree")
}
