/*
Package iteratable implements an iteratable set type.

Set keeps its elements in insertion order and may be iterated while it grows:
elements added during an iteration will be visited by the same iteration.
This is what closure constructions over LR items need, where every item
visited may add further items:

	S.IterateOnce()
	for S.Next() {
		item := S.Item()
		…
		S.Add(other) // will be visited later in this loop
	}

Sets only grow. Elements cannot be removed once added.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
