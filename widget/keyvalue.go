package widget

import "github.com/ryanlewis/dotgrid"

// DefaultSeparator joins keys and values when NewKeyValueList is given "".
const DefaultSeparator = ": "

// KeyValue is one entry of a key/value list.
type KeyValue struct {
	Key   string
	Value string
}

type keyValueList struct {
	pairs []KeyValue
	sep   string
}

// NewKeyValueList returns a node showing one "key<sep>value" entry per row.
// An empty sep selects DefaultSeparator. Entries are clipped to the node.
func NewKeyValueList(width, height int, pairs []KeyValue, sep string) *Node {
	if sep == "" {
		sep = DefaultSeparator
	}
	owned := make([]KeyValue, len(pairs))
	copy(owned, pairs)
	return newNode("keyvalue", width, height, &keyValueList{pairs: owned, sep: sep})
}

func (kv *keyValueList) Draw(ctx *Context) {
	for i, p := range kv.pairs {
		if i >= ctx.bounds.Height {
			break
		}
		n := ctx.Text(0, i, p.Key, dotgrid.StyleNone)
		n += ctx.Text(n, i, kv.sep, dotgrid.StyleNone)
		ctx.Text(n, i, p.Value, dotgrid.StyleNone)
	}
}
