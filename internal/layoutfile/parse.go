package layoutfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse parses a layout description. Unknown item types and fields are
// rejected with the path of the offending item.
func Parse(data []byte) (*File, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("layoutfile: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, ErrEmpty
	}
	doc := root.Content[0]

	if err := checkMapping(doc, "", topFields); err != nil {
		return nil, err
	}
	if pages := lookup(doc, "pages"); pages != nil {
		if err := checkSequence(pages, "pages"); err != nil {
			return nil, err
		}
		for i, p := range pages.Content {
			path := fmt.Sprintf("pages[%d]", i)
			if err := checkMapping(p, path, pageFields); err != nil {
				return nil, err
			}
			if err := checkItems(lookup(p, "items"), path+".items"); err != nil {
				return nil, err
			}
		}
	}

	var f File
	if err := doc.Decode(&f); err != nil {
		return nil, fmt.Errorf("layoutfile: %w", err)
	}
	return &f, nil
}

func checkItems(items *yaml.Node, path string) error {
	if items == nil {
		return nil
	}
	if err := checkSequence(items, path); err != nil {
		return err
	}
	for i, it := range items.Content {
		p := fmt.Sprintf("%s[%d]", path, i)
		if it.Kind != yaml.MappingNode {
			return itemError(p, it, ErrInvalidItem, "expected a mapping")
		}
		typ := lookup(it, "type")
		if typ == nil || typ.Value == "" {
			return itemError(p, it, ErrUnknownType, "missing type")
		}
		fields, ok := itemFields[typ.Value]
		if !ok {
			return itemError(p, typ, ErrUnknownType, fmt.Sprintf("%q", typ.Value))
		}
		if err := checkMapping(it, p, fields); err != nil {
			return err
		}
		if err := checkList(lookup(it, "columns"), p+".columns", columnFields); err != nil {
			return err
		}
		if err := checkList(lookup(it, "pairs"), p+".pairs", pairFields); err != nil {
			return err
		}
		if err := checkItems(lookup(it, "items"), p+".items"); err != nil {
			return err
		}
	}
	return nil
}

// checkList checks that every element of a sequence of mappings uses only fields.
func checkList(seq *yaml.Node, path string, fields map[string]bool) error {
	if seq == nil {
		return nil
	}
	if err := checkSequence(seq, path); err != nil {
		return err
	}
	for i, n := range seq.Content {
		if err := checkMapping(n, fmt.Sprintf("%s[%d]", path, i), fields); err != nil {
			return err
		}
	}
	return nil
}

func checkMapping(n *yaml.Node, path string, fields map[string]bool) error {
	if n.Kind != yaml.MappingNode {
		return itemError(path, n, ErrInvalidItem, "expected a mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !fields[key.Value] {
			return itemError(path, key, ErrUnknownField, fmt.Sprintf("%q", key.Value))
		}
	}
	return nil
}

func checkSequence(n *yaml.Node, path string) error {
	if n.Kind != yaml.SequenceNode {
		return itemError(path, n, ErrInvalidItem, "expected a list")
	}
	return nil
}

// lookup returns the value for key in a mapping node, or nil.
func lookup(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func itemError(path string, n *yaml.Node, kind error, detail string) error {
	return &ItemError{Path: path, Line: n.Line, Kind: kind, Detail: detail}
}
