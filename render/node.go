package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/blockkit/block"
)

// Node kinds.
const (
	KindRoot  = "root"
	KindBlock = "block"
	KindText  = "text"
)

// Node is the serializable form of a block tree element.
type Node struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Open     string  `json:"open,omitempty" yaml:"open,omitempty"`
	Close    string  `json:"close,omitempty" yaml:"close,omitempty"`
	Start    int     `json:"start" yaml:"start"`
	End      int     `json:"end" yaml:"end"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// ToNode converts root and everything below it to Nodes.
func ToNode(root *block.Block) *Node {
	top := &Node{Kind: KindRoot, Start: root.Start, End: root.End}
	if !root.IsRoot() {
		top.Kind = KindBlock
		top.Open = string(root.Pair.Open)
		top.Close = string(root.Pair.Close)
	}

	// parents[depth-1] receives the children found at depth.
	parents := []*Node{top}
	root.Traverse(func(c block.Content, depth, _ int) bool {
		parent := parents[depth-1]
		switch c := c.(type) {
		case block.Text:
			parent.Children = append(parent.Children, &Node{
				Kind:  KindText,
				Start: c.Start,
				End:   c.End,
				Text:  c.Value,
			})
		case *block.Block:
			n := &Node{
				Kind:  KindBlock,
				Open:  string(c.Pair.Open),
				Close: string(c.Pair.Close),
				Start: c.Start,
				End:   c.End,
			}
			parent.Children = append(parent.Children, n)
			parents = append(parents, n)
		}
		return true
	}, func(*block.Block, int) {
		parents = parents[:len(parents)-1]
	})
	return top
}

// JSON writes root as an indented JSON Node document.
func JSON(w io.Writer, root *block.Block) error {
	return EncodeJSON(w, ToNode(root))
}

// YAML writes root as a YAML Node document.
func YAML(w io.Writer, root *block.Block) error {
	return EncodeYAML(w, ToNode(root))
}

// EncodeJSON writes v as JSON indented by two spaces.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// EncodeYAML writes v as a YAML document indented by two spaces.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}
