// Package blockkit separates text into trees of nested delimiter blocks.
//
// blockkit is a structural tokenizer: it tracks nesting of configured
// (open, close) marker pairs and keeps every other character as plain text.
// It knows nothing about strings, comments, or escaping. Each subpackage can
// be used independently:
//
//   - block: the separator, the Block tree, and its traversal helpers
//   - split: flat splitting on single-character separators
//   - render: debug, tree, JSON, and YAML printers for a Block tree
//   - stats: block counts, depth, and token estimates
//   - config: delimiter tables from YAML, TOML, JSON, or the environment
//
// # Quick Start
//
// Separating text:
//
//	import "github.com/randalmurphal/blockkit/block"
//	root, err := block.Separate("f(a) {b}", block.Table{block.Braces, block.Parens})
//
// Printing a tree:
//
//	import "github.com/randalmurphal/blockkit/render"
//	fmt.Println(render.Debug(root)) // [f, [a],  , [b]]
//
// Loading delimiters from a file:
//
//	import "github.com/randalmurphal/blockkit/config"
//	cfg, _ := config.Load("blockkit.yaml")
//	root, err := block.Separate(src, cfg.Table())
//
// The blockkit command in cmd/blockkit wraps all of the above.
package blockkit
