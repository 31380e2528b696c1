// Package render prints block trees for people and programs.
//
// Formats:
//   - debug: compact bracketed form, e.g. [A;, [B],  C() , [D]]
//   - tree: one node per line, indented by depth, optionally coloured
//   - json: a Node document
//   - yaml: the same Node document as YAML
//
// Example usage:
//
//	root, _ := block.Separate(src, block.DefaultTable)
//	fmt.Println(render.Debug(root))
//	_ = render.Render(os.Stdout, root, render.FormatTree, render.WithMaxText(40))
package render
