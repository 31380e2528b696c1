// Package stats summarizes the shape of a block tree.
//
//	root, _ := block.Separate(src, block.DefaultTable)
//	s := stats.Summarize(root)
//	fmt.Println(s.Blocks, s.MaxDepth, s.Tokens)
//
// Token counts are estimates based on a characters-per-token ratio, not a
// model-specific tokenizer.
package stats
