// Command blockkit separates text files into nested delimiter blocks.
//
// Usage:
//
//	blockkit parse main.js
//	blockkit parse --format tree --delimiters "{},()" main.js
//	blockkit parse --watch main.js
//	blockkit split --sep ",;\s" data.txt
//	blockkit stats main.js
//	blockkit schema
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "blockkit: %v\n", err)
		stop()
		os.Exit(1)
	}
}
