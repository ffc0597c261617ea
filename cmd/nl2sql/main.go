// Command nl2sql translates Spanish questions into SQL.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/miajio/nlsql/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
