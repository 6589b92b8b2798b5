// Command sqlfmt formats SQL files and stdin.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/aka-chestnut/sql-formatter/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
