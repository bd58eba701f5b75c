package main

import (
	"context"
	"os"

	"passnice/cmd/passnice/commands"
	"passnice/internal/components/osutil"
)

func run() int {
	ctx, cancel := osutil.SignalContext(context.Background())
	defer cancel()
	return commands.ExecuteContext(ctx)
}

func main() {
	os.Exit(run())
}
