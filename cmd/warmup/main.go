package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCommand := newRootCommand()
	if executeError := rootCommand.ExecuteContext(ctx); executeError != nil {
		fmt.Fprintf(os.Stderr, "warmup: %v\n", executeError)
		return 1
	}
	return 0
}
