package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tifan9/termfolio/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	opts := cli.Options{Verbose: isVerbose()}

	root, closeContainer := cli.NewRootCmd(opts)
	err := root.ExecuteContext(ctx)
	if cerr := closeContainer(); err == nil {
		err = cerr
	}
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("TERMFOLIO_DEBUG"), "1") || strings.EqualFold(os.Getenv("TERMFOLIO_DEBUG"), "true")
}
