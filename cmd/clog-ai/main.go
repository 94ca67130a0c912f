package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hoanghonghuy/clog-ai/internal/cli"
)

// Version information (set by ldflags during build)
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	code := cli.Run(ctx)

	stop()
	os.Exit(code)
}
