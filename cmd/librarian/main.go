package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/danieljhkim/librarian/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.ExecuteContext(ctx)
	stop()

	if err != nil {
		cli.ReportError(err)
		os.Exit(1)
	}
}
