package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/teranos/brickxml/cmd/brickxml/commands"
	"github.com/teranos/brickxml/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd, err := commands.NewRootCmd().ExecuteContextC(ctx)
	stop()
	logger.Cleanup()

	if err != nil {
		commands.ReportError(cmd, err)
		os.Exit(1)
	}
}
