// Command todotrack is the operator CLI: schema migrations, user tokens and a text history view
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todotrack/internal/platform/config"
	"todotrack/internal/platform/logger"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintln(os.Stderr, "dotenv:", err)
	}
	logger.Init(logger.FromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdout)
	defer a.close()
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		a.close()
		os.Exit(1)
	}
}
