package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/doeshing/hostcheck/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	// HOSTCHECK_* overrides may live in a .env next to a cron job
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}

	root := cli.NewRootCmd(cli.Options{Verbose: isVerbose()})
	err := root.ExecuteContext(ctx)
	if cli.ShouldReport(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return cli.ExitCode(err)
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("HOSTCHECK_DEBUG"), "1") || strings.EqualFold(os.Getenv("HOSTCHECK_DEBUG"), "true")
}
