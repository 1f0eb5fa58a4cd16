package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamNilotpal/memfile/internal/cli"
	"github.com/iamNilotpal/memfile/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		if ve := errors.AsValidationError(err); ve != nil {
			fmt.Fprintf(os.Stderr, "memfile: invalid %s (%v): %v\n", ve.Field, ve.Value, ve.Err)
		} else {
			fmt.Fprintf(os.Stderr, "memfile: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
