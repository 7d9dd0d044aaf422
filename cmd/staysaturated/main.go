package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("staysaturated"),
		kong.Description("Stay Saturated: draw vapor-pressure cards and stay inside your vapor dome"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Exec(sigCtx, os.Stdin, os.Stdout, os.Stderr)
	stop()
	ctx.FatalIfErrorf(err)
}
