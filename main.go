package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kndndrj/dbconsole/adapters"
	"github.com/kndndrj/dbconsole/config"
	"github.com/kndndrj/dbconsole/console"
	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/format"
	"github.com/kndndrj/dbconsole/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program. It returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	menu, err := console.MenuByName(cfg.Menu)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	formatter, err := format.New(cfg.Format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logger.Close()

	logger.Infof("starting %s session against %s", menu.Name, cfg.Target)

	opts := []core.ConnectionOption{core.WithLogger(logger)}
	if cfg.Pooled {
		opts = append(opts, core.WithPool())
	}
	conn := adapters.NewConnection(cfg.Target, opts...)
	defer conn.Close()

	c := console.New(conn, menu, formatter, stdin, stdout, console.WithLogger(logger))
	if err := c.Run(ctx); err != nil {
		logger.Errorf("console: %s", err)
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}
