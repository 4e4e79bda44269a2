// Package main runs a urfave/cli command whose failures are printed by mainerror.
//
//	$ go run ./example/cli --port abc
//	Error: load config
//	caused by: parse port "abc"
//	caused by: strconv.ParseUint: parsing "abc"
//	caused by: invalid syntax
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/next-trace/scg-mainerror/clierr"
	"github.com/next-trace/scg-mainerror/mainerror"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cmd := &cli.Command{
		Name:  "serve",
		Usage: "pretend to start a server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "listen port",
				Value: "8080",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit with status 2 on bad configuration",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			port, err := loadPort(cmd.String("port"))
			if err != nil {
				me := mainerror.From(fmt.Errorf("load config: %w", err), mainerror.WithCompactMessages())
				logger.DebugContext(ctx, "configuration rejected", "err", me)

				if cmd.Bool("strict") {
					return cli.Exit(me.Report(), 2)
				}

				return me
			}

			logger.InfoContext(ctx, "listening", "port", port)

			return nil
		},
	}

	clierr.Run(context.Background(), cmd, os.Args)
}

func loadPort(raw string) (int, error) {
	port, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("parse port %q: %w", raw, err)
	}

	return int(port), nil
}
