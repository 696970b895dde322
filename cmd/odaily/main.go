package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "odaily",
		Usage: "Compress OpenClaw session logs into a daily usage rollup",
		Description: `
            _       _ _
  ___    __| | __ _(_) |_   _
 / _ \  / _' |/ _' | | | | | |
| (_) || (_| | (_| | | | |_| |
 \___/  \__,_|\__,_|_|_|\__, |
                        |___/

 One pass over the session logs, one daily.json out the other side.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			buildCmd(),
			workCmd(),
			serveCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
