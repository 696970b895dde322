package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the generated artifacts for local preview",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Data directory (daily.json, works.json)",
				Value:   "data",
			},
			&cli.StringFlag{
				Name:  "works",
				Usage: "Directory of generated daily-work pages",
				Value: "works",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8787,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mux := http.NewServeMux()
			mux.Handle("/data/", http.StripPrefix("/data/", http.FileServer(http.Dir(cmd.String("data")))))
			mux.Handle("/works/", http.StripPrefix("/works/", http.FileServer(http.Dir(cmd.String("works")))))

			addr := fmt.Sprintf(":%d", cmd.Int("port"))
			log.Info("serving", "addr", "http://localhost"+addr)
			return http.ListenAndServe(addr, mux)
		},
	}
}
