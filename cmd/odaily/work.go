package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/openclaw/odaily/core"
	"github.com/openclaw/odaily/work"
)

func workCmd() *cli.Command {
	return &cli.Command{
		Name:  "work",
		Usage: "Generate the daily-work page and update works.json",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "date",
				Usage: "Date key (YYYY-MM-DD); defaults to today in --tz",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Page title",
				Value: "今日小作品",
			},
			&cli.StringFlag{
				Name:  "content",
				Usage: "Page body (markdown)",
				Value: "今天也有一個小小的作品。",
			},
			&cli.StringFlag{
				Name:  "template",
				Usage: "Layout override (constellation, rain-window, bloom, radio); default picks by date",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Directory the HTML page is written to",
				Value:   "works",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Data directory holding works.json",
				Value:   "data",
			},
			&cli.StringFlag{
				Name:  "tz",
				Usage: "IANA timezone used to resolve today's date",
				Value: "Asia/Shanghai",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			date := cmd.String("date")
			if date == "" {
				loc, err := time.LoadLocation(cmd.String("tz"))
				if err != nil {
					return fmt.Errorf("load timezone: %w", err)
				}
				date = core.DayKey(time.Now(), loc)
			}

			style := work.PickStyle(date, cmd.String("template"))
			content := cmd.String("content")
			title := cmd.String("title")

			outDir := cmd.String("out")
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			pagePath := filepath.Join(outDir, date+".html")
			f, err := os.Create(pagePath)
			if err != nil {
				return fmt.Errorf("create %s: %w", pagePath, err)
			}
			defer f.Close()

			if err := work.NewRenderer().Render(f, style, date, title, content); err != nil {
				return err
			}

			worksPath := filepath.Join(cmd.String("data"), "works.json")
			list := work.ReadFile(worksPath)
			list.Upsert(work.Entry{
				Date:    date,
				Title:   title,
				Slug:    date,
				Excerpt: work.Excerpt(content),
				Style:   style.Name,
			})
			if err := list.WriteFile(worksPath); err != nil {
				return fmt.Errorf("write works index: %w", err)
			}

			log.Info("generated daily work", "date", date, "template", style.ID, "path", pagePath)
			fmt.Printf("Generated %s using template: %s\n", date, style.ID)
			return nil
		},
	}
}
