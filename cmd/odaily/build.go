package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/openclaw/odaily/annotate"
	"github.com/openclaw/odaily/core"
	"github.com/openclaw/odaily/reader/openclaw"
	"github.com/openclaw/odaily/report"
	"github.com/openclaw/odaily/rollup"
)

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Aggregate session logs into data/daily.json",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sessions",
				Usage: "Session log directory (defaults to $SESSIONS_DIR, then ~/.openclaw/agents/main/sessions)",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Data directory holding daily.json, tasks.json and surprise.json",
				Value:   "data",
			},
			&cli.StringFlag{
				Name:  "tz",
				Usage: "IANA timezone used to bucket events into calendar days",
				Value: "Asia/Shanghai",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Report mode: dashboard (newest 7 days) or full (all days)",
				Value: string(report.ModeDashboard),
			},
			&cli.IntFlag{
				Name:  "recent",
				Usage: "How many recent tool actions to include",
				Value: rollup.RecentCap,
			},
			&cli.IntFlag{
				Name:  "days",
				Usage: "How many of the newest days dashboard mode keeps",
				Value: report.DashboardDays,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loc, err := time.LoadLocation(cmd.String("tz"))
			if err != nil {
				return fmt.Errorf("load timezone: %w", err)
			}
			mode, err := report.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}

			r := &openclaw.Reader{Dir: cmd.String("sessions")}
			files, err := r.Files()
			if err != nil {
				return err
			}

			b := rollup.New(loc)
			for _, f := range files {
				log.Debug("reading session file", "path", f)
				if err := r.ReadFile(f, b.Add); err != nil {
					return err
				}
			}

			dataDir := cmd.String("data")
			days := b.Days()
			annotate.AttachTasks(days, annotate.Tasks(filepath.Join(dataDir, "tasks.json")))

			surprises := annotate.Surprises(filepath.Join(dataDir, "surprise.json"))
			today := core.DayKey(time.Now(), loc)

			rep := report.Build(
				days,
				b.Recent(int(cmd.Int("recent"))),
				annotate.Surprise(surprises, today),
				cmd.String("tz"),
				mode,
				int(cmd.Int("days")),
			)

			out := filepath.Join(dataDir, "daily.json")
			if err := report.WriteFile(out, rep); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			log.Info("wrote daily rollup", "days", len(rep.Rows), "files", len(files), "path", out)
			fmt.Printf("Wrote %d day(s) to %s\n", len(rep.Rows), out)
			return nil
		},
	}
}
