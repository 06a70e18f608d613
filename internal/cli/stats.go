package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/pomodesk/internal/notes"
	"github.com/sandeepkv93/pomodesk/internal/storage"
	"github.com/sandeepkv93/pomodesk/internal/todo"
	"github.com/sandeepkv93/pomodesk/internal/views"
)

type statsJSON struct {
	SessionsCompleted int `json:"sessions_completed"`
	TotalFocusMinutes int `json:"total_focus_minutes"`
	TasksDone         int `json:"tasks_done"`
	TasksTotal        int `json:"tasks_total"`
	Notes             int `json:"notes"`
}

func newStatsCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completed sessions, focus time, tasks and notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := opts.loader()
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			data := collectStats(store)
			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(statsJSON(data), "", "  ")
				if err != nil {
					return fmt.Errorf("encode stats: %w", err)
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}
			_, err = fmt.Fprintln(out, views.RenderStats(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func collectStats(store *storage.Store) views.StatsData {
	done, total := todo.Load(store).Counts()
	return views.StatsData{
		SessionsCompleted: max(0, storage.Get(store, storage.KeySessionsCompleted, 0)),
		TotalFocusMinutes: max(0, storage.Get(store, storage.KeyTotalFocusMinutes, 0)),
		TasksDone:         done,
		TasksTotal:        total,
		Notes:             len(notes.Load(store).Items()),
	}
}
