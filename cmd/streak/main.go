package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhishekmishra/streak-dot-txt/internal/bootstrap"
	streakdto "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/dto"
	"github.com/abhishekmishra/streak-dot-txt/internal/platform/config"
	"github.com/abhishekmishra/streak-dot-txt/internal/ui/calendar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "streak",
		Short:         "Track habit streaks in plain text files",
		Long:          "streak keeps one text file per habit and marks, views and summarises your streaks.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&dir, "dir", "d", "", "streaks directory (default: STREAKS_DIR, config file, then ~/streaks)")

	root.AddCommand(
		newViewCmd(&dir),
		newMarkCmd(&dir),
		newNewCmd(&dir),
		newListCmd(&dir),
		newAddTickCmd(&dir),
		newSetCmd(&dir),
		newReindexCmd(&dir),
		newTUICmd(&dir),
	)
	return root
}

func loadApp(dir string) (*bootstrap.App, error) {
	cfg, err := config.New(dir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newViewCmd(dir *string) *cobra.Command {
	var file, name string
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show a streak with its statistics and calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir)
			if err != nil {
				return err
			}
			out, err := app.StreakCLI.View(cmd.Context(), file, name)
			if err != nil {
				return err
			}
			printStreak(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a streak file")
	cmd.Flags().StringVarP(&name, "name", "n", "", "streak name (fuzzy match)")
	return cmd
}

func newMarkCmd(dir *string) *cobra.Command {
	var file, name string
	cmd := &cobra.Command{
		Use:     "mark",
		Aliases: []string{"tick"},
		Short:   "Mark the current period as done",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir)
			if err != nil {
				return err
			}
			out, err := app.StreakCLI.Mark(cmd.Context(), file, name)
			if err != nil {
				return err
			}
			if out.Marked {
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %q.\n", out.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is already marked for this period.\n", out.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a streak file")
	cmd.Flags().StringVarP(&name, "name", "n", "", "streak name (fuzzy match)")
	return cmd
}

func newNewCmd(dir *string) *cobra.Command {
	var name, tickType string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new streak file",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir)
			if err != nil {
				return err
			}
			out, err := app.StreakCLI.Create(cmd.Context(), name, tickType)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s streak %q at %s\n", out.TickType, out.Name, out.Path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "streak name (required)")
	cmd.Flags().StringVarP(&tickType, "tick", "t", "", "tick type: Daily or Weekly (default Daily)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newListCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all streaks with summary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir)
			if err != nil {
				return err
			}
			items, err := app.StreakCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No streaks found.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TODAY\tNAME\tTICK\tCURRENT\tLONGEST\tAVERAGE")
			for _, item := range items {
				today := " "
				if item.TickedToday {
					today = "✓"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.0f%%\n",
					today, item.Name, item.TickType,
					item.CurrentStreak, item.LongestStreak, item.TickAverage*100)
			}
			return w.Flush()
		},
	}
}

func newAddTickCmd(dir *string) *cobra.Command {
	var file, name, date string
	cmd := &cobra.Command{
		Use:   "add-tick",
		Short: "Append a tick for an arbitrary date",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir)
			if err != nil {
				return err
			}
			out, err := app.StreakCLI.AddTick(cmd.Context(), file, name, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added tick %s to %q (%d ticks).\n", date, out.Name, len(out.Ticks))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a streak file")
	cmd.Flags().StringVarP(&name, "name", "n", "", "streak name (fuzzy match)")
	cmd.Flags().StringVar(&date, "date", "", "tick timestamp, e.g. 2026-08-28 or 2026-08-28T07:30:00 (required)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newSetCmd(dir *string) *cobra.Command {
	var file, name, key, value string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a header metadata field",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir)
			if err != nil {
				return err
			}
			out, err := app.StreakCLI.SetMetadata(cmd.Context(), file, name, key, value)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s: %s on %q.\n", key, value, out.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a streak file")
	cmd.Flags().StringVarP(&name, "name", "n", "", "streak name (fuzzy match)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "metadata key (required)")
	cmd.Flags().StringVarP(&value, "value", "v", "", "metadata value")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newReindexCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the streak index from the text files",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir)
			if err != nil {
				return err
			}
			if err := app.StreakCLI.Reindex(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Index rebuilt.")
			return nil
		},
	}
}

func newTUICmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse streaks in a full-screen terminal interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func printStreak(cmd *cobra.Command, out streakdto.StreakOutput) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Name [%s]\n", out.Name)
	fmt.Fprintf(w, "Tick [%s]\n", out.TickType)
	fmt.Fprintf(w, "File [%s]\n", out.Path)
	for _, field := range out.Metadata {
		if field.Key == "name" || field.Key == "tick" {
			continue
		}
		fmt.Fprintf(w, "%s [%s]\n", titleCase(field.Key), field.Value)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Ticked %d of %d periods, %d missed.\n",
		out.Stats.TickedPeriods, out.Stats.TotalPeriods, out.Stats.UntickedPeriods)
	fmt.Fprintf(w, "Current streak %d, longest %d, average %.0f%%.\n",
		out.Stats.CurrentStreak, out.Stats.LongestStreak, out.Stats.TickAverage*100)
	fmt.Fprintln(w)
	fmt.Fprint(w, calendar.Year(out.Ticks, time.Now()))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
