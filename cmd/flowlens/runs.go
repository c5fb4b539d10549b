package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flowlens/flowlens/internal/history"
)

// newRunsCommand creates the runs command, listing recorded batch runs or,
// with --files, the per-file outcomes of one run.
func newRunsCommand() *cobra.Command {
	var limit int
	var filesRun string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded batch runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(cfg.HistoryDB)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			if filesRun != "" {
				return printRunFiles(cmd, store, filesRun)
			}

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tSTARTED\tSYNTAX\tFILES\tOK\tFAILED")
			for _, r := range runs {
				fmt.Fprintf(w, "%.8s\t%s\t%s\t%d\t%d\t%d\n",
					r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Syntax,
					r.FileCount, r.OKCount, r.FailedCount)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	cmd.Flags().StringVar(&filesRun, "files", "", "show per-file outcomes for the run with this ID (unique prefix accepted)")
	return cmd
}

// printRunFiles writes the per-file table of one run. The runs table shows
// truncated IDs, so a prefix of a listed run resolves too.
func printRunFiles(cmd *cobra.Command, store *history.Store, idOrPrefix string) error {
	ctx := cmd.Context()

	files, err := store.GetRunFiles(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		runs, err := store.ListRuns(ctx, 0)
		if err != nil {
			return err
		}
		for _, r := range runs {
			if strings.HasPrefix(r.ID, idOrPrefix) {
				if files, err = store.GetRunFiles(ctx, r.ID); err != nil {
					return err
				}
				break
			}
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no recorded run matches %q", idOrPrefix)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tSTATUS\tADDED\tDELETED\tMODIFIED\tERROR")
	for _, f := range files {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			f.Path, f.Status, f.Added, f.Deleted, f.Modified, f.Error)
	}
	return w.Flush()
}
