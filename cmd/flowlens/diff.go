package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowlens/flowlens/internal/output"
	"github.com/flowlens/flowlens/internal/pipeline"
)

// newDiffCommand creates the diff command.
func newDiffCommand() *cobra.Command {
	var flags outputFlags
	var fromRev, toRev string
	var comment bool

	cmd := &cobra.Command{
		Use:   "diff <flow-file>...",
		Short: "Render flow diagrams highlighting changes between two revisions",
		Long: `Diff parses each flow file at two points in git history, marks every node
as added, deleted or modified, and renders both versions with the changes
highlighted. --to defaults to the working tree.

Examples:
  flowlens diff flows/Order_Intake.flow-meta.xml --from main
  flowlens diff flows/*.xml --from v1.4.0 --to v1.5.0 --json report.json
  flowlens diff flows/Order_Intake.flow-meta.xml --from origin/main --comment`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := make([]pipeline.FileJob, len(args))
			for i, path := range args {
				jobs[i] = pipeline.FileJob{Path: path, FromRev: fromRev, ToRev: toRev}
			}
			report, err := runBatch(cmd, jobs)
			if err != nil {
				return err
			}
			if comment {
				for _, f := range report.Flows {
					fmt.Fprintln(cmd.OutOrStdout(), output.CommentBody(f, report.Syntax))
				}
				return nil
			}
			return emitOutputs(cmd, report, flags)
		},
	}

	cmd.Flags().StringVar(&fromRev, "from", "", "git revision of the old version (required)")
	cmd.Flags().StringVar(&toRev, "to", "", "git revision of the new version (default: working tree)")
	cmd.Flags().BoolVar(&comment, "comment", false, "print review-comment bodies to stdout instead of writing files")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
