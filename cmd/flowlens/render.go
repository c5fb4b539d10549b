package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowlens/flowlens/internal/history"
	"github.com/flowlens/flowlens/internal/output"
	"github.com/flowlens/flowlens/internal/pipeline"
	"github.com/flowlens/flowlens/internal/render"
)

// outputFlags are shared by the render and diff commands.
type outputFlags struct {
	out      string
	jsonPath string
	query    string
	png      bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.out, "out", "", "directory for Markdown output (default from config)")
	cmd.Flags().StringVar(&f.jsonPath, "json", "", "write the batch report as JSON to this path")
	cmd.Flags().StringVar(&f.query, "query", "", "jq expression applied to the JSON report before writing")
	cmd.Flags().BoolVar(&f.png, "png", false, "also export a PNG image per flow")
}

// newRenderCommand creates the render command.
func newRenderCommand() *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "render <flow-file>...",
		Short: "Render flow files as diagrams",
		Long: `Render parses each flow file from the working tree and writes one Markdown
diagram per flow.

Examples:
  flowlens render force-app/main/default/flows/Order_Intake.flow-meta.xml
  flowlens render flows/*.xml --syntax plantuml --json report.json
  flowlens render flows/Order_Intake.flow-meta.xml --png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := make([]pipeline.FileJob, len(args))
			for i, path := range args {
				jobs[i] = pipeline.FileJob{Path: path}
			}
			report, err := runBatch(cmd, jobs)
			if err != nil {
				return err
			}
			return emitOutputs(cmd, report, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

// runBatch drives the pipeline with history recording when available.
func runBatch(cmd *cobra.Command, jobs []pipeline.FileJob) (*pipeline.Report, error) {
	runner := &pipeline.Runner{Config: cfg, Logger: logger}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		logger.Warn("run history unavailable", "db", cfg.HistoryDB, "error", err)
	} else {
		runner.History = store
		defer store.Close()
	}

	return runner.Run(cmd.Context(), jobs)
}

// emitOutputs writes Markdown, optional JSON (optionally jq-filtered) and
// optional PNGs, then summarizes failures on stderr.
func emitOutputs(cmd *cobra.Command, report *pipeline.Report, flags outputFlags) error {
	outDir := flags.out
	if outDir == "" {
		outDir = cfg.OutDir
	}

	if err := output.WriteMarkdown(outDir, report); err != nil {
		return err
	}

	if flags.jsonPath != "" {
		var doc any = report
		if flags.query != "" {
			filtered, err := output.NewQueryEngine().Apply(cmd.Context(), flags.query, report)
			if err != nil {
				return err
			}
			doc = filtered
		}
		if err := output.WriteJSON(flags.jsonPath, doc); err != nil {
			return err
		}
	}

	if flags.png {
		if err := writePNGs(cmd, report, outDir); err != nil {
			return err
		}
	}

	failed := 0
	for _, f := range report.Flows {
		if f.Error != "" {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %s\n", f.File, f.Error)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %d of %d flows rendered to %s\n",
		len(report.Flows)-failed, len(report.Flows), outDir)
	return nil
}

func writePNGs(cmd *cobra.Command, report *pipeline.Report, outDir string) error {
	for _, f := range report.Flows {
		if f.Parsed == nil {
			continue
		}
		png, err := render.RenderImage(cmd.Context(), f.Parsed, render.Options{Diff: f.Diff})
		if err != nil {
			return fmt.Errorf("export PNG for %s: %w", f.File, err)
		}
		name := strings.TrimSuffix(filepath.Base(f.File), filepath.Ext(f.File))
		name = strings.TrimSuffix(name, ".flow-meta") + ".png"
		if err := os.WriteFile(filepath.Join(outDir, name), png, 0o644); err != nil {
			return fmt.Errorf("write PNG for %s: %w", f.File, err)
		}
	}
	return nil
}
