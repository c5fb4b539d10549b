// Package pipeline composes the core: read one or two revisions of each flow
// file, parse, compare, render. Files are processed concurrently; one file's
// parse failure is recorded and skipped, never aborting the batch.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flowlens/flowlens/internal/compare"
	"github.com/flowlens/flowlens/internal/config"
	"github.com/flowlens/flowlens/internal/flow"
	"github.com/flowlens/flowlens/internal/gitsource"
	"github.com/flowlens/flowlens/internal/history"
	"github.com/flowlens/flowlens/internal/logging"
	"github.com/flowlens/flowlens/internal/parser"
	"github.com/flowlens/flowlens/internal/render"
)

// FileJob is one flow file to process. FromRev empty means render-only;
// ToRev empty means the new side is the working tree.
type FileJob struct {
	Path    string
	FromRev string
	ToRev   string
}

// FlowResult is the outcome of one file: the rendered diagram(s) and, when
// diffing, the change summary. Error is set instead when parsing failed.
type FlowResult struct {
	File        string           `json:"file"`
	Label       string           `json:"label,omitempty"`
	Old         string           `json:"old,omitempty"`
	New         string           `json:"new,omitempty"`
	DiffSummary *compare.Summary `json:"diff_summary,omitempty"`
	ErrorCode   string           `json:"error_code,omitempty"`
	Error       string           `json:"error,omitempty"`

	// Parsed and Diff carry the new-side graph and the change table for
	// consumers that render further formats (PNG export). Not serialized.
	Parsed *flow.ParsedFlow `json:"-"`
	Diff   compare.Result   `json:"-"`
}

// Report is the batch result document.
type Report struct {
	RunID       string       `json:"run_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Syntax      string       `json:"syntax"`
	Flows       []FlowResult `json:"flows"`
}

// Runner drives a batch through parse → compare → render.
type Runner struct {
	Config  config.Config
	Logger  *slog.Logger
	History *history.Store // optional
}

// Run processes the batch. Results keep input order regardless of completion
// order. The returned error covers infrastructure only (history recording);
// per-file failures live in the report.
func (r *Runner) Run(ctx context.Context, jobs []FileJob) (*Report, error) {
	started := time.Now().UTC()
	report := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: started,
		Syntax:      r.Config.Syntax,
		Flows:       make([]FlowResult, len(jobs)),
	}
	ctx = logging.WithRunID(ctx, report.RunID)

	pool := newWorkerPool(r.Config.PoolSize)
	for i, job := range jobs {
		err := pool.submit(ctx, func(ctx context.Context) {
			ctx = logging.WithFlowPath(ctx, job.Path)
			report.Flows[i] = r.processFile(ctx, job)
		})
		if err != nil {
			report.Flows[i] = FlowResult{File: job.Path, Error: err.Error()}
		}
	}
	pool.wait()

	if r.History != nil {
		if err := r.recordRun(ctx, report, started); err != nil {
			return report, err
		}
	}
	return report, nil
}

// processFile runs one file fully through the core.
func (r *Runner) processFile(ctx context.Context, job FileJob) FlowResult {
	result := FlowResult{File: job.Path}
	strategy := render.StrategyFor(render.Syntax(r.Config.Syntax))

	newPF, err := r.parseRevision(ctx, job.Path, job.ToRev)
	if err != nil {
		r.Logger.ErrorContext(ctx, "parse failed", "code", flow.CodeOf(err), "error", err)
		result.ErrorCode = flow.CodeOf(err)
		result.Error = err.Error()
		return result
	}
	result.Label = newPF.Label

	opts := render.Options{}
	if job.FromRev != "" {
		// The old revision may legitimately lack the file (flow added in the
		// new revision) or fail to parse; either way the diff degrades to
		// "everything added".
		oldPF, oldErr := r.parseRevision(ctx, job.Path, job.FromRev)
		if oldErr != nil {
			r.Logger.WarnContext(ctx, "old revision unavailable, treating flow as new",
				"rev", job.FromRev, "error", oldErr)
		}
		diff := compare.Compare(oldPF, newPF)
		summary := diff.Summary()
		result.DiffSummary = &summary
		opts.Diff = diff
		if oldPF != nil {
			result.Old = render.Generate(oldPF, strategy, opts)
		}
	}
	result.New = render.Generate(newPF, strategy, opts)
	result.Parsed = newPF
	result.Diff = opts.Diff

	r.Logger.InfoContext(ctx, "flow rendered", "label", result.Label, "syntax", r.Config.Syntax)
	return result
}

// parseRevision reads the file from the working tree (rev == "") or from a
// git revision, then parses it.
func (r *Runner) parseRevision(ctx context.Context, path, rev string) (*flow.ParsedFlow, error) {
	var src gitsource.Source
	if rev == "" {
		src = gitsource.FileSource{Root: r.Config.RepoRoot}
	} else {
		src = gitsource.GitSource{Repo: r.Config.RepoRoot, Revision: rev}
	}
	raw, err := src.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return parser.Parse(raw)
}

// recordRun persists the batch outcome.
func (r *Runner) recordRun(ctx context.Context, report *Report, started time.Time) error {
	run := &history.Run{
		ID:         report.RunID,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		Syntax:     report.Syntax,
		FileCount:  len(report.Flows),
	}
	files := make([]history.RunFile, 0, len(report.Flows))
	for _, f := range report.Flows {
		rf := history.RunFile{
			RunID:     run.ID,
			Path:      f.File,
			FlowLabel: f.Label,
			Status:    history.StatusOK,
			Error:     f.Error,
		}
		if f.Error != "" {
			rf.Status = history.StatusParseError
			run.FailedCount++
		} else {
			run.OKCount++
		}
		if f.DiffSummary != nil {
			rf.Added = f.DiffSummary.Added
			rf.Deleted = f.DiffSummary.Deleted
			rf.Modified = f.DiffSummary.Modified
		}
		files = append(files, rf)
	}
	if err := r.History.RecordRun(ctx, run, files); err != nil {
		r.Logger.ErrorContext(ctx, "record run history", "error", err)
		return err
	}
	return nil
}
