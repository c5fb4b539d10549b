// Package output serializes batch reports: a JSON document (optionally
// filtered through a jq expression), per-flow Markdown files, and review
// comment bodies. Posting comments is the caller's concern; this package only
// produces the text.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flowlens/flowlens/internal/pipeline"
)

// WriteJSON writes v as indented JSON to path, creating parent directories.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("output: marshal JSON: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("output: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}

// WriteMarkdown writes one Markdown file per flow into dir. Mermaid output is
// fenced as a mermaid block so it renders inline on git hosts; other syntaxes
// get a plain fence named after the syntax.
func WriteMarkdown(dir string, report *pipeline.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output: create %s: %w", dir, err)
	}
	for _, f := range report.Flows {
		if f.Error != "" {
			continue
		}
		path := filepath.Join(dir, markdownName(f.File))
		if err := os.WriteFile(path, []byte(FlowMarkdown(f, report.Syntax)), 0o644); err != nil {
			return fmt.Errorf("output: write %s: %w", path, err)
		}
	}
	return nil
}

// FlowMarkdown renders one flow result as a standalone Markdown document.
func FlowMarkdown(f pipeline.FlowResult, syntax string) string {
	var b strings.Builder
	title := f.Label
	if title == "" {
		title = f.File
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if f.DiffSummary != nil {
		b.WriteString("| Added | Deleted | Modified |\n|---|---|---|\n")
		fmt.Fprintf(&b, "| %d | %d | %d |\n\n", f.DiffSummary.Added, f.DiffSummary.Deleted, f.DiffSummary.Modified)
	}

	if f.Old != "" {
		b.WriteString("<details><summary>Previous version</summary>\n\n")
		writeFenced(&b, f.Old, syntax)
		b.WriteString("</details>\n\n")
	}
	writeFenced(&b, f.New, syntax)
	return b.String()
}

// CommentBody builds the review-comment Markdown for one flow result. The
// marker line lets a caller find and update its own earlier comment instead
// of posting a duplicate.
func CommentBody(f pipeline.FlowResult, syntax string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!-- flowlens:%s -->\n", f.File)
	if f.Error != "" {
		fmt.Fprintf(&b, "## %s\n\nflowlens could not parse this flow:\n\n```\n%s\n```\n", f.File, f.Error)
		return b.String()
	}
	b.WriteString(FlowMarkdown(f, syntax))
	return b.String()
}

func writeFenced(b *strings.Builder, diagram, syntax string) {
	fence := syntax
	if fence == "" {
		fence = "text"
	}
	fmt.Fprintf(b, "```%s\n%s```\n\n", fence, diagram)
}

// markdownName derives the output file name from the flow file path.
func markdownName(flowPath string) string {
	base := filepath.Base(flowPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, ".flow-meta")
	return base + ".md"
}
