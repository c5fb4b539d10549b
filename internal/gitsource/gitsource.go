// Package gitsource retrieves flow documents, either from the working tree or
// from a git revision. The core never knows which: both hand back raw bytes.
package gitsource

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Source supplies the raw content of one flow document.
type Source interface {
	// Read returns the document bytes for the given repository-relative or
	// absolute path.
	Read(ctx context.Context, path string) ([]byte, error)
}

// FileSource reads from the working tree, resolving relative paths against
// Root when set.
type FileSource struct {
	Root string
}

func (s FileSource) Read(_ context.Context, path string) ([]byte, error) {
	if s.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.Root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gitsource: read %s: %w", path, err)
	}
	return data, nil
}

// GitSource reads a file as it existed at Revision, via `git show`. Repo is
// the repository root; when empty, git resolves it from the working
// directory.
type GitSource struct {
	Repo     string
	Revision string
}

func (s GitSource) Read(ctx context.Context, path string) ([]byte, error) {
	rel := path
	if s.Repo != "" && filepath.IsAbs(path) {
		r, err := filepath.Rel(s.Repo, path)
		if err != nil {
			return nil, fmt.Errorf("gitsource: %s is outside repository %s: %w", path, s.Repo, err)
		}
		rel = r
	}
	rel = filepath.ToSlash(rel)

	cmd := exec.CommandContext(ctx, "git", "show", s.Revision+":"+rel)
	if s.Repo != "" {
		cmd.Dir = s.Repo
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("gitsource: git show %s:%s: %s", s.Revision, rel, msg)
	}
	return stdout.Bytes(), nil
}
