package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedRun(t *testing.T, s *Store, startedAt time.Time) *Run {
	t.Helper()
	run := &Run{
		ID:          uuid.New().String(),
		StartedAt:   startedAt,
		FinishedAt:  startedAt.Add(2 * time.Second),
		Syntax:      "mermaid",
		FileCount:   2,
		OKCount:     1,
		FailedCount: 1,
	}
	files := []RunFile{
		{RunID: run.ID, Path: "flows/Order_Intake.flow-meta.xml", FlowLabel: "Order Intake",
			Status: StatusOK, Added: 1, Modified: 2},
		{RunID: run.ID, Path: "flows/Broken.flow-meta.xml",
			Status: StatusParseError, Error: "MALFORMED_DOCUMENT: unexpected EOF"},
	}
	require.NoError(t, s.RecordRun(context.Background(), run, files))
	return run
}

func TestRecordAndListRuns(t *testing.T) {
	s := newTestStore(t)
	run := seedRun(t, s, time.Now().UTC())

	runs, err := s.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, "mermaid", runs[0].Syntax)
	assert.Equal(t, 2, runs[0].FileCount)
	assert.Equal(t, 1, runs[0].OKCount)
	assert.Equal(t, 1, runs[0].FailedCount)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Now().UTC()
	first := seedRun(t, s, base.Add(-time.Hour))
	second := seedRun(t, s, base)

	runs, err := s.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)
}

func TestListRunsLimit(t *testing.T) {
	s := newTestStore(t)
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		seedRun(t, s, base.Add(time.Duration(i)*time.Minute))
	}

	runs, err := s.ListRuns(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	// Non-positive limit falls back to the default.
	runs, err = s.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 5)
}

func TestGetRunFiles(t *testing.T) {
	s := newTestStore(t)
	run := seedRun(t, s, time.Now().UTC())

	files, err := s.GetRunFiles(context.Background(), run.ID)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Ordered by path.
	assert.Equal(t, "flows/Broken.flow-meta.xml", files[0].Path)
	assert.Equal(t, StatusParseError, files[0].Status)
	assert.Contains(t, files[0].Error, "MALFORMED_DOCUMENT")

	assert.Equal(t, "flows/Order_Intake.flow-meta.xml", files[1].Path)
	assert.Equal(t, StatusOK, files[1].Status)
	assert.Equal(t, 1, files[1].Added)
	assert.Equal(t, 2, files[1].Modified)
}

func TestGetRunFilesUnknownRun(t *testing.T) {
	s := newTestStore(t)

	files, err := s.GetRunFiles(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	seedRun(t, s, time.Now().UTC())
	require.NoError(t, s.Close())

	// Reopening migrates again without error and keeps existing data.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRecordRunDuplicateID(t *testing.T) {
	s := newTestStore(t)
	run := seedRun(t, s, time.Now().UTC())

	err := s.RecordRun(context.Background(), run, nil)
	require.Error(t, err)
	assert.Contains(t, fmt.Sprint(err), "insert run")
}
