// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/officesmith/pkg/types"
)

func openStore(t *testing.T, maxResults int) *Store {
	t.Helper()
	s, err := Open(types.HistoryConfig{
		DBPath:     filepath.Join(t.TempDir(), "state", "history.db"),
		MaxResults: maxResults,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func result(source string, status types.ConversionStatus, started time.Time, err error) types.JobResult {
	r := types.JobResult{
		Job:      types.Job{Source: source, OutputDir: "/out"},
		Status:   status,
		PDFPath:  "/out/" + source + ".pdf",
		Started:  started,
		Duration: 1500 * time.Millisecond,
	}
	if err != nil {
		r.Err = err.Error()
	}
	return r
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := openStore(t, 0)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, result("a.docx", types.ConversionDone, base, nil)))
	require.NoError(t, s.Record(ctx, result("b.xlsx", types.ConversionFailed, base.Add(time.Minute), errors.New("soffice crashed"))))
	require.NoError(t, s.Record(ctx, result("c.odt", types.ConversionSkipped, base.Add(2*time.Minute), nil)))

	entries, err := s.Recent(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "c.odt", entries[0].Source, "newest first")
	assert.Equal(t, "a.docx", entries[2].Source)

	failed := entries[1]
	assert.Equal(t, types.ConversionFailed, failed.Status)
	assert.Equal(t, "soffice crashed", failed.Error)
	assert.Equal(t, "/out", failed.OutputDir)
	assert.Equal(t, 1500*time.Millisecond, failed.Duration)
	assert.True(t, failed.Started.Equal(base.Add(time.Minute)))
	assert.NotEmpty(t, failed.ID)
	assert.NotEqual(t, entries[0].ID, entries[2].ID)
}

func TestStore_RecentFilters(t *testing.T) {
	s := openStore(t, 2)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, src := range []string{"a.docx", "a.docx", "b.docx", "c.docx"} {
		status := types.ConversionDone
		if i == 1 {
			status = types.ConversionFailed
		}
		require.NoError(t, s.Record(ctx, result(src, status, base.Add(time.Duration(i)*time.Minute), nil)))
	}

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{name: "store default limit", q: Query{}, want: []string{"c.docx", "b.docx"}},
		{name: "explicit limit", q: Query{Limit: 10}, want: []string{"c.docx", "b.docx", "a.docx", "a.docx"}},
		{name: "by status", q: Query{Status: types.ConversionFailed}, want: []string{"a.docx"}},
		{name: "by source", q: Query{Source: "a.docx", Limit: 10}, want: []string{"a.docx", "a.docx"}},
		{name: "no match", q: Query{Source: "z.docx"}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := s.Recent(ctx, tt.q)
			require.NoError(t, err)
			var got []string
			for _, e := range entries {
				got = append(got, e.Source)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open(types.HistoryConfig{})
	assert.Error(t, err)
}
