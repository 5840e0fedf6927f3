package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"interview_warmup_backend/internal/model"
	"interview_warmup_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, dir, name string, count int) []model.Question {
	t.Helper()

	questions := make([]model.Question, 0, count)
	for i := 1; i <= count; i++ {
		questions = append(questions, model.Question{
			ID:       i,
			Category: "general",
			Type:     model.QuestionBackground,
			TextEn:   fmt.Sprintf("Question %d", i),
			TextZh:   fmt.Sprintf("问题 %d", i),
		})
	}

	data, err := json.Marshal(questions)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	return questions
}

func TestCatalogFilename(t *testing.T) {
	require.Equal(t, "data_analytics.json", CatalogFilename("Data Analytics"))
	require.Equal(t, "general.json", CatalogFilename("General"))
	require.Equal(t, "it_support.json", CatalogFilename("IT Support"))
}

func TestSampleReturnsExactCountWithoutDuplicates(t *testing.T) {
	dir := t.TempDir()
	catalog := writeCatalog(t, dir, "general.json", 8)
	svc := NewQuestionService(dir)

	sample, err := svc.FetchSample("General", 5)
	require.NoError(t, err)
	require.Len(t, sample, 5)

	inCatalog := make(map[int]bool, len(catalog))
	for _, q := range catalog {
		inCatalog[q.ID] = true
	}

	seen := make(map[int]bool)
	for _, q := range sample {
		require.True(t, inCatalog[q.ID], "sample member must come from the catalog")
		require.False(t, seen[q.ID], "sample must not contain duplicates")
		seen[q.ID] = true
	}
}

func TestSampleShortCatalogReturnsWholeCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "general.json", 3)
	svc := NewQuestionService(dir)

	sample, err := svc.FetchSample("General", 5)
	require.NoError(t, err)
	require.Len(t, sample, 3)

	seen := make(map[int]bool)
	for _, q := range sample {
		require.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestSampleDefaultCount(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "general.json", 10)
	svc := NewQuestionService(dir)

	sample, err := svc.FetchSample("General", 0)
	require.NoError(t, err)
	require.Len(t, sample, DefaultSampleSize)
}

func TestSampleUnknownPosition(t *testing.T) {
	svc := NewQuestionService(t.TempDir())

	_, err := svc.FetchSample("Astronaut", 5)
	require.ErrorIs(t, err, util.ErrPositionNotFound)
}

func TestSampleMalformedCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "general.json"), []byte("{not json"), 0644))
	svc := NewQuestionService(dir)

	_, err := svc.FetchSample("General", 5)
	require.ErrorIs(t, err, util.ErrCatalogUnreadable)
}

func TestPositions(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "general.json", 1)
	writeCatalog(t, dir, "data_analytics.json", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	svc := NewQuestionService(dir)
	positions, err := svc.Positions()
	require.NoError(t, err)
	require.Equal(t, []string{"Data Analytics", "General"}, positions)
}
