package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physics_practice_backend/internal/testutil"
)

type fakeImporter struct {
	mu    sync.Mutex
	calls map[string]bool
	fail  map[string]bool
}

func (f *fakeImporter) ImportFile(ctx context.Context, path, chapter string, difficulty int, dryRun bool) (*ImportResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]bool{}
	}
	f.calls[filepath.Base(path)] = dryRun
	if f.fail[filepath.Base(path)] {
		return nil, errors.New("extract failed")
	}
	if dryRun {
		return &ImportResult{Parsed: 2}, nil
	}
	return &ImportResult{Parsed: 2, Imported: 2}, nil
}

func touch(t *testing.T, dir string, names ...string) {
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func TestChapterFromFilename(t *testing.T) {
	re := regexp.MustCompile(DefaultChapterPattern)

	cases := map[string]string{
		"第九章 压强（练习）.docx": "压强",
		"第10章 浮力【基础】.docx": "浮力",
		"第十章 浮力.docx":      "浮力",
	}
	for name, want := range cases {
		got, ok := ChapterFromFilename(re, name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ChapterFromFilename(re, "使用说明.docx")
	assert.False(t, ok)
}

func TestDifficultyFromFilename(t *testing.T) {
	assert.Equal(t, 1, DifficultyFromFilename("压强练习-简单.docx"))
	assert.Equal(t, 5, DifficultyFromFilename("压强练习-困难.docx"))
	assert.Equal(t, 3, DifficultyFromFilename("压强练习.docx"))
}

func TestBatchImporterRun(t *testing.T) {
	root := t.TempDir()
	collection := filepath.Join(root, "collection")
	practice := filepath.Join(root, "practice")
	touch(t, collection, "第九章 压强（练习）.docx", "第十章 浮力.docx", "说明.docx", "notes.txt")
	touch(t, practice, "压强练习-简单.docx", "压强练习-困难.docx", "压强练习.docx")

	importer := &fakeImporter{fail: map[string]bool{"第十章 浮力.docx": true}}
	results, err := NewDocxBatchImporter(importer).Run(context.Background(), BatchImportOptions{
		CollectionDir: collection,
		PracticeDir:   practice,
		Workers:       2,
	})
	require.NoError(t, err)
	require.Len(t, results, 6)

	type row struct {
		file       string
		chapter    string
		difficulty int
		skipped    bool
		imported   int
	}
	want := []row{
		{"第九章 压强（练习）.docx", "压强", 3, false, 2},
		{"第十章 浮力.docx", "浮力", 3, true, 0},
		{"说明.docx", "", 3, true, 0},
		{"压强练习-困难.docx", "压强", 5, false, 2},
		{"压强练习-简单.docx", "压强", 1, false, 2},
		{"压强练习.docx", "压强", 3, false, 2},
	}
	for i, w := range want {
		r := results[i]
		assert.Equal(t, w.file, filepath.Base(r.File))
		assert.Equal(t, w.chapter, r.Chapter, w.file)
		assert.Equal(t, w.difficulty, r.Difficulty, w.file)
		assert.Equal(t, w.skipped, r.Skipped, w.file)
		assert.Equal(t, w.imported, r.Imported, w.file)
	}
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)

	assert.Len(t, importer.calls, 5)
	assert.NotContains(t, importer.calls, "说明.docx")
}

func TestBatchImporterMissingDirectory(t *testing.T) {
	results, err := NewDocxBatchImporter(&fakeImporter{}).Run(context.Background(), BatchImportOptions{
		CollectionDir: filepath.Join(t.TempDir(), "missing"),
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBatchImporterDryRunWithService(t *testing.T) {
	svc, db, _ := newQuestionBankService(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "第九章 压强（练习）.docx"), testutil.BuildDocx(t, sampleLines...), 0o644))

	results, err := NewDocxBatchImporter(svc).Run(context.Background(), BatchImportOptions{
		CollectionDir: dir,
		DryRun:        true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Parsed)
	assert.Zero(t, results[0].Imported)

	var n int64
	require.NoError(t, db.Table("questions").Count(&n).Error)
	assert.Zero(t, n)
}
