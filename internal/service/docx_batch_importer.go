package service

import (
	"context"
	"os"
	"path/filepath"
	"physics_practice_backend/internal/util"
	"physics_practice_backend/pkg/logger"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultChapterPattern 从“第九章 压强（练习）”一类文件名中提取章节名
const DefaultChapterPattern = `第[\d一二三四五六七八九十]+章\s+([^（【]+)[（【]?`

// PracticeChapter 练习目录下的文件统一归入该章节
const PracticeChapter = "压强"

const (
	collectionDifficulty = 3
	defaultBatchWorkers  = 4
)

// DocxImporter 导入单个本地 docx 文件
type DocxImporter interface {
	ImportFile(ctx context.Context, path, chapter string, difficulty int, dryRun bool) (*ImportResult, error)
}

type BatchImportOptions struct {
	CollectionDir  string
	PracticeDir    string
	ChapterPattern *regexp.Regexp
	DryRun         bool
	Workers        int
}

// BatchFileResult 单个文件的导入结果，Err 非空表示该文件被跳过
type BatchFileResult struct {
	File       string
	Chapter    string
	Difficulty int
	Parsed     int
	Imported   int
	Skipped    bool
	Err        error
}

type DocxBatchImporter struct {
	Importer DocxImporter
}

func NewDocxBatchImporter(importer DocxImporter) *DocxBatchImporter {
	return &DocxBatchImporter{Importer: importer}
}

// ChapterFromFilename 文件名不符合章节格式时返回 false
func ChapterFromFilename(re *regexp.Regexp, filename string) (string, bool) {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	m := re.FindStringSubmatch(name)
	if len(m) < 2 {
		return "", false
	}
	chapter := strings.TrimSpace(m[1])
	return chapter, chapter != ""
}

func DifficultyFromFilename(filename string) int {
	switch {
	case strings.Contains(filename, "简单"):
		return util.MinDifficulty
	case strings.Contains(filename, "困难"):
		return util.MaxDifficulty
	default:
		return collectionDifficulty
	}
}

// listDocx 按文件名排序返回目录下的 docx，目录不存在时返回空
func listDocx(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Log.Warn("import directory not found", zap.String("dir", dir))
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !util.IsDocx(e.Name()) || strings.HasPrefix(e.Name(), "~$") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// Plan 列出待导入文件及其章节、难度，不符合章节格式的文件标记为跳过
func (b *DocxBatchImporter) Plan(opts BatchImportOptions) ([]BatchFileResult, error) {
	re := opts.ChapterPattern
	if re == nil {
		re = regexp.MustCompile(DefaultChapterPattern)
	}

	var plan []BatchFileResult

	collection, err := listDocx(opts.CollectionDir)
	if err != nil {
		return nil, err
	}
	for _, path := range collection {
		chapter, ok := ChapterFromFilename(re, path)
		plan = append(plan, BatchFileResult{
			File:       path,
			Chapter:    chapter,
			Difficulty: collectionDifficulty,
			Skipped:    !ok,
		})
	}

	practice, err := listDocx(opts.PracticeDir)
	if err != nil {
		return nil, err
	}
	for _, path := range practice {
		plan = append(plan, BatchFileResult{
			File:       path,
			Chapter:    PracticeChapter,
			Difficulty: DifficultyFromFilename(filepath.Base(path)),
		})
	}
	return plan, nil
}

// Run 并发导入，结果顺序与 Plan 一致。单个文件失败只记录并跳过。
func (b *DocxBatchImporter) Run(ctx context.Context, opts BatchImportOptions) ([]BatchFileResult, error) {
	results, err := b.Plan(opts)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range results {
		if results[i].Skipped {
			logger.Log.Info("skipping file without chapter", zap.String("file", results[i].File))
			continue
		}

		res := &results[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, err := b.Importer.ImportFile(gctx, res.File, res.Chapter, res.Difficulty, opts.DryRun)
			if err != nil {
				res.Skipped = true
				res.Err = err
				logger.Log.Error("failed to import file",
					zap.String("file", res.File),
					zap.Error(err),
				)
				return nil
			}

			res.Parsed = out.Parsed
			res.Imported = out.Imported
			logger.Log.Info("file processed",
				zap.String("file", res.File),
				zap.String("chapter", res.Chapter),
				zap.Int("difficulty", res.Difficulty),
				zap.Int("parsed", out.Parsed),
				zap.Int("imported", out.Imported),
				zap.Bool("dryRun", opts.DryRun),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
