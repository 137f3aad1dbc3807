package service

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"physics_practice_backend/internal/config"
	"physics_practice_backend/internal/model"
	"physics_practice_backend/internal/repository"
	"physics_practice_backend/internal/testutil"
	"physics_practice_backend/internal/util"
)

var sampleLines = []string{
	"第九章 压强 练习",
	"1. 压强的国际单位是什么？",
	"A. 牛顿",
	"B. 帕斯卡",
	"答案：B",
	"解析：1Pa=1N/m²",
	"2. 液体压强公式是什么？",
	"答案：p=ρgh",
}

func newTestConfig(t *testing.T) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()},
		Parser:  config.ParserConfig{Strategy: "line", AnswerPolicy: "first", MinBlockLength: 10},
		Import:  config.ImportConfig{ArchiveDir: "question-imports", DefaultDifficulty: 1, MaxFileSizeMB: 20},
	}
}

func newQuestionBankService(t *testing.T) (*QuestionBankService, *gorm.DB, *config.Config) {
	cfg := newTestConfig(t)
	db := testutil.NewTestDB(t)
	svc := NewQuestionBankService(
		repository.NewQuestionRepository(db),
		NewDocxParserService(&cfg.Parser),
		NewStorageService(cfg),
		NewChapterCache(nil, 0),
	)
	return svc, db, cfg
}

func countFiles(t *testing.T, root string) int {
	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestImportDocx(t *testing.T) {
	svc, _, cfg := newQuestionBankService(t)
	ctx := context.Background()

	result, err := svc.ImportDocx(ctx, &ImportRequest{
		Filename:   "第九章 压强.docx",
		Data:       testutil.BuildDocx(t, sampleLines...),
		Chapter:    "压强",
		Difficulty: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Parsed)
	assert.Equal(t, 2, result.Imported)
	assert.NotZero(t, result.ImportID)
	assert.True(t, strings.HasPrefix(result.ArchiveURL, "/uploads/question-imports/"))
	assert.Equal(t, 1, countFiles(t, cfg.Storage.LocalPath))

	questions, total, err := svc.ListQuestions(repository.QuestionFilter{Chapter: "压强"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, q := range questions {
		assert.Equal(t, 2, q.Difficulty)
		assert.Equal(t, "压强", q.Tags[0])
		assert.NotEmpty(t, q.Content)
	}

	imports, total, err := svc.ListImports(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, model.ImportSourceUpload, imports[0].Source)
	assert.Equal(t, "line", imports[0].Strategy)
	assert.Equal(t, 2, imports[0].Parsed)

	chapters, err := svc.ListChapters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.ChapterCount{{Name: "压强", QuestionCount: 2}}, chapters)
}

func TestImportDocxNoQuestions(t *testing.T) {
	svc, db, cfg := newQuestionBankService(t)

	result, err := svc.ImportDocx(context.Background(), &ImportRequest{
		Filename:   "说明.docx",
		Data:       testutil.BuildDocx(t, "本练习册配套使用说明", "请独立完成全部练习"),
		Chapter:    "压强",
		Difficulty: 1,
	})
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Parsed)

	var n int64
	require.NoError(t, db.Model(&model.QuestionImport{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.Zero(t, countFiles(t, cfg.Storage.LocalPath))
}

func TestImportDocxBlankDocument(t *testing.T) {
	svc, db, cfg := newQuestionBankService(t)

	result, err := svc.ImportDocx(context.Background(), &ImportRequest{
		Filename:   "blank.docx",
		Data:       testutil.BuildDocx(t, "   "),
		Chapter:    "压强",
		Difficulty: 1,
	})
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Parsed)

	var n int64
	require.NoError(t, db.Model(&model.QuestionImport{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.Zero(t, countFiles(t, cfg.Storage.LocalPath))
}

func TestImportDocxErrors(t *testing.T) {
	svc, _, _ := newQuestionBankService(t)
	ctx := context.Background()
	data := testutil.BuildDocx(t, sampleLines...)

	_, err := svc.ImportDocx(ctx, &ImportRequest{Filename: "a.docx", Data: data, Chapter: " ", Difficulty: 1})
	assert.ErrorIs(t, err, util.ErrChapterRequired)

	_, err = svc.ImportDocx(ctx, &ImportRequest{Filename: "a.docx", Data: data, Chapter: "压强", Difficulty: 6})
	assert.ErrorIs(t, err, util.ErrInvalidDifficulty)

	_, err = svc.ImportDocx(ctx, &ImportRequest{Filename: "a.docx", Data: []byte("not a docx"), Chapter: "压强", Difficulty: 1})
	assert.Error(t, err)
}

func TestImportDocxPersistFailureRemovesArchive(t *testing.T) {
	svc, db, cfg := newQuestionBankService(t)
	require.NoError(t, db.Migrator().DropTable(&model.QuestionImport{}))

	_, err := svc.ImportDocx(context.Background(), &ImportRequest{
		Filename:   "第九章 压强.docx",
		Data:       testutil.BuildDocx(t, sampleLines...),
		Chapter:    "压强",
		Difficulty: 1,
	})
	require.Error(t, err)
	assert.Zero(t, countFiles(t, cfg.Storage.LocalPath))

	var n int64
	require.NoError(t, db.Model(&model.Question{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestImportFileDryRun(t *testing.T) {
	svc, db, _ := newQuestionBankService(t)
	path := filepath.Join(t.TempDir(), "第九章 压强.docx")
	require.NoError(t, os.WriteFile(path, testutil.BuildDocx(t, sampleLines...), 0o644))

	result, err := svc.ImportFile(context.Background(), path, "压强", 3, true)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Parsed)
	assert.Zero(t, result.Imported)
	assert.Len(t, result.Drafts, 2)

	var n int64
	require.NoError(t, db.Model(&model.Question{}).Count(&n).Error)
	assert.Zero(t, n)

	result, err = svc.ImportFile(context.Background(), path, "压强", 3, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	imports, _, err := svc.ListImports(1, 10)
	require.NoError(t, err)
	assert.Equal(t, model.ImportSourceCLI, imports[0].Source)
}

func TestQuestionCRUD(t *testing.T) {
	svc, _, _ := newQuestionBankService(t)
	ctx := context.Background()

	created, err := svc.CreateQuestion(ctx, &CreateQuestionRequest{
		Title:      "压强 - 题目1",
		Content:    " 压强的国际单位是什么？ ",
		Answer:     "帕斯卡",
		Chapter:    "压强",
		Difficulty: 1,
		Tags:       []string{"单位换算", "压强", " ", "单位换算"},
	})
	require.NoError(t, err)
	assert.Equal(t, "压强的国际单位是什么？", created.Content)
	assert.Equal(t, model.StringList{"压强", "单位换算"}, created.Tags)

	_, err = svc.CreateQuestion(ctx, &CreateQuestionRequest{Title: "t", Content: "c", Answer: "a", Chapter: "压强", Difficulty: 0})
	assert.ErrorIs(t, err, util.ErrInvalidDifficulty)

	difficulty := 4
	section := "固体压强"
	updated, err := svc.UpdateQuestion(ctx, created.ID, &UpdateQuestionRequest{Difficulty: &difficulty, Section: &section})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Difficulty)
	assert.Equal(t, "固体压强", updated.Section)
	assert.Equal(t, "帕斯卡", updated.Answer)

	bad := 9
	_, err = svc.UpdateQuestion(ctx, created.ID, &UpdateQuestionRequest{Difficulty: &bad})
	assert.ErrorIs(t, err, util.ErrInvalidDifficulty)

	_, err = svc.UpdateQuestion(ctx, "missing", &UpdateQuestionRequest{Section: &section})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)

	require.NoError(t, svc.DeleteQuestion(ctx, created.ID))
	_, err = svc.GetQuestion(created.ID)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
	assert.ErrorIs(t, svc.DeleteQuestion(ctx, created.ID), util.ErrQuestionNotFound)
}

func TestRandomQuestions(t *testing.T) {
	svc, _, _ := newQuestionBankService(t)
	_, err := svc.ImportDocx(context.Background(), &ImportRequest{
		Filename: "a.docx", Data: testutil.BuildDocx(t, sampleLines...), Chapter: "压强", Difficulty: 2,
	})
	require.NoError(t, err)

	got, err := svc.RandomQuestions(1, "压强", 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.RandomQuestions(0, "", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.RandomQuestions(1, "", 7)
	assert.ErrorIs(t, err, util.ErrInvalidDifficulty)
}

func TestDocxParserServiceUpdateOptions(t *testing.T) {
	svc := NewDocxParserService(&config.ParserConfig{})
	assert.Equal(t, "line", string(svc.Strategy()))

	svc.UpdateOptions(&config.ParserConfig{Strategy: "block"})
	assert.Equal(t, "block", string(svc.Strategy()))

	drafts := svc.ParseText("1. 液体内部压强随深度增加而增大吗？\n答案：是\n2. 大气压强能支持多高的水银柱？\n答案：760mm", "压强", 1)
	require.Len(t, drafts, 2)
	assert.Equal(t, "压强 - 题目1", drafts[0].Title)
	assert.Equal(t, "760mm", drafts[1].Answer)

	_, err := svc.ParseDocx([]byte("broken"), "压强", 1)
	assert.Error(t, err)

	drafts, err = svc.ParseDocx(testutil.BuildDocx(t, ""), "压强", 1)
	require.NoError(t, err)
	assert.Empty(t, drafts)

	// 未知取值回退到默认配置
	svc.UpdateOptions(&config.ParserConfig{Strategy: "blok", AnswerPolicy: "latest"})
	assert.Equal(t, "line", string(svc.Strategy()))
}
