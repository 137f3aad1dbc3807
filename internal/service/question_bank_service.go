package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"physics_practice_backend/internal/model"
	"physics_practice_backend/internal/repository"
	"physics_practice_backend/internal/util"
	"physics_practice_backend/pkg/logger"
	"physics_practice_backend/pkg/monitoring"
	"physics_practice_backend/pkg/questionparser"
	"physics_practice_backend/pkg/tracing"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuestionBankService struct {
	Repo    *repository.QuestionRepository
	Parser  *DocxParserService
	Storage *StorageService
	Cache   *ChapterCache
}

func NewQuestionBankService(repo *repository.QuestionRepository, parser *DocxParserService, storage *StorageService, cache *ChapterCache) *QuestionBankService {
	return &QuestionBankService{
		Repo:    repo,
		Parser:  parser,
		Storage: storage,
		Cache:   cache,
	}
}

type CreateQuestionRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer" binding:"required"`
	Explanation string   `json:"explanation"`
	Chapter     string   `json:"chapter" binding:"required"`
	Section     string   `json:"section"`
	Difficulty  int      `json:"difficulty" binding:"required"`
	Tags        []string `json:"tags"`
}

// UpdateQuestionRequest 仅更新非空字段
type UpdateQuestionRequest struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Options     *[]string `json:"options"`
	Answer      *string   `json:"answer"`
	Explanation *string   `json:"explanation"`
	Chapter     *string   `json:"chapter"`
	Section     *string   `json:"section"`
	Difficulty  *int      `json:"difficulty"`
	Tags        *[]string `json:"tags"`
}

// ImportRequest LocalPath 非空时归档直接上传本地文件
type ImportRequest struct {
	Filename   string
	Data       []byte
	LocalPath  string
	Chapter    string
	Difficulty int
	Source     model.ImportSource
	DryRun     bool
}

type ImportResult struct {
	ImportID   uint                   `json:"importId,omitempty"`
	Imported   int                    `json:"imported"`
	Parsed     int                    `json:"parsed"`
	ArchiveURL string                 `json:"archiveUrl,omitempty"`
	Drafts     []questionparser.Draft `json:"-"`
}

func (s *QuestionBankService) CreateQuestion(ctx context.Context, req *CreateQuestionRequest) (*model.Question, error) {
	chapter := strings.TrimSpace(req.Chapter)
	if chapter == "" {
		return nil, util.ErrChapterRequired
	}
	if !util.ValidDifficulty(req.Difficulty) {
		return nil, util.ErrInvalidDifficulty
	}

	question := &model.Question{
		Title:       strings.TrimSpace(req.Title),
		Content:     strings.TrimSpace(req.Content),
		Options:     req.Options,
		Answer:      strings.TrimSpace(req.Answer),
		Explanation: strings.TrimSpace(req.Explanation),
		Chapter:     chapter,
		Section:     strings.TrimSpace(req.Section),
		Difficulty:  req.Difficulty,
		Tags:        normalizeTags(chapter, req.Tags),
	}
	if err := s.Repo.Create(question); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx)
	return question, nil
}

func (s *QuestionBankService) GetQuestion(id string) (*model.Question, error) {
	question, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionBankService) ListQuestions(filter repository.QuestionFilter) ([]model.Question, int64, error) {
	filter.Page, filter.PageSize = util.ClampPage(filter.Page, filter.PageSize)
	if filter.Difficulty != 0 && !util.ValidDifficulty(filter.Difficulty) {
		return nil, 0, util.ErrInvalidDifficulty
	}
	return s.Repo.List(filter)
}

func (s *QuestionBankService) UpdateQuestion(ctx context.Context, id string, req *UpdateQuestionRequest) (*model.Question, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		fields["content"] = strings.TrimSpace(*req.Content)
	}
	if req.Options != nil {
		fields["options"] = model.StringList(*req.Options)
	}
	if req.Answer != nil {
		fields["answer"] = strings.TrimSpace(*req.Answer)
	}
	if req.Explanation != nil {
		fields["explanation"] = strings.TrimSpace(*req.Explanation)
	}
	if req.Chapter != nil {
		chapter := strings.TrimSpace(*req.Chapter)
		if chapter == "" {
			return nil, util.ErrChapterRequired
		}
		fields["chapter"] = chapter
	}
	if req.Section != nil {
		fields["section"] = strings.TrimSpace(*req.Section)
	}
	if req.Difficulty != nil {
		if !util.ValidDifficulty(*req.Difficulty) {
			return nil, util.ErrInvalidDifficulty
		}
		fields["difficulty"] = *req.Difficulty
	}
	if req.Tags != nil {
		fields["tags"] = model.StringList(*req.Tags)
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrQuestionNotFound
			}
			return nil, err
		}
		s.Cache.Invalidate(ctx)
	}

	return s.GetQuestion(id)
}

func (s *QuestionBankService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}

// RandomQuestions count 超出范围时按默认值或上限处理
func (s *QuestionBankService) RandomQuestions(count int, chapter string, difficulty int) ([]model.Question, error) {
	if count <= 0 {
		count = util.DefaultExerciseCount
	}
	if count > util.MaxExerciseCount {
		count = util.MaxExerciseCount
	}
	if difficulty != 0 && !util.ValidDifficulty(difficulty) {
		return nil, util.ErrInvalidDifficulty
	}
	return s.Repo.FindRandom(count, chapter, difficulty)
}

func (s *QuestionBankService) ListChapters(ctx context.Context) ([]model.ChapterCount, error) {
	if chapters, ok := s.Cache.Get(ctx); ok {
		return chapters, nil
	}

	chapters, err := s.Repo.ListChapters()
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, chapters)
	return chapters, nil
}

func (s *QuestionBankService) ListImports(page, limit int) ([]model.QuestionImport, int64, error) {
	page, limit = util.ClampPage(page, limit)
	return s.Repo.ListImports(page, limit)
}

// ImportFile 读取本地 docx 并导入，供批量导入脚本使用
func (s *QuestionBankService) ImportFile(ctx context.Context, path, chapter string, difficulty int, dryRun bool) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.ImportDocx(ctx, &ImportRequest{
		Filename:   filepath.Base(path),
		Data:       data,
		LocalPath:  path,
		Chapter:    chapter,
		Difficulty: difficulty,
		Source:     model.ImportSourceCLI,
		DryRun:     dryRun,
	})
}

// ImportDocx 解析 docx 并将题目与导入记录写入同一事务。
// 未解析出任何题目时不写库也不归档。
func (s *QuestionBankService) ImportDocx(ctx context.Context, req *ImportRequest) (result *ImportResult, err error) {
	chapter := strings.TrimSpace(req.Chapter)
	if chapter == "" {
		return nil, util.ErrChapterRequired
	}
	if !util.ValidDifficulty(req.Difficulty) {
		return nil, util.ErrInvalidDifficulty
	}
	if req.Source == "" {
		req.Source = model.ImportSourceUpload
	}

	ctx, span := tracing.StartSpan(ctx, "QuestionBankService.ImportDocx",
		attribute.String("import.filename", req.Filename),
		attribute.String("import.chapter", chapter),
		attribute.String("import.source", string(req.Source)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	drafts, err := s.Parser.ParseDocx(req.Data, chapter, req.Difficulty)
	if err != nil {
		monitoring.ImportFailures.WithLabelValues(string(req.Source), "extract").Inc()
		return nil, fmt.Errorf("%w: %s: %w", util.ErrInvalidDocument, req.Filename, err)
	}

	result = &ImportResult{Parsed: len(drafts), Drafts: drafts}
	span.SetAttributes(attribute.Int("import.parsed", len(drafts)))

	if len(drafts) == 0 {
		logger.Log.Warn("no questions recognized in document",
			zap.String("filename", req.Filename),
			zap.String("chapter", chapter),
		)
		return result, nil
	}
	if req.DryRun {
		return result, nil
	}

	key, archiveURL := s.archive(ctx, req)

	strategy := string(s.Parser.Strategy())
	record := &model.QuestionImport{
		Filename:   req.Filename,
		Chapter:    chapter,
		Difficulty: req.Difficulty,
		Strategy:   strategy,
		Parsed:     len(drafts),
		ArchiveURL: archiveURL,
		Source:     req.Source,
	}
	if err = s.Repo.CreateImport(draftsToQuestions(drafts), record); err != nil {
		monitoring.ImportFailures.WithLabelValues(string(req.Source), "persist").Inc()
		if key != "" {
			if delErr := s.Storage.Delete(ctx, key); delErr != nil {
				logger.Log.Warn("failed to remove archived document", zap.String("key", key), zap.Error(delErr))
			}
		}
		return nil, err
	}

	s.Cache.Invalidate(ctx)
	monitoring.ImportedQuestions.WithLabelValues(string(req.Source), strategy).Add(float64(record.Imported))

	logger.Log.Info("questions imported",
		zap.String("filename", req.Filename),
		zap.String("chapter", chapter),
		zap.Int("parsed", len(drafts)),
		zap.Int("imported", record.Imported),
		zap.String("source", string(req.Source)),
	)

	result.ImportID = record.ID
	result.Imported = record.Imported
	result.ArchiveURL = archiveURL
	return result, nil
}

// archive 归档失败只记录日志，不影响导入
func (s *QuestionBankService) archive(ctx context.Context, req *ImportRequest) (string, string) {
	if s.Storage == nil {
		return "", ""
	}

	key := s.Storage.ArchiveKey(req.Filename, time.Now())
	var (
		url string
		err error
	)
	if req.LocalPath != "" {
		url, err = s.Storage.UploadFile(ctx, key, req.LocalPath, util.MimeDocx)
	} else {
		url, err = s.Storage.Upload(ctx, key, bytes.NewReader(req.Data), int64(len(req.Data)), util.MimeDocx)
	}
	if err != nil {
		logger.Log.Warn("failed to archive imported document",
			zap.String("filename", req.Filename),
			zap.Error(err),
		)
		return "", ""
	}
	return key, url
}

func draftsToQuestions(drafts []questionparser.Draft) []model.Question {
	questions := make([]model.Question, 0, len(drafts))
	for _, d := range drafts {
		questions = append(questions, model.Question{
			Title:       d.Title,
			Content:     d.Content,
			Options:     d.Options,
			Answer:      d.Answer,
			Explanation: d.Explanation,
			Chapter:     d.Chapter,
			Section:     d.Section,
			Difficulty:  d.Difficulty,
			Tags:        d.Tags,
		})
	}
	return questions
}

// normalizeTags 去重去空，章节名始终位于首位
func normalizeTags(chapter string, tags []string) model.StringList {
	out := model.StringList{chapter}
	seen := map[string]bool{chapter: true}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
