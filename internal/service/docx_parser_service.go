package service

import (
	"errors"
	"physics_practice_backend/internal/config"
	"physics_practice_backend/pkg/docxtext"
	"physics_practice_backend/pkg/logger"
	"physics_practice_backend/pkg/monitoring"
	"physics_practice_backend/pkg/questionparser"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DocxParserService 提取 docx 正文并解析为题目草稿，解析配置可热更新
type DocxParserService struct {
	parser atomic.Pointer[questionparser.Parser]
}

func NewDocxParserService(cfg *config.ParserConfig) *DocxParserService {
	s := &DocxParserService{}
	s.UpdateOptions(cfg)
	return s
}

func parserOptions(cfg *config.ParserConfig) questionparser.Options {
	return questionparser.Options{
		Strategy:       questionparser.Strategy(cfg.Strategy),
		AnswerPolicy:   questionparser.AnswerPolicy(cfg.AnswerPolicy),
		InferTags:      cfg.InferTags,
		MinBlockLength: cfg.MinBlockLength,
		Logger:         logger.Log,
	}
}

// UpdateOptions 替换当前解析器，正在进行的解析不受影响
func (s *DocxParserService) UpdateOptions(cfg *config.ParserConfig) {
	p := questionparser.New(parserOptions(cfg))
	s.parser.Store(p)

	opts := p.Options()
	logger.Log.Info("question parser configured",
		zap.String("strategy", string(opts.Strategy)),
		zap.String("answerPolicy", string(opts.AnswerPolicy)),
		zap.Bool("inferTags", opts.InferTags),
		zap.Int("minBlockLength", opts.MinBlockLength),
	)
}

func (s *DocxParserService) Strategy() questionparser.Strategy {
	return s.parser.Load().Options().Strategy
}

// ParseText 解析已提取的纯文本
func (s *DocxParserService) ParseText(text, chapter string, difficulty int) []questionparser.Draft {
	p := s.parser.Load()
	start := time.Now()
	drafts := p.Parse(text, chapter, difficulty)
	monitoring.ParseDuration.WithLabelValues(string(p.Options().Strategy)).Observe(time.Since(start).Seconds())
	return drafts
}

// ParseDocx 提取失败时返回错误，空白文档或没有可识别的题目时返回空切片
func (s *DocxParserService) ParseDocx(data []byte, chapter string, difficulty int) ([]questionparser.Draft, error) {
	text, err := docxtext.Extract(data)
	if errors.Is(err, docxtext.ErrEmptyDocument) {
		return []questionparser.Draft{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.ParseText(text, chapter, difficulty), nil
}
