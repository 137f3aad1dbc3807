// Package questionparser 将 DOCX 提取出的纯文本切分为结构化的题目草稿。
//
// 支持两种切分策略：
//   - StrategyLine：逐行状态机，以 "1." / "1．" / "1、" 作为题目起始
//   - StrategyBlock：多种题号正则择优分块，并根据关键词表推断标签与小节
//
// 解析过程是纯函数，不做任何 I/O，可被多个 goroutine 并发调用。
package questionparser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// PlaceholderAnswer 未识别到答案行时使用的占位答案，提示人工补充
const PlaceholderAnswer = "待补充"

// DefaultMinBlockLength 题目块的最小长度（按字符计），低于该长度的块直接丢弃
const DefaultMinBlockLength = 10

type Strategy string

const (
	StrategyLine  Strategy = "line"
	StrategyBlock Strategy = "block"
)

// AnswerPolicy 同一题目块内出现多个答案行时的取值方式
type AnswerPolicy string

const (
	AnswerFirstWins AnswerPolicy = "first"
	AnswerLastWins  AnswerPolicy = "last"
)

// Draft 解析出的题目草稿，尚未入库
type Draft struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Chapter     string   `json:"chapter"`
	Section     string   `json:"section,omitempty"`
	Difficulty  int      `json:"difficulty"`
	Tags        []string `json:"tags"`
}

type Options struct {
	Strategy     Strategy
	AnswerPolicy AnswerPolicy
	// InferTags 行模式下是否推断标签与小节，块模式始终推断
	InferTags      bool
	MinBlockLength int
	Logger         *zap.Logger
}

type Parser struct {
	opts Options
	log  *zap.Logger
}

var (
	questionStartRe = regexp.MustCompile(`^\d+[.．、]\s*`)
	optionRe        = regexp.MustCompile(`^[A-H][.．、]`)
	answerRe        = regexp.MustCompile(`^【?答案】?\s*[:：]?\s*`)
	explanationRe   = regexp.MustCompile(`^【?解析】?\s*[:：]?\s*`)
	lineBreakRe     = regexp.MustCompile(`\r?\n`)
)

// New 未知的切分策略或答案策略回退到默认值并记录警告
func New(opts Options) *Parser {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	switch opts.Strategy {
	case StrategyLine, StrategyBlock:
	case "":
		opts.Strategy = StrategyLine
	default:
		log.Warn("unknown parser strategy, using line",
			zap.String("strategy", string(opts.Strategy)))
		opts.Strategy = StrategyLine
	}

	switch opts.AnswerPolicy {
	case AnswerFirstWins, AnswerLastWins:
	case "":
		opts.AnswerPolicy = AnswerFirstWins
	default:
		log.Warn("unknown answer policy, using first",
			zap.String("answerPolicy", string(opts.AnswerPolicy)))
		opts.AnswerPolicy = AnswerFirstWins
	}

	if opts.MinBlockLength <= 0 {
		opts.MinBlockLength = DefaultMinBlockLength
	}
	return &Parser{opts: opts, log: log}
}

// Parse 使用默认配置（行模式、首个答案生效）解析文本
func Parse(rawText, chapter string, difficulty int) []Draft {
	return New(Options{}).Parse(rawText, chapter, difficulty)
}

func (p *Parser) Options() Options {
	return p.opts
}

// Parse 将整篇文本解析为题目草稿，顺序与文档中的题号顺序一致。
// 无法识别的文本不会报错，只会得到更少（可能为零）的草稿。
func (p *Parser) Parse(rawText, chapter string, difficulty int) []Draft {
	var drafts []Draft
	switch p.opts.Strategy {
	case StrategyBlock:
		drafts = p.parseBlocks(rawText, chapter, difficulty)
	default:
		drafts = p.parseLines(rawText, chapter, difficulty)
	}

	p.log.Debug("parsed question drafts",
		zap.String("strategy", string(p.opts.Strategy)),
		zap.String("chapter", chapter),
		zap.Int("count", len(drafts)),
	)
	return drafts
}

// block 行模式下正在累积的题目块
type block struct {
	title       string
	content     []string
	options     []string
	answer      string
	hasAnswer   bool
	explanation string
	raw         []string
}

func (p *Parser) setAnswer(b *block, answer string) {
	if answer == "" {
		return
	}
	if b.hasAnswer && p.opts.AnswerPolicy == AnswerFirstWins {
		return
	}
	b.answer = answer
	b.hasAnswer = true
}

func (p *Parser) parseLines(rawText, chapter string, difficulty int) []Draft {
	var blocks []*block
	var current *block

	for _, line := range splitLines(rawText) {
		if loc := questionStartRe.FindStringIndex(line); loc != nil {
			if current != nil {
				blocks = append(blocks, current)
			}
			current = &block{title: strings.TrimSpace(line[loc[1]:])}
			current.raw = append(current.raw, line)
			continue
		}

		// 第一个题号出现之前的文本（如文档标题）直接忽略
		if current == nil {
			continue
		}
		current.raw = append(current.raw, line)

		switch {
		case optionRe.MatchString(line):
			current.options = append(current.options, line)
		case strings.HasPrefix(strings.TrimPrefix(line, "【"), "答案"):
			p.setAnswer(current, strings.TrimSpace(answerRe.ReplaceAllString(line, "")))
		case strings.HasPrefix(strings.TrimPrefix(line, "【"), "解析"):
			current.explanation = strings.TrimSpace(explanationRe.ReplaceAllString(line, ""))
		default:
			current.content = append(current.content, line)
		}
	}
	if current != nil {
		blocks = append(blocks, current)
	}

	drafts := make([]Draft, 0, len(blocks))
	for i, b := range blocks {
		if runeLen(strings.Join(b.raw, "\n")) < p.opts.MinBlockLength {
			p.log.Debug("skip short question block", zap.Int("index", i+1))
			continue
		}

		content := strings.Join(b.content, "\n")
		if content == "" {
			content = b.title
		}
		if strings.TrimSpace(content) == "" {
			continue
		}

		d := Draft{
			Title:       b.title,
			Content:     content,
			Answer:      b.answer,
			Explanation: b.explanation,
			Chapter:     chapter,
			Difficulty:  difficulty,
			Tags:        []string{chapter},
		}
		if len(b.options) > 0 {
			d.Options = b.options
		}
		if !b.hasAnswer {
			d.Answer = PlaceholderAnswer
		}
		if p.opts.InferTags {
			d.Tags = InferTags(d.Content, chapter)
			d.Section = InferSection(d.Content, chapter)
		}
		drafts = append(drafts, d)
	}
	return drafts
}

// splitLines 按 \r?\n 切分并去掉首尾空白，丢弃空行以及只有标点的行
func splitLines(text string) []string {
	parts := lineBreakRe.Split(text, -1)
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		line := strings.TrimSpace(part)
		if !hasWordChar(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func hasWordChar(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
