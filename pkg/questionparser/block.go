package questionparser

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// 参与择优的题号分块模式：1. / 1、 / (1)
var splitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\n\s*\d+[.．。]\s*`),
	regexp.MustCompile(`\n\s*\d+、\s*`),
	regexp.MustCompile(`\n\s*[（(]\d+[）)]\s*`),
}

var (
	paragraphRe   = regexp.MustCompile(`\n\s*\n`)
	blockAnswerRe = regexp.MustCompile(`^(?:【答案】|(?:答案|解答|答)[:：\s])\s*[:：]?\s*`)
)

const (
	// 分块择优时参与计数的最小长度
	splitMinLength = 10
	// 按段落兜底切分时的最小长度
	paragraphMinLength = 20
)

func (p *Parser) parseBlocks(rawText, chapter string, difficulty int) []Draft {
	blocks := splitBlocks(rawText)

	drafts := make([]Draft, 0, len(blocks))
	for i, b := range blocks {
		if runeLen(b) < p.opts.MinBlockLength {
			continue
		}
		d, ok := p.parseBlock(b, chapter, difficulty, len(drafts)+1)
		if !ok {
			p.log.Debug("skip question block without content", zap.Int("index", i+1))
			continue
		}
		drafts = append(drafts, d)
	}
	return drafts
}

// splitBlocks 依次尝试各题号模式，保留切出有效块最多的一种；
// 都切不开时退回到按空行分段。
func splitBlocks(rawText string) []string {
	text := "\n" + strings.ReplaceAll(rawText, "\r\n", "\n")

	var best []string
	for _, re := range splitPatterns {
		blocks := splitByMarker(re, text)
		if len(blocks) > len(best) {
			best = blocks
		}
	}
	if len(best) > 1 {
		return best
	}

	var paragraphs []string
	for _, s := range paragraphRe.Split(text, -1) {
		if runeLen(s) > paragraphMinLength {
			paragraphs = append(paragraphs, strings.TrimSpace(s))
		}
	}
	return paragraphs
}

// splitByMarker 第一个题号之前的内容视为文档前言，不参与分块
func splitByMarker(re *regexp.Regexp, text string) []string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var blocks []string
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segment := text[loc[1]:end]
		if runeLen(segment) > splitMinLength {
			blocks = append(blocks, strings.TrimSpace(segment))
		}
	}
	return blocks
}

func (p *Parser) parseBlock(text, chapter string, difficulty, number int) (Draft, bool) {
	var (
		content     []string
		options     []string
		explanation []string
		answer      string
		answered    bool
	)

	for _, line := range splitLines(text) {
		if answered {
			if p.opts.AnswerPolicy == AnswerLastWins && blockAnswerRe.MatchString(line) {
				if a := strings.TrimSpace(blockAnswerRe.ReplaceAllString(line, "")); a != "" {
					answer = a
				}
				continue
			}
			explanation = append(explanation, line)
			continue
		}

		switch {
		case optionRe.MatchString(line):
			options = append(options, line)
		case blockAnswerRe.MatchString(line):
			answer = strings.TrimSpace(blockAnswerRe.ReplaceAllString(line, ""))
			answered = true
		case strings.HasPrefix(strings.TrimPrefix(line, "【"), "解析"):
			explanation = append(explanation, line)
		default:
			content = append(content, line)
		}
	}

	if len(content) == 0 {
		return Draft{}, false
	}
	if len(explanation) > 0 {
		explanation[0] = explanationRe.ReplaceAllString(explanation[0], "")
	}

	d := Draft{
		Title:       fmt.Sprintf("%s - 题目%d", chapter, number),
		Content:     strings.Join(content, "\n"),
		Answer:      answer,
		Explanation: strings.TrimSpace(strings.Join(explanation, "\n")),
		Chapter:     chapter,
		Difficulty:  difficulty,
	}
	if len(options) > 0 {
		d.Options = options
	}
	if d.Answer == "" {
		d.Answer = PlaceholderAnswer
	}
	d.Tags = InferTags(d.Content, chapter)
	d.Section = InferSection(d.Content, chapter)
	return d, true
}
