package questionparser

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var keywordsYAML []byte

type keywordRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Pattern  string   `yaml:"pattern"`

	re *regexp.Regexp
}

func (r *keywordRule) match(content string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return r.re != nil && r.re.MatchString(content)
}

type chapterRules struct {
	Tags     []keywordRule `yaml:"tags"`
	Sections []keywordRule `yaml:"sections"`
}

type keywordTable struct {
	Aliases  map[string]string       `yaml:"aliases"`
	Chapters map[string]chapterRules `yaml:"chapters"`
	Generic  []keywordRule           `yaml:"generic"`
}

var table = mustLoadTable(keywordsYAML)

func mustLoadTable(data []byte) *keywordTable {
	t, err := loadTable(data)
	if err != nil {
		panic(err)
	}
	return t
}

func loadTable(data []byte) (*keywordTable, error) {
	var t keywordTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse keyword table: %w", err)
	}
	for i := range t.Generic {
		if err := compileRule(&t.Generic[i]); err != nil {
			return nil, err
		}
	}
	for name, rules := range t.Chapters {
		for i := range rules.Tags {
			if err := compileRule(&rules.Tags[i]); err != nil {
				return nil, err
			}
		}
		for i := range rules.Sections {
			if err := compileRule(&rules.Sections[i]); err != nil {
				return nil, err
			}
		}
		t.Chapters[name] = rules
	}
	return &t, nil
}

func compileRule(r *keywordRule) error {
	if r.Pattern == "" {
		return nil
	}
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return fmt.Errorf("keyword rule %q: %w", r.Name, err)
	}
	r.re = re
	return nil
}

func (t *keywordTable) rulesFor(chapter string) (chapterRules, bool) {
	if canonical, ok := t.Aliases[chapter]; ok {
		chapter = canonical
	}
	rules, ok := t.Chapters[chapter]
	return rules, ok
}

// InferTags 以章节名开头，追加章节关键词表与通用题型表命中的标签，去重且保持顺序
func InferTags(content, chapter string) []string {
	tags := []string{chapter}
	seen := map[string]bool{chapter: true}
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	if rules, ok := table.rulesFor(chapter); ok {
		for i := range rules.Tags {
			if rules.Tags[i].match(content) {
				add(rules.Tags[i].Name)
			}
		}
	}
	for i := range table.Generic {
		if table.Generic[i].match(content) {
			add(table.Generic[i].Name)
		}
	}
	return tags
}

// InferSection 按顺序匹配章节的小节规则，未命中返回空串
func InferSection(content, chapter string) string {
	rules, ok := table.rulesFor(chapter)
	if !ok {
		return ""
	}
	for i := range rules.Sections {
		if rules.Sections[i].match(content) {
			return rules.Sections[i].Name
		}
	}
	return ""
}
