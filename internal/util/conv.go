package util

import (
	"strconv"
	"strings"
)

// ParseIntDefault 解析失败或为空时返回默认值
func ParseIntDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// ClampPage 规范化分页参数
func ClampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// SplitList 拆分逗号分隔的查询参数，兼容中文逗号与顿号
func SplitList(s string) []string {
	s = strings.NewReplacer("，", ",", "、", ",").Replace(s)
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func ValidDifficulty(d int) bool {
	return d >= MinDifficulty && d <= MaxDifficulty
}
