package model

import "gorm.io/datatypes"

// StringList 以 JSON 数组存储的字符串列表
type StringList = datatypes.JSONSlice[string]

// Question 题库中的题目
type Question struct {
	UUIDBase
	Title           string     `gorm:"size:255;not null" json:"title"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Options         StringList `json:"options,omitempty"`
	Answer          string     `gorm:"type:text;not null" json:"answer"`
	Explanation     string     `gorm:"type:text" json:"explanation,omitempty"`
	Chapter         string     `gorm:"size:100;index;not null" json:"chapter"`
	Section         string     `gorm:"size:100" json:"section,omitempty"`
	Difficulty      int        `gorm:"index;not null" json:"difficulty"`
	Tags            StringList `json:"tags"`
	TotalAttempts   int        `gorm:"default:0" json:"totalAttempts"`
	CorrectAttempts int        `gorm:"default:0" json:"correctAttempts"`
}

func (Question) TableName() string {
	return "questions"
}

// ChapterCount 章节及其题目数量
type ChapterCount struct {
	Name          string `json:"name"`
	QuestionCount int64  `json:"questionCount"`
}
