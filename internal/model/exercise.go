package model

import "time"

type ExerciseMode string

const (
	ExerciseModeRandom     ExerciseMode = "random"
	ExerciseModeChapter    ExerciseMode = "chapter"
	ExerciseModeDifficulty ExerciseMode = "difficulty"
	ExerciseModeWrong      ExerciseMode = "wrong"
)

// ExerciseRecord 学生的一次作答
type ExerciseRecord struct {
	BaseModel
	StudentID  string    `gorm:"size:64;index;not null" json:"studentId"`
	QuestionID string    `gorm:"size:36;index;not null" json:"questionId"`
	Question   *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	Answer     string    `gorm:"type:text" json:"answer"`
	IsCorrect  bool      `json:"isCorrect"`
	TimeSpent  *int      `json:"timeSpent,omitempty"`
}

func (ExerciseRecord) TableName() string {
	return "exercise_records"
}

// WrongQuestion 错题本条目，同一学生同一题目只有一条
type WrongQuestion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID   string    `gorm:"size:64;not null;uniqueIndex:idx_wrong_student_question" json:"studentId"`
	QuestionID  string    `gorm:"size:36;not null;uniqueIndex:idx_wrong_student_question" json:"questionId"`
	Question    *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	WrongAnswer string    `gorm:"type:text" json:"wrongAnswer"`
	ReviewCount int       `json:"reviewCount"`
	IsResolved  bool      `gorm:"index" json:"isResolved"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (WrongQuestion) TableName() string {
	return "wrong_questions"
}

// StudentStat 学生答题累计统计
type StudentStat struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	StudentID       string    `gorm:"size:64;not null;uniqueIndex" json:"studentId"`
	TotalAnswered   int       `json:"totalAnswered"`
	CorrectAnswered int       `json:"correctAnswered"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (StudentStat) TableName() string {
	return "student_stats"
}
