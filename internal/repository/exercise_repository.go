package repository

import (
	"physics_practice_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExerciseRepository struct {
	DB *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{DB: db}
}

// ChapterStat 某一章节的作答统计
type ChapterStat struct {
	Chapter string `json:"chapter"`
	Total   int    `json:"total"`
	Correct int    `json:"correct"`
}

// RecordAnswer 在同一事务中写入作答记录、题目统计、学生统计，答错时写入错题本
func (r *ExerciseRepository) RecordAnswer(record *model.ExerciseRecord) error {
	correct := 0
	if record.IsCorrect {
		correct = 1
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Question{}).Where("id = ?", record.QuestionID).Updates(map[string]interface{}{
			"total_attempts":   gorm.Expr("total_attempts + ?", 1),
			"correct_attempts": gorm.Expr("correct_attempts + ?", correct),
		}).Error; err != nil {
			return err
		}

		stat := &model.StudentStat{
			StudentID:       record.StudentID,
			TotalAnswered:   1,
			CorrectAnswered: correct,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_answered":   gorm.Expr("total_answered + ?", 1),
				"correct_answered": gorm.Expr("correct_answered + ?", correct),
				"updated_at":       time.Now(),
			}),
		}).Create(stat).Error; err != nil {
			return err
		}

		if record.IsCorrect {
			return nil
		}

		wrong := &model.WrongQuestion{
			StudentID:   record.StudentID,
			QuestionID:  record.QuestionID,
			WrongAnswer: record.Answer,
			ReviewCount: 1,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "question_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"wrong_answer": record.Answer,
				"review_count": gorm.Expr("review_count + ?", 1),
				"is_resolved":  false,
				"updated_at":   time.Now(),
			}),
		}).Create(wrong).Error
	})
}

// CountRecordsBetween 统计 [from, to) 区间内的作答次数
func (r *ExerciseRepository) CountRecordsBetween(studentID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ExerciseRecord{}).
		Where("student_id = ? AND created_at >= ? AND created_at < ?", studentID, from, to).
		Count(&count).Error
	return count, err
}

func (r *ExerciseRepository) ChapterStats(studentID string) ([]ChapterStat, error) {
	stats := []ChapterStat{}
	err := r.DB.Model(&model.ExerciseRecord{}).
		Select("questions.chapter AS chapter, COUNT(*) AS total, SUM(CASE WHEN exercise_records.is_correct THEN 1 ELSE 0 END) AS correct").
		Joins("JOIN questions ON questions.id = exercise_records.question_id").
		Where("exercise_records.student_id = ?", studentID).
		Group("questions.chapter").
		Order("questions.chapter asc").
		Scan(&stats).Error
	return stats, err
}

func (r *ExerciseRepository) FindStudentStat(studentID string) (*model.StudentStat, error) {
	var stat model.StudentStat
	if err := r.DB.Where("student_id = ?", studentID).First(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

// FindWrongQuestions 未解决的错题，最新的在前
func (r *ExerciseRepository) FindWrongQuestions(studentID string, limit int) ([]model.WrongQuestion, error) {
	var wrongs []model.WrongQuestion
	err := r.DB.Preload("Question").
		Where("student_id = ? AND is_resolved = ?", studentID, false).
		Order("created_at desc").
		Limit(limit).
		Find(&wrongs).Error
	return wrongs, err
}

func (r *ExerciseRepository) MarkResolved(studentID, questionID string) error {
	result := r.DB.Model(&model.WrongQuestion{}).
		Where("student_id = ? AND question_id = ?", studentID, questionID).
		Update("is_resolved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
