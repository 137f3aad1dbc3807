package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"physics_practice_backend/internal/model"
	"physics_practice_backend/internal/testutil"
)

func TestRecordAnswer(t *testing.T) {
	db := testutil.NewTestDB(t)
	questions := seedQuestions(t, NewQuestionRepository(db))
	repo := NewExerciseRepository(db)
	q := questions[0]

	require.NoError(t, repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s1", QuestionID: q.ID, Answer: "牛顿"}))
	require.NoError(t, repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s1", QuestionID: q.ID, Answer: "焦耳"}))
	require.NoError(t, repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s1", QuestionID: q.ID, Answer: "帕斯卡", IsCorrect: true}))

	stat, err := repo.FindStudentStat("s1")
	require.NoError(t, err)
	assert.Equal(t, 3, stat.TotalAnswered)
	assert.Equal(t, 1, stat.CorrectAnswered)

	var question model.Question
	require.NoError(t, db.First(&question, "id = ?", q.ID).Error)
	assert.Equal(t, 3, question.TotalAttempts)
	assert.Equal(t, 1, question.CorrectAttempts)

	wrongs, err := repo.FindWrongQuestions("s1", 10)
	require.NoError(t, err)
	require.Len(t, wrongs, 1)
	assert.Equal(t, 2, wrongs[0].ReviewCount)
	assert.Equal(t, "焦耳", wrongs[0].WrongAnswer)
	require.NotNil(t, wrongs[0].Question)
	assert.Equal(t, q.Title, wrongs[0].Question.Title)
}

func TestRecordAnswerRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	questions := seedQuestions(t, NewQuestionRepository(db))
	repo := NewExerciseRepository(db)

	require.NoError(t, db.Migrator().DropTable(&model.WrongQuestion{}))

	err := repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s1", QuestionID: questions[0].ID, Answer: "牛顿"})
	require.Error(t, err)

	var records int64
	require.NoError(t, db.Model(&model.ExerciseRecord{}).Count(&records).Error)
	assert.Zero(t, records)

	_, err = repo.FindStudentStat("s1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMarkResolved(t *testing.T) {
	db := testutil.NewTestDB(t)
	questions := seedQuestions(t, NewQuestionRepository(db))
	repo := NewExerciseRepository(db)
	q := questions[2]

	require.NoError(t, repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s1", QuestionID: q.ID, Answer: "不知道"}))
	require.NoError(t, repo.MarkResolved("s1", q.ID))

	wrongs, err := repo.FindWrongQuestions("s1", 10)
	require.NoError(t, err)
	assert.Empty(t, wrongs)

	assert.ErrorIs(t, repo.MarkResolved("s2", q.ID), gorm.ErrRecordNotFound)

	// 再次答错后重新出现在错题本中
	require.NoError(t, repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s1", QuestionID: q.ID, Answer: "还是不知道"}))
	wrongs, err = repo.FindWrongQuestions("s1", 10)
	require.NoError(t, err)
	require.Len(t, wrongs, 1)
	assert.Equal(t, 2, wrongs[0].ReviewCount)
}

func TestChapterStatsAndCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	questions := seedQuestions(t, NewQuestionRepository(db))
	repo := NewExerciseRepository(db)

	require.NoError(t, repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s1", QuestionID: questions[0].ID, Answer: "帕斯卡", IsCorrect: true}))
	require.NoError(t, repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s1", QuestionID: questions[1].ID, Answer: "无关"}))
	require.NoError(t, repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s1", QuestionID: questions[2].ID, Answer: "F浮=G排", IsCorrect: true}))
	require.NoError(t, repo.RecordAnswer(&model.ExerciseRecord{StudentID: "s2", QuestionID: questions[2].ID, Answer: "F浮=G排", IsCorrect: true}))

	stats, err := repo.ChapterStats("s1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []ChapterStat{
		{Chapter: "压强", Total: 2, Correct: 1},
		{Chapter: "浮力", Total: 1, Correct: 1},
	}, stats)

	now := time.Now()
	n, err := repo.CountRecordsBetween("s1", now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = repo.CountRecordsBetween("s1", now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
}
