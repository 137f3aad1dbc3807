package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physics_practice_backend/internal/model"
	"physics_practice_backend/internal/repository"
	"physics_practice_backend/internal/testutil"
	"physics_practice_backend/internal/util"
)

func newExerciseService(t *testing.T) (*ExerciseService, []model.Question) {
	db := testutil.NewTestDB(t)
	questionRepo := repository.NewQuestionRepository(db)

	questions := []model.Question{
		{Title: "压强 - 题目1", Content: "压强的国际单位是什么？", Answer: "帕斯卡", Chapter: "压强", Difficulty: 1, Tags: model.StringList{"压强"}},
		{Title: "压强 - 题目2", Content: "液体压强公式", Answer: "p=ρgh", Explanation: "液体压强只与密度和深度有关", Chapter: "压强", Difficulty: 3, Tags: model.StringList{"压强"}},
		{Title: "浮力 - 题目1", Content: "阿基米德原理", Answer: "F浮=G排", Chapter: "浮力", Difficulty: 3, Tags: model.StringList{"浮力"}},
	}
	require.NoError(t, questionRepo.CreateImport(questions, &model.QuestionImport{Filename: "seed.docx"}))

	return NewExerciseService(repository.NewExerciseRepository(db), questionRepo), questions
}

func TestStartExercise(t *testing.T) {
	svc, _ := newExerciseService(t)

	session, err := svc.StartExercise("s1", &StartExerciseRequest{})
	require.NoError(t, err)
	assert.Equal(t, model.ExerciseModeRandom, session.Mode)
	assert.Len(t, session.SessionID, 36)
	assert.Len(t, session.Questions, 3)

	session, err = svc.StartExercise("s1", &StartExerciseRequest{Mode: model.ExerciseModeChapter, Chapter: "浮力"})
	require.NoError(t, err)
	require.Len(t, session.Questions, 1)
	assert.Equal(t, "浮力", session.Questions[0].Chapter)

	session, err = svc.StartExercise("s1", &StartExerciseRequest{Mode: model.ExerciseModeDifficulty, Difficulty: 3, Count: 1})
	require.NoError(t, err)
	require.Len(t, session.Questions, 1)
	assert.Equal(t, 3, session.Questions[0].Difficulty)

	_, err = svc.StartExercise("s1", &StartExerciseRequest{Mode: model.ExerciseModeChapter})
	assert.ErrorIs(t, err, util.ErrChapterRequired)

	_, err = svc.StartExercise("s1", &StartExerciseRequest{Mode: model.ExerciseModeDifficulty, Difficulty: 0})
	assert.ErrorIs(t, err, util.ErrInvalidDifficulty)

	_, err = svc.StartExercise("s1", &StartExerciseRequest{Mode: "exam"})
	assert.ErrorIs(t, err, util.ErrInvalidExerciseMode)

	_, err = svc.StartExercise("", &StartExerciseRequest{})
	assert.ErrorIs(t, err, util.ErrStudentRequired)
}

func TestSubmitAnswer(t *testing.T) {
	svc, questions := newExerciseService(t)

	result, err := svc.SubmitAnswer("s1", &SubmitAnswerRequest{QuestionID: questions[1].ID, Answer: "  p=ρgh \n"})
	require.NoError(t, err)
	assert.True(t, result.IsCorrect)
	assert.Equal(t, "液体压强只与密度和深度有关", result.Explanation)

	result, err = svc.SubmitAnswer("s1", &SubmitAnswerRequest{QuestionID: questions[0].ID, Answer: "牛顿"})
	require.NoError(t, err)
	assert.False(t, result.IsCorrect)
	assert.Equal(t, "帕斯卡", result.CorrectAnswer)

	_, err = svc.SubmitAnswer("s1", &SubmitAnswerRequest{QuestionID: "missing", Answer: "x"})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)

	wrongs, err := svc.GetWrongQuestions("s1", 0)
	require.NoError(t, err)
	require.Len(t, wrongs, 1)
	assert.Equal(t, questions[0].ID, wrongs[0].QuestionID)
	assert.Equal(t, "牛顿", wrongs[0].WrongAnswer)

	session, err := svc.StartExercise("s1", &StartExerciseRequest{Mode: model.ExerciseModeWrong})
	require.NoError(t, err)
	require.Len(t, session.Questions, 1)
	assert.Equal(t, questions[0].ID, session.Questions[0].ID)

	require.NoError(t, svc.MarkResolved("s1", questions[0].ID))
	assert.ErrorIs(t, svc.MarkResolved("s1", questions[2].ID), util.ErrWrongQuestionNotFound)

	wrongs, err = svc.GetWrongQuestions("s1", 0)
	require.NoError(t, err)
	assert.Empty(t, wrongs)
}

func TestGetStats(t *testing.T) {
	svc, questions := newExerciseService(t)

	stats, err := svc.GetStats("nobody")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalAnswered)
	assert.Zero(t, stats.Accuracy)
	assert.Len(t, stats.RecentActivity, 7)
	assert.Empty(t, stats.Chapters)

	answers := []struct {
		question model.Question
		answer   string
	}{
		{questions[0], "帕斯卡"},
		{questions[1], "错"},
		{questions[2], "F浮=G排"},
		{questions[2], "不会"},
	}
	for _, a := range answers {
		_, err := svc.SubmitAnswer("s1", &SubmitAnswerRequest{QuestionID: a.question.ID, Answer: a.answer})
		require.NoError(t, err)
	}

	stats, err = svc.GetStats("s1")
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalAnswered)
	assert.EqualValues(t, 2, stats.CorrectAnswered)
	assert.Equal(t, 50.0, stats.Accuracy)

	require.Len(t, stats.RecentActivity, 7)
	assert.Equal(t, time.Now().Format(util.DateFormat), stats.RecentActivity[6].Date)
	assert.EqualValues(t, 4, stats.RecentActivity[6].Answered)
	assert.Zero(t, stats.RecentActivity[0].Answered)

	assert.ElementsMatch(t, []ChapterAccuracy{
		{Chapter: "压强", Total: 2, Correct: 1, Accuracy: 50},
		{Chapter: "浮力", Total: 2, Correct: 1, Accuracy: 50},
	}, stats.Chapters)
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, accuracy(0, 0))
	assert.Equal(t, 33.33, accuracy(1, 3))
	assert.Equal(t, 66.67, accuracy(2, 3))
	assert.Equal(t, 100.0, accuracy(5, 5))
}

func TestImportThenPractice(t *testing.T) {
	bank, db, _ := newQuestionBankService(t)
	_, err := bank.ImportDocx(context.Background(), &ImportRequest{
		Filename: "第九章 压强.docx", Data: testutil.BuildDocx(t, sampleLines...), Chapter: "压强", Difficulty: 1,
	})
	require.NoError(t, err)

	svc := NewExerciseService(repository.NewExerciseRepository(db), bank.Repo)
	session, err := svc.StartExercise("s1", &StartExerciseRequest{Mode: model.ExerciseModeChapter, Chapter: "压强"})
	require.NoError(t, err)
	require.Len(t, session.Questions, 2)

	for _, q := range session.Questions {
		result, err := svc.SubmitAnswer("s1", &SubmitAnswerRequest{QuestionID: q.ID, Answer: q.Answer})
		require.NoError(t, err)
		assert.True(t, result.IsCorrect)
	}
}
