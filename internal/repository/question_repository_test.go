package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"physics_practice_backend/internal/model"
	"physics_practice_backend/internal/testutil"
)

func seedQuestions(t *testing.T, repo *QuestionRepository) []model.Question {
	t.Helper()

	questions := []model.Question{
		{Title: "压强 - 题目1", Content: "压强的国际单位是什么？", Answer: "帕斯卡", Chapter: "压强", Difficulty: 1, Tags: model.StringList{"压强"}},
		{Title: "压强 - 题目2", Content: "液体内部压强与深度的关系", Answer: "p=ρgh", Chapter: "压强", Difficulty: 3, Tags: model.StringList{"压强", "液体压强"}},
		{Title: "浮力 - 题目1", Content: "阿基米德原理的内容", Answer: "F浮=G排", Chapter: "浮力", Difficulty: 3, Tags: model.StringList{"浮力"}},
	}
	record := &model.QuestionImport{Filename: "第九章 压强.docx", Chapter: "压强", Difficulty: 1, Parsed: 3, Source: model.ImportSourceCLI}
	require.NoError(t, repo.CreateImport(questions, record))
	assert.Equal(t, 3, record.Imported)
	assert.NotZero(t, record.ID)
	return questions
}

func TestCreateImportAssignsIDs(t *testing.T) {
	repo := NewQuestionRepository(testutil.NewTestDB(t))
	questions := seedQuestions(t, repo)

	for _, q := range questions {
		assert.Len(t, q.ID, 36)
	}

	got, err := repo.FindByID(questions[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "p=ρgh", got.Answer)
	assert.Equal(t, model.StringList{"压强", "液体压强"}, got.Tags)
}

func TestListFilters(t *testing.T) {
	repo := NewQuestionRepository(testutil.NewTestDB(t))
	seedQuestions(t, repo)

	all, total, err := repo.List(QuestionFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	byChapter, total, err := repo.List(QuestionFilter{Page: 1, PageSize: 10, Chapter: "压强"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, byChapter, 2)

	byDifficulty, total, err := repo.List(QuestionFilter{Page: 1, PageSize: 10, Chapter: "压强", Difficulty: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "压强 - 题目2", byDifficulty[0].Title)

	byKeyword, total, err := repo.List(QuestionFilter{Page: 1, PageSize: 10, Keyword: "阿基米德"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "浮力", byKeyword[0].Chapter)

	page2, total, err := repo.List(QuestionFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page2, 1)
}

func TestUpdateAndDelete(t *testing.T) {
	repo := NewQuestionRepository(testutil.NewTestDB(t))
	questions := seedQuestions(t, repo)

	require.NoError(t, repo.UpdateFields(questions[0].ID, map[string]interface{}{"difficulty": 2}))
	got, err := repo.FindByID(questions[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Difficulty)

	err = repo.UpdateFields("missing", map[string]interface{}{"difficulty": 2})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Delete(questions[0].ID))
	_, err = repo.FindByID(questions[0].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(questions[0].ID), gorm.ErrRecordNotFound)
}

func TestFindRandom(t *testing.T) {
	repo := NewQuestionRepository(testutil.NewTestDB(t))
	seedQuestions(t, repo)

	got, err := repo.FindRandom(2, "", 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindRandom(10, "压强", 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindRandom(10, "电学", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListChapters(t *testing.T) {
	repo := NewQuestionRepository(testutil.NewTestDB(t))
	seedQuestions(t, repo)

	chapters, err := repo.ListChapters()
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.ChapterCount{
		{Name: "压强", QuestionCount: 2},
		{Name: "浮力", QuestionCount: 1},
	}, chapters)
}

func TestListImports(t *testing.T) {
	repo := NewQuestionRepository(testutil.NewTestDB(t))
	seedQuestions(t, repo)

	imports, total, err := repo.ListImports(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, imports, 1)
	assert.Equal(t, "第九章 压强.docx", imports[0].Filename)
	assert.Equal(t, 3, imports[0].Imported)
}
