package service

import (
	"errors"
	"math"
	"physics_practice_backend/internal/model"
	"physics_practice_backend/internal/repository"
	"physics_practice_backend/internal/util"
	"physics_practice_backend/pkg/logger"
	"physics_practice_backend/pkg/monitoring"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ExerciseService struct {
	Repo         *repository.ExerciseRepository
	QuestionRepo *repository.QuestionRepository
}

func NewExerciseService(repo *repository.ExerciseRepository, questionRepo *repository.QuestionRepository) *ExerciseService {
	return &ExerciseService{Repo: repo, QuestionRepo: questionRepo}
}

type StartExerciseRequest struct {
	Mode       model.ExerciseMode `json:"mode"`
	Chapter    string             `json:"chapter"`
	Difficulty int                `json:"difficulty"`
	Count      int                `json:"count"`
}

type ExerciseSession struct {
	SessionID string             `json:"sessionId"`
	Mode      model.ExerciseMode `json:"mode"`
	Questions []model.Question   `json:"questions"`
	StartTime time.Time          `json:"startTime"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Answer     string `json:"answer"`
	TimeSpent  *int   `json:"timeSpent"`
}

type SubmitResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation,omitempty"`
}

type DailyActivity struct {
	Date     string `json:"date"`
	Answered int64  `json:"answered"`
}

type ChapterAccuracy struct {
	Chapter  string  `json:"chapter"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

type StudentStats struct {
	TotalAnswered   int64             `json:"totalAnswered"`
	CorrectAnswered int64             `json:"correctAnswered"`
	Accuracy        float64           `json:"accuracy"`
	RecentActivity  []DailyActivity   `json:"recentActivity"`
	Chapters        []ChapterAccuracy `json:"chapters"`
}

// StartExercise 按模式抽题并生成会话
func (s *ExerciseService) StartExercise(studentID string, req *StartExerciseRequest) (*ExerciseSession, error) {
	if studentID == "" {
		return nil, util.ErrStudentRequired
	}

	count := req.Count
	if count <= 0 {
		count = util.DefaultExerciseCount
	}
	if count > util.MaxExerciseCount {
		count = util.MaxExerciseCount
	}

	mode := req.Mode
	if mode == "" {
		mode = model.ExerciseModeRandom
	}

	var (
		questions []model.Question
		err       error
	)
	switch mode {
	case model.ExerciseModeRandom:
		questions, err = s.QuestionRepo.FindRandom(count, "", 0)
	case model.ExerciseModeChapter:
		if strings.TrimSpace(req.Chapter) == "" {
			return nil, util.ErrChapterRequired
		}
		questions, err = s.QuestionRepo.FindRandom(count, strings.TrimSpace(req.Chapter), 0)
	case model.ExerciseModeDifficulty:
		if !util.ValidDifficulty(req.Difficulty) {
			return nil, util.ErrInvalidDifficulty
		}
		questions, err = s.QuestionRepo.FindRandom(count, "", req.Difficulty)
	case model.ExerciseModeWrong:
		questions, err = s.wrongQuestionSet(studentID, count)
	default:
		return nil, util.ErrInvalidExerciseMode
	}
	if err != nil {
		return nil, err
	}

	return &ExerciseSession{
		SessionID: model.GenerateUUID(),
		Mode:      mode,
		Questions: questions,
		StartTime: time.Now(),
	}, nil
}

func (s *ExerciseService) wrongQuestionSet(studentID string, count int) ([]model.Question, error) {
	wrongs, err := s.Repo.FindWrongQuestions(studentID, count)
	if err != nil {
		return nil, err
	}
	questions := make([]model.Question, 0, len(wrongs))
	for _, w := range wrongs {
		if w.Question != nil {
			questions = append(questions, *w.Question)
		}
	}
	return questions, nil
}

// SubmitAnswer 去除首尾空白后与标准答案比较，记录与统计在同一事务中更新
func (s *ExerciseService) SubmitAnswer(studentID string, req *SubmitAnswerRequest) (*SubmitResult, error) {
	if studentID == "" {
		return nil, util.ErrStudentRequired
	}

	question, err := s.QuestionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	answer := strings.TrimSpace(req.Answer)
	isCorrect := answer == strings.TrimSpace(question.Answer)

	record := &model.ExerciseRecord{
		StudentID:  studentID,
		QuestionID: question.ID,
		Answer:     answer,
		IsCorrect:  isCorrect,
		TimeSpent:  req.TimeSpent,
	}
	if err := s.Repo.RecordAnswer(record); err != nil {
		logger.Log.Error("failed to record answer",
			zap.String("studentId", studentID),
			zap.String("questionId", question.ID),
			zap.Error(err),
		)
		return nil, err
	}
	monitoring.AnswerSubmissions.WithLabelValues(strconv.FormatBool(isCorrect)).Inc()

	return &SubmitResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: question.Answer,
		Explanation:   question.Explanation,
	}, nil
}

func (s *ExerciseService) GetStats(studentID string) (*StudentStats, error) {
	if studentID == "" {
		return nil, util.ErrStudentRequired
	}

	stats := &StudentStats{
		RecentActivity: []DailyActivity{},
		Chapters:       []ChapterAccuracy{},
	}

	stat, err := s.Repo.FindStudentStat(studentID)
	switch {
	case err == nil:
		stats.TotalAnswered = int64(stat.TotalAnswered)
		stats.CorrectAnswered = int64(stat.CorrectAnswered)
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, err
	}
	stats.Accuracy = accuracy(stats.CorrectAnswered, stats.TotalAnswered)

	// 最近 7 天，含今天
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		n, err := s.Repo.CountRecordsBetween(studentID, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		stats.RecentActivity = append(stats.RecentActivity, DailyActivity{
			Date:     day.Format(util.DateFormat),
			Answered: n,
		})
	}

	chapters, err := s.Repo.ChapterStats(studentID)
	if err != nil {
		return nil, err
	}
	for _, c := range chapters {
		stats.Chapters = append(stats.Chapters, ChapterAccuracy{
			Chapter:  c.Chapter,
			Total:    c.Total,
			Correct:  c.Correct,
			Accuracy: accuracy(int64(c.Correct), int64(c.Total)),
		})
	}
	return stats, nil
}

func (s *ExerciseService) GetWrongQuestions(studentID string, limit int) ([]model.WrongQuestion, error) {
	if studentID == "" {
		return nil, util.ErrStudentRequired
	}
	if limit <= 0 {
		limit = util.DefaultWrongLimit
	}
	if limit > util.MaxPageSize {
		limit = util.MaxPageSize
	}
	return s.Repo.FindWrongQuestions(studentID, limit)
}

func (s *ExerciseService) MarkResolved(studentID, questionID string) error {
	if studentID == "" {
		return util.ErrStudentRequired
	}
	if err := s.Repo.MarkResolved(studentID, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrWrongQuestionNotFound
		}
		return err
	}
	return nil
}

// accuracy 百分比，保留两位小数
func accuracy(correct, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)*10000/float64(total)) / 100
}
