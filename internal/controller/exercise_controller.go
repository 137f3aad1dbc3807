package controller

import (
	"errors"
	"io"
	"physics_practice_backend/internal/service"
	"physics_practice_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Service *service.ExerciseService
}

func NewExerciseController(s *service.ExerciseService) *ExerciseController {
	return &ExerciseController{Service: s}
}

// StartExercise godoc
// @Summary 开始练习
// @Description mode 为 random、chapter、difficulty 或 wrong，count 默认 10，最多 100
// @Tags 练习
// @Accept json
// @Produce json
// @Param X-Student-ID header string true "学生ID"
// @Param request body service.StartExerciseRequest false "练习参数"
// @Success 200 {object} util.Response{data=service.ExerciseSession}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/exercise/start [post]
func (c *ExerciseController) StartExercise(ctx *gin.Context) {
	var req service.StartExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.Service.StartExercise(util.GetStudentID(ctx), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// SubmitAnswer godoc
// @Summary 提交答案
// @Tags 练习
// @Accept json
// @Produce json
// @Param X-Student-ID header string true "学生ID"
// @Param request body service.SubmitAnswerRequest true "答案"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 404 {object} util.Response
// @Router /api/exercise/submit [post]
func (c *ExerciseController) SubmitAnswer(ctx *gin.Context) {
	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.SubmitAnswer(util.GetStudentID(ctx), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetStats godoc
// @Summary 练习统计
// @Tags 练习
// @Produce json
// @Param X-Student-ID header string true "学生ID"
// @Success 200 {object} util.Response{data=service.StudentStats}
// @Router /api/exercise/stats [get]
func (c *ExerciseController) GetStats(ctx *gin.Context) {
	stats, err := c.Service.GetStats(util.GetStudentID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetWrongQuestions godoc
// @Summary 错题本
// @Tags 练习
// @Produce json
// @Param X-Student-ID header string true "学生ID"
// @Param limit query int false "数量" default(20)
// @Success 200 {object} util.Response{data=[]model.WrongQuestion}
// @Router /api/exercise/wrong-questions [get]
func (c *ExerciseController) GetWrongQuestions(ctx *gin.Context) {
	wrongs, err := c.Service.GetWrongQuestions(
		util.GetStudentID(ctx),
		util.ParseIntDefault(ctx.Query("limit"), util.DefaultWrongLimit),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, wrongs)
}

// MarkResolved godoc
// @Summary 标记错题已掌握
// @Tags 练习
// @Produce json
// @Param X-Student-ID header string true "学生ID"
// @Param questionId path string true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exercise/wrong-questions/{questionId}/resolved [post]
func (c *ExerciseController) MarkResolved(ctx *gin.Context) {
	if err := c.Service.MarkResolved(util.GetStudentID(ctx), ctx.Param("questionId")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
