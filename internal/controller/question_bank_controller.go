package controller

import (
	"io"
	"physics_practice_backend/internal/config"
	"physics_practice_backend/internal/model"
	"physics_practice_backend/internal/repository"
	"physics_practice_backend/internal/service"
	"physics_practice_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionBankController struct {
	Service *service.QuestionBankService
	Cfg     *config.ImportConfig
}

func NewQuestionBankController(s *service.QuestionBankService, cfg *config.ImportConfig) *QuestionBankController {
	return &QuestionBankController{Service: s, Cfg: cfg}
}

// CreateQuestion godoc
// @Summary 创建题目
// @Tags 题库
// @Accept json
// @Produce json
// @Param request body service.CreateQuestionRequest true "题目"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionBankController) CreateQuestion(ctx *gin.Context) {
	var req service.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.CreateQuestion(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// ListQuestions godoc
// @Summary 分页查询题目
// @Description tags 为逗号分隔，命中任意一个即返回
// @Tags 题库
// @Produce json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Param chapter query string false "章节"
// @Param difficulty query int false "难度 1-5"
// @Param tags query string false "标签"
// @Param keyword query string false "标题或内容关键字"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/questions [get]
func (c *QuestionBankController) ListQuestions(ctx *gin.Context) {
	filter := repository.QuestionFilter{
		Page:       util.ParseIntDefault(ctx.Query("page"), 1),
		PageSize:   util.ParseIntDefault(ctx.Query("pageSize"), util.DefaultPageSize),
		Chapter:    ctx.Query("chapter"),
		Difficulty: util.ParseIntDefault(ctx.Query("difficulty"), 0),
		Tags:       util.SplitList(ctx.Query("tags")),
		Keyword:    ctx.Query("keyword"),
	}
	filter.Page, filter.PageSize = util.ClampPage(filter.Page, filter.PageSize)

	questions, total, err := c.Service.ListQuestions(filter)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Page(ctx, questions, total, filter.Page, filter.PageSize)
}

// RandomQuestions godoc
// @Summary 随机抽题
// @Tags 题库
// @Produce json
// @Param count query int false "数量" default(10)
// @Param chapter query string false "章节"
// @Param difficulty query int false "难度 1-5"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions/random [get]
func (c *QuestionBankController) RandomQuestions(ctx *gin.Context) {
	questions, err := c.Service.RandomQuestions(
		util.ParseIntDefault(ctx.Query("count"), util.DefaultExerciseCount),
		ctx.Query("chapter"),
		util.ParseIntDefault(ctx.Query("difficulty"), 0),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// ListChapters godoc
// @Summary 章节列表及题目数量
// @Tags 题库
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ChapterCount}
// @Router /api/questions/chapters [get]
func (c *QuestionBankController) ListChapters(ctx *gin.Context) {
	chapters, err := c.Service.ListChapters(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, chapters)
}

// ListImports godoc
// @Summary 导入历史
// @Tags 题库
// @Produce json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/questions/imports [get]
func (c *QuestionBankController) ListImports(ctx *gin.Context) {
	page, pageSize := util.ClampPage(
		util.ParseIntDefault(ctx.Query("page"), 1),
		util.ParseIntDefault(ctx.Query("pageSize"), util.DefaultPageSize),
	)

	imports, total, err := c.Service.ListImports(page, pageSize)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Page(ctx, imports, total, page, pageSize)
}

// GetQuestion godoc
// @Summary 题目详情
// @Tags 题库
// @Produce json
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionBankController) GetQuestion(ctx *gin.Context) {
	question, err := c.Service.GetQuestion(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// UpdateQuestion godoc
// @Summary 更新题目
// @Description 只更新请求中出现的字段
// @Tags 题库
// @Accept json
// @Produce json
// @Param id path string true "题目ID"
// @Param request body service.UpdateQuestionRequest true "待更新字段"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionBankController) UpdateQuestion(ctx *gin.Context) {
	var req service.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.UpdateQuestion(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags 题库
// @Produce json
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionBankController) DeleteQuestion(ctx *gin.Context) {
	if err := c.Service.DeleteQuestion(ctx.Request.Context(), ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ImportDocx godoc
// @Summary 上传 docx 导入题目
// @Description 解析 Word 文档中的题目并批量入库，未识别出题目时 imported 为 0
// @Tags 题库
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "docx 文件"
// @Param chapter formData string true "章节"
// @Param difficulty formData int false "难度 1-5" default(1)
// @Success 200 {object} util.Response{data=service.ImportResult}
// @Failure 400 {object} util.Response
// @Failure 413 {object} util.Response
// @Router /api/questions/import [post]
func (c *QuestionBankController) ImportDocx(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "File is required")
		return
	}

	maxSize := int64(c.Cfg.MaxFileSizeMB) << 20
	if maxSize > 0 && file.Size > maxSize {
		util.HandleError(ctx, util.ErrFileTooLarge)
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	// 深度验证文件类型
	if err := util.ValidateDocx(file.Filename, src); err != nil {
		util.HandleError(ctx, err)
		return
	}
	// 重置读取指针
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	data, err := io.ReadAll(src)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	result, err := c.Service.ImportDocx(ctx.Request.Context(), &service.ImportRequest{
		Filename:   file.Filename,
		Data:       data,
		Chapter:    ctx.PostForm("chapter"),
		Difficulty: util.ParseIntDefault(ctx.PostForm("difficulty"), c.Cfg.DefaultDifficulty),
		Source:     model.ImportSourceUpload,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
