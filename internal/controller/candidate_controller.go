package controller

import (
	"interview_admin_backend/internal/service"
	"interview_admin_backend/internal/util"
	"interview_admin_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type CandidateController struct {
	Service   *service.CandidateService
	Scoring   *service.ScoringService
	Storage   *service.StorageService
	Questions *service.QuestionService
}

func NewCandidateController(svc *service.CandidateService, scoring *service.ScoringService, storage *service.StorageService, questions *service.QuestionService) *CandidateController {
	return &CandidateController{
		Service:   svc,
		Scoring:   scoring,
		Storage:   storage,
		Questions: questions,
	}
}

// @Summary 添加候选人
// @Description 创建时即完成题目分配并生成一次性临时口令
// @Tags 候选人
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CandidateRequest true "候选人信息"
// @Success 201 {object} util.Response
// @Router /api/admin/candidates [post]
func (c *CandidateController) Create(ctx *gin.Context) {
	var req service.CandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	created, err := c.Service.Create(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, created)
}

// @Summary 候选人列表
// @Tags 候选人
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/admin/candidates [get]
func (c *CandidateController) List(ctx *gin.Context) {
	page := util.MustParseInt(ctx.DefaultQuery("page", "1"))
	limit := util.MustParseInt(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	list, total, err := c.Service.List(page, limit)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  list,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 候选人详情
// @Tags 候选人
// @Produce json
// @Security BearerAuth
// @Param id path string true "候选人ID"
// @Success 200 {object} util.Response
// @Router /api/admin/candidates/{id} [get]
func (c *CandidateController) Get(ctx *gin.Context) {
	candidate, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, candidate)
}

// @Summary 删除候选人
// @Tags 候选人
// @Produce json
// @Security BearerAuth
// @Param id path string true "候选人ID"
// @Success 200 {object} util.Response
// @Router /api/admin/candidates/{id} [delete]
func (c *CandidateController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 重置临时口令
// @Tags 候选人
// @Produce json
// @Security BearerAuth
// @Param id path string true "候选人ID"
// @Success 200 {object} util.Response
// @Router /api/admin/candidates/{id}/reset-password [post]
func (c *CandidateController) ResetPassword(ctx *gin.Context) {
	tempPassword, err := c.Service.ResetPassword(ctx.Param("id"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"tempPassword": tempPassword})
}

// @Summary 获取候选人题目集合
// @Description 首次调用完成分配并把状态推进到 in_progress，之后重复调用返回同一集合
// @Tags 候选人
// @Produce json
// @Security BearerAuth
// @Param id path string true "候选人ID"
// @Success 200 {object} util.Response
// @Router /api/candidates/{id}/questions [get]
func (c *CandidateController) GetAssignedQuestions(ctx *gin.Context) {
	set, err := c.Service.AssignedQuestions(ctx.Param("id"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, set)
}

// @Summary 提交面试答卷
// @Description 评分并标记完成，重复提交为幂等覆盖
// @Tags 候选人
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "候选人ID"
// @Param body body service.SubmissionRequest true "答卷"
// @Success 200 {object} util.Response
// @Router /api/candidates/{id}/submit [post]
func (c *CandidateController) Submit(ctx *gin.Context) {
	var req service.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Scoring.Submit(ctx.Param("id"), req)
	if err != nil {
		monitoring.SubmissionCounter.WithLabelValues("error").Inc()
		util.FromError(ctx, err)
		return
	}

	monitoring.SubmissionCounter.WithLabelValues(result.Status).Inc()
	util.Success(ctx, result)
}

// @Summary 上传答案附件
// @Description 仅 file_upload 题型，扩展名需在题目允许范围内
// @Tags 候选人
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "候选人ID"
// @Param questionId formData string true "题目ID"
// @Param file formData file true "附件"
// @Success 200 {object} util.Response
// @Router /api/candidates/{id}/answers/upload [post]
func (c *CandidateController) UploadAnswerFile(ctx *gin.Context) {
	candidateID := ctx.Param("id")
	questionID := ctx.PostForm("questionId")
	if questionID == "" {
		util.BadRequest(ctx, "questionId is required")
		return
	}

	if _, err := c.Service.Get(candidateID); err != nil {
		util.FromError(ctx, err)
		return
	}
	question, err := c.Questions.Get(questionID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.Storage.UploadAnswerFile(ctx.Request.Context(), question, candidateID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file, fileHeader.Size)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
