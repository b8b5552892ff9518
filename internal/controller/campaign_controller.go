package controller

import (
	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/service"
	"interview_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CampaignController struct {
	Service *service.CampaignService
	Stats   *service.StatsService
}

func NewCampaignController(svc *service.CampaignService, stats *service.StatsService) *CampaignController {
	return &CampaignController{Service: svc, Stats: stats}
}

// @Summary 创建招聘活动
// @Tags 招聘活动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CampaignRequest true "活动信息"
// @Success 201 {object} util.Response
// @Router /api/admin/campaigns [post]
func (c *CampaignController) Create(ctx *gin.Context) {
	var req service.CampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	createdBy := ""
	if user := util.GetUserFromContext(ctx); user != nil {
		createdBy = user.Email
	}

	campaign, err := c.Service.Create(req, createdBy)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, campaign)
}

// @Summary 活动列表
// @Description 计数字段为实时重算结果
// @Tags 招聘活动
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/admin/campaigns [get]
func (c *CampaignController) List(ctx *gin.Context) {
	page := util.MustParseInt(ctx.DefaultQuery("page", "1"))
	limit := util.MustParseInt(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	campaigns, total, err := c.Service.List(page, limit)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  campaigns,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 活动详情
// @Tags 招聘活动
// @Produce json
// @Security BearerAuth
// @Param id path string true "活动ID"
// @Success 200 {object} util.Response
// @Router /api/admin/campaigns/{id} [get]
func (c *CampaignController) Get(ctx *gin.Context) {
	campaign, err := c.Service.GetWithStats(ctx.Param("id"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, campaign)
}

// @Summary 活动实时统计
// @Tags 招聘活动
// @Produce json
// @Security BearerAuth
// @Param id path string true "活动ID"
// @Success 200 {object} util.Response
// @Router /api/admin/campaigns/{id}/stats [get]
func (c *CampaignController) GetStats(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.Service.Get(id); err != nil {
		util.FromError(ctx, err)
		return
	}
	stats, err := c.Stats.StatsFor(id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 更新活动
// @Tags 招聘活动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "活动ID"
// @Param body body service.CampaignRequest true "活动信息"
// @Success 200 {object} util.Response
// @Router /api/admin/campaigns/{id} [put]
func (c *CampaignController) Update(ctx *gin.Context) {
	var req service.CampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	campaign, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, campaign)
}

type campaignStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary 变更活动状态
// @Description 进入 active 前重跑题集一致性校验
// @Tags 招聘活动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "活动ID"
// @Param body body campaignStatusRequest true "目标状态"
// @Success 200 {object} util.Response
// @Router /api/admin/campaigns/{id}/status [patch]
func (c *CampaignController) UpdateStatus(ctx *gin.Context) {
	var req campaignStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	campaign, err := c.Service.UpdateStatus(ctx.Param("id"), model.CampaignStatus(req.Status))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, campaign)
}

// @Summary 删除活动
// @Tags 招聘活动
// @Produce json
// @Security BearerAuth
// @Param id path string true "活动ID"
// @Success 200 {object} util.Response
// @Router /api/admin/campaigns/{id} [delete]
func (c *CampaignController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
