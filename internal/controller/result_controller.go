package controller

import (
	"interview_admin_backend/internal/service"
	"interview_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	Ranking *service.RankingService
}

func NewResultController(ranking *service.RankingService) *ResultController {
	return &ResultController{Ranking: ranking}
}

// @Summary 面试结果排行
// @Description 仅统计已完成的候选人，名次在读取时重算；过滤不改变名次
// @Tags 结果
// @Produce json
// @Security BearerAuth
// @Param campaignId query string false "活动ID，空为全局榜"
// @Param status query string false "passed 或 failed"
// @Param search query string false "姓名/邮箱搜索"
// @Success 200 {object} util.Response
// @Router /api/admin/results [get]
func (c *ResultController) List(ctx *gin.Context) {
	q := service.RankingQuery{
		CampaignID:   ctx.Query("campaignId"),
		StatusFilter: ctx.Query("status"),
		Search:       ctx.Query("search"),
	}
	if q.StatusFilter != "" && q.StatusFilter != "passed" && q.StatusFilter != "failed" {
		util.BadRequest(ctx, "status must be passed or failed")
		return
	}

	results, summary, err := c.Ranking.Rank(q)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"results": results,
		"summary": summary,
	})
}
