package controller

import (
	"interview_admin_backend/internal/service"
	"interview_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// @Summary 管理端总览
// @Description 各项计数与均分实时计算，不读缓存列
// @Tags 总览
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	dashboard, err := c.Service.GetDashboard()
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}
