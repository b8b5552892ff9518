package controller

import (
	"interview_admin_backend/internal/service"
	"interview_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// @Summary 管理员登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body service.AdminLoginRequest true "登录信息"
// @Success 200 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req service.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.Service.AdminLogin(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// @Summary 候选人登录
// @Description 使用邮箱和临时口令登录，仅 active 状态的活动可登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body service.CandidateLoginRequest true "登录信息"
// @Success 200 {object} util.Response
// @Router /api/auth/candidate [post]
func (c *AuthController) CandidateLogin(ctx *gin.Context) {
	var req service.CandidateLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.Service.CandidateLogin(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// @Summary 当前登录身份
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, gin.H{
		"id":    user.UserID,
		"email": user.Email,
		"role":  user.Role,
	})
}
