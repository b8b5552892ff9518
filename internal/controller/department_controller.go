package controller

import (
	"interview_admin_backend/internal/service"
	"interview_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DepartmentController struct {
	Service *service.DepartmentService
}

func NewDepartmentController(svc *service.DepartmentService) *DepartmentController {
	return &DepartmentController{Service: svc}
}

// @Summary 创建部门
// @Tags 部门
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.DepartmentRequest true "部门信息"
// @Success 201 {object} util.Response
// @Router /api/admin/departments [post]
func (c *DepartmentController) Create(ctx *gin.Context) {
	var req service.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	d, err := c.Service.Create(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, d)
}

// @Summary 部门列表
// @Tags 部门
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/departments [get]
func (c *DepartmentController) List(ctx *gin.Context) {
	ds, err := c.Service.List()
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, ds)
}

// @Summary 部门详情
// @Tags 部门
// @Produce json
// @Security BearerAuth
// @Param id path string true "部门ID"
// @Success 200 {object} util.Response
// @Router /api/admin/departments/{id} [get]
func (c *DepartmentController) Get(ctx *gin.Context) {
	d, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// @Summary 更新部门
// @Tags 部门
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "部门ID"
// @Param body body service.DepartmentRequest true "部门信息"
// @Success 200 {object} util.Response
// @Router /api/admin/departments/{id} [put]
func (c *DepartmentController) Update(ctx *gin.Context) {
	var req service.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	d, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// @Summary 删除部门
// @Description 仍被题目或活动引用的部门不可删除
// @Tags 部门
// @Produce json
// @Security BearerAuth
// @Param id path string true "部门ID"
// @Success 200 {object} util.Response
// @Router /api/admin/departments/{id} [delete]
func (c *DepartmentController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
