package controller

import (
	"edupulse_backend/internal/service"
	"edupulse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	StatsService *service.StatsService
}

func NewDashboardController(statsService *service.StatsService) *DashboardController {
	return &DashboardController{StatsService: statsService}
}

// GetDashboard godoc
// @Summary 获取仪表盘统计
// @Description 从用户的完整点击流日志推导汇总指标（课程数、学习时长、连续天数、称号等）
// @Tags 仪表盘
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.DerivedStatistics} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	// 读取失败在服务层降级为默认统计，这里不会拿到错误
	stats := c.StatsService.GetUserStatistics(user.UserID)

	util.Success(ctx, stats)
}
