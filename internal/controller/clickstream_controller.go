package controller

import (
	"edupulse_backend/internal/model"
	"edupulse_backend/internal/repository"
	"edupulse_backend/internal/service"
	"edupulse_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ClickstreamController struct {
	Tracker   *service.TrackerService
	EventRepo *repository.EventRepository
}

func NewClickstreamController(tracker *service.TrackerService, eventRepo *repository.EventRepository) *ClickstreamController {
	return &ClickstreamController{
		Tracker:   tracker,
		EventRepo: eventRepo,
	}
}

// TrackRequest 单条事件上报
// swagger:model TrackRequest
type TrackRequest struct {
	Action    model.ActionType   `json:"action" binding:"required"`
	Details   model.EventDetails `json:"details"`
	SessionID string             `json:"sessionId"`
}

// Track godoc
// @Summary 上报一条点击流事件
// @Description 记录一次用户交互，服务端生成事件ID和时间戳
// @Tags 点击流
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body TrackRequest true "事件内容"
// @Success 201 {object} util.Response{data=model.ClickstreamEvent} "Created"
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/clickstream [post]
func (c *ClickstreamController) Track(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req TrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.Tracker.Track(user.UserID, req.SessionID, req.Action, req.Details)
	if err != nil {
		if errors.Is(err, util.ErrInvalidAction) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalServerError(ctx)
		return
	}

	util.Created(ctx, event)
}

// BatchTrackRequest 批量事件上报
// swagger:model BatchTrackRequest
type BatchTrackRequest struct {
	SessionID string               `json:"sessionId"`
	Events    []service.EventInput `json:"events" binding:"required,min=1"`
}

// TrackBatch godoc
// @Summary 批量上报点击流事件
// @Description 一次写入多条事件，整体成功或整体失败
// @Tags 点击流
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body BatchTrackRequest true "事件列表"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/clickstream/batch [post]
func (c *ClickstreamController) TrackBatch(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req BatchTrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	events, err := c.Tracker.TrackBatch(user.UserID, req.SessionID, req.Events)
	if err != nil {
		if errors.Is(err, util.ErrInvalidAction) || errors.Is(err, util.ErrBatchTooLarge) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalServerError(ctx)
		return
	}

	util.Created(ctx, gin.H{"recorded": len(events)})
}

// GetUserEvents godoc
// @Summary 获取某用户的完整事件日志
// @Description 学生只能查自己的，教师和管理员可查任意用户
// @Tags 点击流
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "用户ID"
// @Success 200 {object} object "{success, data, totalActions}"
// @Router /api/clickstream/user/{id} [get]
func (c *ClickstreamController) GetUserEvents(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	targetID := util.MustParseUint(ctx.Param("id"))
	if targetID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if targetID != user.UserID && user.Role == model.Student {
		util.Forbidden(ctx)
		return
	}

	events, err := c.EventRepo.FindByUserID(targetID)
	if err != nil {
		// 采集查询接口沿用前端约定的响应形状
		ctx.JSON(http.StatusOK, gin.H{
			"success":      false,
			"data":         []model.ClickstreamEvent{},
			"totalActions": 0,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         events,
		"totalActions": len(events),
	})
}
