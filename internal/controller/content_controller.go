package controller

import (
	"edupulse_backend/internal/model"
	"edupulse_backend/internal/repository"
	"edupulse_backend/internal/service"
	"edupulse_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// GetContent godoc
// @Summary 获取课程目录
// @Description 公开接口，按前端约定返回 {success, content}
// @Tags 内容
// @Accept  json
// @Produce  json
// @Param   category query string false "分类"
// @Param   level query string false "难度"
// @Param   type query string false "课程类型" Enums(text, video, quiz)
// @Param   search query string false "标题/描述搜索"
// @Success 200 {object} object "{success, content}"
// @Router /api/content [get]
func (c *ContentController) GetContent(ctx *gin.Context) {
	filter := repository.CourseFilter{
		Category: ctx.Query("category"),
		Level:    ctx.Query("level"),
		Type:     ctx.Query("type"),
		Search:   ctx.Query("search"),
	}

	courses, err := c.ContentService.GetCourses(ctx.Request.Context(), filter)
	if err != nil {
		// 失败时也返回约定形状，前端靠 success 字段展示重试入口
		ctx.JSON(http.StatusOK, gin.H{
			"success": false,
			"content": []model.Course{},
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"content": courses,
	})
}

// GetCourse godoc
// @Summary 获取单个课程详情
// @Tags 内容
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course} "Success"
// @Failure 404 {object} util.Response "Not Found"
// @Router /api/courses/{id} [get]
func (c *ContentController) GetCourse(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))
	if courseID == 0 {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.ContentService.GetCourse(courseID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, course)
}

// CreateCourseRequest defines model for course creation
// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required,oneof=text video quiz"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Tags        []string `json:"tags"`
	Duration    int      `json:"duration"`
}

// CreateCourse godoc
// @Summary 新建课程（教师/管理员）
// @Tags 内容
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateCourseRequest true "课程信息"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/teacher/courses [post]
func (c *ContentController) CreateCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Type:        model.CourseType(req.Type),
		Category:    req.Category,
		Level:       req.Level,
		Tags:        model.StringList(req.Tags),
		Duration:    req.Duration,
		UploaderID:  user.UserID,
	}

	if err := c.ContentService.CreateCourse(ctx.Request.Context(), course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": course.ID})
}

// UploadCourseVideo godoc
// @Summary 上传课程视频（教师/管理员）
// @Description 接收视频文件，探测时长并生成缩略图
// @Tags 内容
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Param   file formData file true "视频文件"
// @Success 200 {object} util.Response{data=model.Course} "Success"
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/teacher/courses/{id}/video [post]
func (c *ContentController) UploadCourseVideo(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))
	if courseID == 0 {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "File is required")
		return
	}

	course, err := c.ContentService.UploadCourseVideo(ctx.Request.Context(), courseID, file)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, course)
}

// GetVideoPlayback godoc
// @Summary 获取课程视频播放地址
// @Tags 内容
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 404 {object} util.Response "Not Found"
// @Router /api/courses/{id}/video [get]
func (c *ContentController) GetVideoPlayback(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))
	if courseID == 0 {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	url, err := c.ContentService.GetVideoPlayback(courseID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
