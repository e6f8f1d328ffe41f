package controller

import (
	"edupulse_backend/internal/service"
	"edupulse_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// StartQuiz godoc
// @Summary 开始测验
// @Description 返回题目（不含答案）并记录 quiz_start 事件
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   quizId path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz} "Success"
// @Failure 404 {object} util.Response "Not Found"
// @Router /api/quizzes/{quizId}/start [post]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID := util.MustParseUint(ctx.Param("quizId"))
	if quizID == 0 {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	quiz, err := c.QuizService.StartQuiz(user.UserID, ctx.GetHeader("X-Session-ID"), quizID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// SubmitQuizRequest defines model for quiz submission
// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary 提交测验
// @Description 服务端判分，落库成绩并记录 quiz_complete 事件
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   quizId path int true "测验ID"
// @Param   body body SubmitQuizRequest true "按题目顺序的选项下标"
// @Success 200 {object} util.Response{data=model.QuizResult} "Success"
// @Failure 400 {object} util.Response "Bad Request"
// @Failure 404 {object} util.Response "Not Found"
// @Router /api/quizzes/{quizId}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID := util.MustParseUint(ctx.Param("quizId"))
	if quizID == 0 {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuiz(user.UserID, ctx.GetHeader("X-Session-ID"), quizID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAnswerCount):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
