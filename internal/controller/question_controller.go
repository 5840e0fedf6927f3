package controller

import (
	"errors"
	"net/http"
	"strconv"

	"interview_warmup_backend/internal/service"
	"interview_warmup_backend/internal/util"
	"interview_warmup_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuestionController 处理题库相关的HTTP请求
type QuestionController struct {
	QuestionService *service.QuestionService
	DefaultCount    int
}

func NewQuestionController(questionService *service.QuestionService, defaultCount int) *QuestionController {
	if defaultCount <= 0 {
		defaultCount = service.DefaultSampleSize
	}
	return &QuestionController{
		QuestionService: questionService,
		DefaultCount:    defaultCount,
	}
}

// GetQuestions godoc
// @Summary 按岗位抽取面试题
// @Description 从指定岗位的题库中无放回随机抽取若干题目，题库不足时整库乱序返回
// @Tags 题库
// @Produce  json
// @Param   position query string true "岗位名称"
// @Param   count query int false "抽题数量" default(5)
// @Success 200 {array} model.Question "题目数组"
// @Failure 400 {object} map[string]string "缺少岗位参数"
// @Failure 404 {object} map[string]string "岗位不存在"
// @Failure 500 {object} map[string]string "题库读取失败"
// @Router /api/questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	// 历史客户端依赖裸 {"error": ...} 响应形状，这里不走统一信封
	position := ctx.Query("position")
	if position == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Position is required"})
		return
	}

	count, err := strconv.Atoi(ctx.DefaultQuery("count", strconv.Itoa(c.DefaultCount)))
	if err != nil || count <= 0 {
		count = c.DefaultCount
	}

	sample, err := c.QuestionService.FetchSample(position, count)
	if err != nil {
		if errors.Is(err, util.ErrPositionNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Position not found"})
			return
		}
		logger.Log.Error("题库读取失败", zap.String("position", position), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load questions"})
		return
	}

	ctx.JSON(http.StatusOK, sample)
}

// GetPositions godoc
// @Summary 列出全部可选岗位
// @Tags 题库
// @Produce  json
// @Success 200 {object} util.Response{data=[]string} "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/positions [get]
func (c *QuestionController) GetPositions(ctx *gin.Context) {
	positions, err := c.QuestionService.Positions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, positions)
}
