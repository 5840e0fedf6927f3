package controller

import (
	"net/http"
	"os"

	"interview_warmup_backend/internal/config"

	"github.com/gin-gonic/gin"
)

// HealthController 存活与就绪探针
type HealthController struct {
	Config *config.Config
}

func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{Config: cfg}
}

// Health godoc
// @Summary 健康检查
// @Description 就绪条件：题库目录可读
// @Tags 系统
// @Produce  json
// @Success 200 {object} map[string]string "正常"
// @Failure 503 {object} map[string]string "题库目录不可读"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if _, err := os.ReadDir(c.Config.Questions.Dir); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"reason": "question catalog directory unreadable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
