package controller

import (
	"errors"
	"net/http"

	"interview_warmup_backend/internal/service"
	"interview_warmup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthController 处理登录登出与用户信息
type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest 登录请求
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 登录并获取会话令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   request body LoginRequest true "登录凭证"
// @Success 200 {object} util.Response "令牌与用户信息"
// @Failure 400 {object} util.Response "请求格式错误"
// @Failure 401 {object} util.Response "凭证不正确"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "邮箱和密码不能为空")
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredential) {
			util.Error(ctx, http.StatusUnauthorized, "邮箱或密码不正确")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout godoc
// @Summary 退出登录
// @Description 令牌为无状态 JWT，服务端无需失效处理，客户端丢弃即可
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "成功"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	util.Success(ctx, nil)
}

// Profile godoc
// @Summary 当前登录用户信息
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "用户信息"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/user/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"name":  claims.Name,
		"email": claims.Email,
	})
}
