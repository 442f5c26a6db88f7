package controller

import (
	"errors"
	"habit_tracker_backend/internal/model"
	"habit_tracker_backend/internal/service"
	"habit_tracker_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	LogService  *service.LogService
	IsRelease   bool // 是否为生产环境
}

func NewAuthController(authService *service.AuthService, logService *service.LogService, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		LogService:  logService,
		IsRelease:   isRelease,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register godoc
// @Summary 注册新用户
// @Description 使用邮箱和密码注册新用户
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Email:    req.Email,
		Password: req.Password,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, 409, "该邮箱已被注册")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	token, err := util.GenerateJWT(user, c.AuthService.Cfg.JWT.Secret, c.AuthService.Cfg.JWT.ExpireTime)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.setAuthCookie(ctx, token)

	util.Created(ctx, gin.H{"id": user.ID, "email": user.Email, "token": token})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户身份并返回JWT令牌，同时写入HttpOnly Cookie
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户登录凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	c.setAuthCookie(ctx, token)
	util.Success(ctx, gin.H{"token": token})
}

// Logout godoc
// @Summary 退出登录
// @Description 清除认证Cookie
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response "成功"
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie("token", "", -1, "/", "", c.IsRelease, true)
	util.Success(ctx, gin.H{"message": "logged out"})
}

// GetProfile godoc
// @Summary 获取当前用户资料
// @Description 获取当前已认证用户的个人资料和今日打卡状态
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	// 今日是否已有打卡记录
	todayLog, err := c.LogService.GetLogByDate(user.ID, time.Now())
	hasLoggedToday := err == nil && todayLog != nil

	profile := gin.H{
		"id":             user.ID,
		"email":          user.Email,
		"createdAt":      user.CreatedAt,
		"hasLoggedToday": hasLoggedToday,
	}

	util.Success(ctx, profile)
}

func (c *AuthController) setAuthCookie(ctx *gin.Context, token string) {
	maxAge := int(c.AuthService.Cfg.JWT.ExpireTime / time.Second)
	ctx.SetCookie("token", token, maxAge, "/", "", c.IsRelease, true)
}
