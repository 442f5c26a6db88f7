package controller

import (
	"habit_tracker_backend/internal/service"
	"habit_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	MotivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{MotivationService: motivationService}
}

// @Summary 获取当前激励短句
// @Description 获取当前轮换到的每日激励短句
// @Tags 激励语
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/motivation [get]
func (c *MotivationController) GetCurrentMotivation(ctx *gin.Context) {
	content, err := c.MotivationService.GetCurrentMotivation()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"content": content})
}
