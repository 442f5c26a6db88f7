package controller

import (
	"habit_tracker_backend/internal/model"
	"habit_tracker_backend/internal/service"
	"habit_tracker_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	LogService *service.LogService
}

func NewLogController(logService *service.LogService) *LogController {
	return &LogController{LogService: logService}
}

// swagger:model SaveLogRequest
type SaveLogRequest struct {
	Date string `json:"date" binding:"required"`
	model.DailyLogPatch
}

// SaveLog godoc
// @Summary 保存某天的打卡记录
// @Description 创建或更新指定日期的记录；请求里未出现的字段保持原值
// @Tags 打卡
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SaveLogRequest true "打卡数据"
// @Success 200 {object} util.Response{data=model.DailyLog} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/logs [post]
func (c *LogController) SaveLog(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SaveLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	date, err := util.ParseDay(req.Date)
	if err != nil {
		util.BadRequest(ctx, "invalid date format, expected YYYY-MM-DD")
		return
	}

	log, err := c.LogService.SaveLog(ctx.Request.Context(), user.UserID, date, &req.DailyLogPatch)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"log": log})
}

// GetLogByDate godoc
// @Summary 获取某天的打卡记录
// @Description 没有记录时返回 null，不算错误
// @Tags 打卡
// @Produce  json
// @Security ApiKeyAuth
// @Param   date path string true "日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "日期格式错误"
// @Router /api/logs/{date} [get]
func (c *LogController) GetLogByDate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	date, err := util.ParseDay(ctx.Param("date"))
	if err != nil {
		util.BadRequest(ctx, "invalid date format, expected YYYY-MM-DD")
		return
	}

	log, err := c.LogService.GetLogByDate(user.UserID, date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"log": log})
}

// GetWeekLogs godoc
// @Summary 获取某周的记录和汇总
// @Description 周窗口以周日为起点，weekNumber 取值 1-53
// @Tags 打卡
// @Produce  json
// @Security ApiKeyAuth
// @Param   year path int true "年份"
// @Param   weekNumber path int true "周序号 1-53"
// @Success 200 {object} util.Response{data=model.WeekReport} "成功"
// @Failure 400 {object} util.Response "参数错误"
// @Router /api/logs/week/{year}/{weekNumber} [get]
func (c *LogController) GetWeekLogs(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		util.BadRequest(ctx, "invalid year")
		return
	}
	week, err := strconv.Atoi(ctx.Param("weekNumber"))
	if err != nil || week < 1 || week > 53 {
		util.BadRequest(ctx, "invalid week number")
		return
	}

	report, err := c.LogService.GetWeekReport(ctx.Request.Context(), user.UserID, year, week)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// GetMonthLogs godoc
// @Summary 获取某月的热力图和周统计
// @Description 返回逐日强度、按周的新题数和月度坚持率
// @Tags 打卡
// @Produce  json
// @Security ApiKeyAuth
// @Param   year path int true "年份"
// @Param   month path int true "月份 1-12"
// @Success 200 {object} util.Response{data=model.MonthReport} "成功"
// @Failure 400 {object} util.Response "参数错误"
// @Router /api/logs/month/{year}/{month} [get]
func (c *LogController) GetMonthLogs(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		util.BadRequest(ctx, "invalid year")
		return
	}
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil || month < 1 || month > 12 {
		util.BadRequest(ctx, "invalid month")
		return
	}

	report, err := c.LogService.GetMonthReport(ctx.Request.Context(), user.UserID, year, month)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// GetStreaks godoc
// @Summary 获取当前连续打卡天数
// @Description 截至今天的四个分类连续天数；今天没有记录则为 0
// @Tags 打卡
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.StreakSet} "成功"
// @Router /api/streaks [get]
func (c *LogController) GetStreaks(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	streaks, err := c.LogService.GetStreaks(user.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, streaks)
}
