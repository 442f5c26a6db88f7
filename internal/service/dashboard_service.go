package service

import (
	"context"
	"habit_tracker_backend/internal/model"
	"time"
)

type DashboardService struct {
	LogService        *LogService
	MotivationService *MotivationService
}

func NewDashboardService(logService *LogService, motivationService *MotivationService) *DashboardService {
	return &DashboardService{
		LogService:        logService,
		MotivationService: motivationService,
	}
}

type Dashboard struct {
	TodayLog        *model.DailyLog   `json:"todayLog"`
	Streaks         model.StreakSet   `json:"streaks"`
	WeekSummary     model.WeekSummary `json:"weekSummary"`
	DailyMotivation string            `json:"dailyMotivation"`
}

// GetUserDashboard 汇总首页需要的数据：今日记录、连续天数、本周汇总、每日激励语
func (s *DashboardService) GetUserDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	today := Midnight(time.Now())

	todayLog, err := s.LogService.GetLogByDate(userID, today)
	if err != nil {
		return nil, err
	}
	if todayLog == nil {
		todayLog = model.NewDailyLog(userID, today)
	}

	streaks, err := s.LogService.GetStreaks(userID, today)
	if err != nil {
		return nil, err
	}

	// 本周窗口：今天所在周的周日到周六
	weekStart := SundayOnOrBefore(today)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-1 * time.Nanosecond)
	weekLogs, err := s.LogService.LogRepo.FindByUserInRange(userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	NormalizeLogs(weekLogs)

	dailyMotivation, err := s.MotivationService.GetCurrentMotivation()
	if err != nil || dailyMotivation == "" {
		dailyMotivation = "Consistency beats intensity. Show up today."
	}

	return &Dashboard{
		TodayLog:        todayLog,
		Streaks:         *streaks,
		WeekSummary:     AggregateWeek(weekLogs),
		DailyMotivation: dailyMotivation,
	}, nil
}
