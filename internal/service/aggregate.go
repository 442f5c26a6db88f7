package service

import (
	"fmt"
	"habit_tracker_backend/internal/model"
	"math"
	"time"
)

// WeekBounds 计算 (year, weekNumber) 对应的周窗口：
// 周起点是 1月1日 + (week-1)*7 天所在周的周日（本地零点），
// 终点是起点后第 6 天的 23:59:59.999。
// 注意这是以周日为锚的历史口径，不是 ISO-8601 的周一制。
func WeekBounds(year, week int) (time.Time, time.Time) {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	start := jan1.AddDate(0, 0, (week-1)*7-int(jan1.Weekday()))
	endDay := start.AddDate(0, 0, 6)
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, int(999*time.Millisecond), endDay.Location())
	return start, end
}

// SundayOnOrBefore 返回给定日期所在周的周日（周锚）
func SundayOnOrBefore(t time.Time) time.Time {
	day := Midnight(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// AggregateWeek 汇总一周的记录。
// 学习时长三个来源相互独立：完成的刷题时长、学习时长（>0 即计）、完成的项目时长，
// 同一天可叠加计入 totalStudyTime。
func AggregateWeek(logs []model.DailyLog) model.WeekSummary {
	var summary model.WeekSummary

	for i := range logs {
		log := &logs[i]

		if log.DsaDone && log.DsaType == model.DSANew {
			summary.TotalDsaProblems += log.DsaCount
		}
		if log.DsaDone && log.DsaType == model.DSARevision {
			summary.TotalRevisionProblems += log.DsaCount
		}
		if log.DsaDone {
			summary.TotalStudyTime += log.DsaTime
		}
		if log.LearningTime > 0 {
			summary.TotalStudyTime += log.LearningTime
		}
		if log.ProjectDone {
			summary.TotalStudyTime += log.ProjectTime
		}
		if log.GymDone {
			summary.GymDays++
		}
		if log.MeditationDone {
			summary.MeditationDays++
		}
	}

	return summary
}

// DaysInMonth 当月天数（28-31）
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// MonthBounds 当月第一天零点到最后一天 23:59:59.999
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := DaysInMonth(year, month)
	end := time.Date(year, time.Month(month), last, 23, 59, 59, int(999*time.Millisecond), time.Local)
	return start, end
}

// dayIntensity 当天满足的分类数，0-5
func dayIntensity(log *model.DailyLog) int {
	intensity := 0
	if log.DsaDone {
		intensity++
	}
	if log.MeditationDone {
		intensity++
	}
	if log.GymDone {
		intensity++
	}
	if LearningActive(log) {
		intensity++
	}
	if log.ProjectDone {
		intensity++
	}
	return intensity
}

// BuildMonthReport 生成月度报表：逐日热力图、以周日为锚的周桶（新题数）、
// 以及月度坚持率 round(100 × 活跃天数 / 当月天数)。
func BuildMonthReport(logs []model.DailyLog, year, month int) model.MonthReport {
	index := BuildLogIndex(logs)
	daysInMonth := DaysInMonth(year, month)

	heatmap := make([]model.HeatmapCell, 0, daysInMonth)
	activeDays := 0
	for day := 1; day <= daysInMonth; day++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, month, day)

		intensity := 0
		if log, ok := index[key]; ok {
			intensity = dayIntensity(log)
		}
		if intensity > 0 {
			activeDays++
		}

		heatmap = append(heatmap, model.HeatmapCell{Day: day, Intensity: intensity})
	}

	monthStart, monthEnd := MonthBounds(year, month)
	weekly := make([]model.WeeklyBucket, 0, 6)

	// 从当月 1 号所在周的周日开始，周起点不超过月末即继续
	for weekStart := SundayOnOrBefore(monthStart); !weekStart.After(monthEnd); weekStart = weekStart.AddDate(0, 0, 7) {
		weekEnd := weekStart.AddDate(0, 0, 6)

		problems := 0
		for i := range logs {
			day := Midnight(logs[i].Date)
			if day.Before(weekStart) || day.After(weekEnd) {
				continue
			}
			if logs[i].DsaDone && logs[i].DsaType == model.DSANew {
				problems += logs[i].DsaCount
			}
		}

		label := fmt.Sprintf("%d/%d - %d/%d", weekStart.Day(), int(weekStart.Month()), weekEnd.Day(), int(weekEnd.Month()))
		weekly = append(weekly, model.WeeklyBucket{Week: label, Problems: problems})
	}

	consistency := int(math.Round(float64(activeDays) / float64(daysInMonth) * 100))

	return model.MonthReport{
		Logs:                  logs,
		HeatmapData:           heatmap,
		WeeklyDsaData:         weekly,
		ConsistencyPercentage: consistency,
	}
}
