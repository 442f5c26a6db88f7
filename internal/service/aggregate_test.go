package service

import (
	"habit_tracker_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekBoundsSundayAnchor(t *testing.T) {
	// 2024-01-01 是周一，第 11 周的窗口是 3月10日(周日)到 3月16日(周六)
	start, end := WeekBounds(2024, 11)

	assert.Equal(t, day(2024, time.March, 10), start)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, 16, end.Day())
	assert.Equal(t, time.March, end.Month())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
}

func TestWeekBoundsSpanIsSevenDays(t *testing.T) {
	for week := 1; week <= 53; week++ {
		start, end := WeekBounds(2024, week)
		assert.Equal(t, time.Sunday, start.Weekday())
		assert.Equal(t, start.AddDate(0, 0, 6).Day(), end.Day())
	}
}

func TestSundayOnOrBefore(t *testing.T) {
	// 2024-03-13 是周三
	assert.Equal(t, day(2024, time.March, 10), SundayOnOrBefore(day(2024, time.March, 13)))
	// 周日本身不动
	assert.Equal(t, day(2024, time.March, 10), SundayOnOrBefore(day(2024, time.March, 10)))
}

func TestAggregateWeekSeparatesNewAndRevision(t *testing.T) {
	logs := []model.DailyLog{
		{Date: day(2024, time.March, 12), DsaDone: true, DsaType: model.DSARevision, DsaCount: 3},
	}

	summary := AggregateWeek(logs)
	assert.Equal(t, 0, summary.TotalDsaProblems)
	assert.Equal(t, 3, summary.TotalRevisionProblems)
}

func TestAggregateWeekStudyTimeSourcesAreIndependent(t *testing.T) {
	logs := []model.DailyLog{
		{
			Date:         day(2024, time.March, 11),
			DsaDone:      true,
			DsaType:      model.DSANew,
			DsaCount:     2,
			DsaTime:      60,
			LearningTime: 30,
			ProjectDone:  true,
			ProjectTime:  45,
		},
		{
			Date:        day(2024, time.March, 12),
			DsaTime:     90, // 未完成，不计
			ProjectTime: 20, // 未完成，不计
		},
	}

	summary := AggregateWeek(logs)
	assert.Equal(t, 135, summary.TotalStudyTime)
}

func TestAggregateWeekCountsDays(t *testing.T) {
	logs := []model.DailyLog{
		{Date: day(2024, time.March, 10), GymDone: true, MeditationDone: true},
		{Date: day(2024, time.March, 11), GymDone: true},
		{Date: day(2024, time.March, 12), MeditationDone: true},
	}

	summary := AggregateWeek(logs)
	assert.Equal(t, 2, summary.GymDays)
	assert.Equal(t, 2, summary.MeditationDays)
}

func TestAggregateWeekMonotonicInNewProblems(t *testing.T) {
	logs := []model.DailyLog{
		{Date: day(2024, time.March, 11), DsaDone: true, DsaType: model.DSANew, DsaCount: 4},
	}
	before := AggregateWeek(logs)

	logs = append(logs, model.DailyLog{
		Date: day(2024, time.March, 12), DsaDone: true, DsaType: model.DSANew, DsaCount: 5,
	})
	after := AggregateWeek(logs)

	assert.Equal(t, before.TotalDsaProblems+5, after.TotalDsaProblems)
	assert.Equal(t, before.TotalRevisionProblems, after.TotalRevisionProblems)
}

func TestAggregateWeekIdempotent(t *testing.T) {
	logs := []model.DailyLog{
		{Date: day(2024, time.March, 11), DsaDone: true, DsaType: model.DSANew, DsaCount: 2, DsaTime: 40},
		{Date: day(2024, time.March, 12), GymDone: true, LearningTime: 25},
	}

	assert.Equal(t, AggregateWeek(logs), AggregateWeek(logs))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 2)) // 闰年
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
	assert.Equal(t, 30, DaysInMonth(2024, 4))
}

func TestBuildMonthReportConsistencyRounds(t *testing.T) {
	// 2024年2月有29天，5个活跃天 → round(100*5/29) = 17
	logs := make([]model.DailyLog, 0, 5)
	for d := 1; d <= 5; d++ {
		logs = append(logs, model.DailyLog{Date: day(2024, time.February, d), DsaDone: true})
	}

	report := BuildMonthReport(logs, 2024, 2)
	assert.Equal(t, 17, report.ConsistencyPercentage)
}

func TestBuildMonthReportHeatmap(t *testing.T) {
	logs := []model.DailyLog{
		{
			Date:           day(2024, time.February, 3),
			DsaDone:        true,
			MeditationDone: true,
			GymDone:        true,
			LearningNotes:  "goroutine 泄漏排查",
			ProjectDone:    true,
		},
		{Date: day(2024, time.February, 10), MeditationDone: true},
		{Date: day(2024, time.February, 15), LearningNotes: "   "}, // 空白笔记不算活跃
	}

	report := BuildMonthReport(logs, 2024, 2)
	require.Len(t, report.HeatmapData, 29)

	for _, cell := range report.HeatmapData {
		assert.GreaterOrEqual(t, cell.Intensity, 0)
		assert.LessOrEqual(t, cell.Intensity, 5)
	}
	assert.Equal(t, 5, report.HeatmapData[2].Intensity)
	assert.Equal(t, 1, report.HeatmapData[9].Intensity)
	assert.Equal(t, 0, report.HeatmapData[14].Intensity)
	assert.Equal(t, 0, report.HeatmapData[0].Intensity)
}

func TestBuildMonthReportWeeklyBuckets(t *testing.T) {
	logs := []model.DailyLog{
		{Date: day(2024, time.February, 5), DsaDone: true, DsaType: model.DSANew, DsaCount: 4},
		{Date: day(2024, time.February, 6), DsaDone: true, DsaType: model.DSARevision, DsaCount: 9},
		{Date: day(2024, time.February, 13), DsaDone: true, DsaType: model.DSANew, DsaCount: 2},
	}

	report := BuildMonthReport(logs, 2024, 2)

	// 2024-02-01 是周四，所在周的周日是 1月28日；共 5 个周桶覆盖整月
	require.Len(t, report.WeeklyDsaData, 5)
	assert.Equal(t, "28/1 - 3/2", report.WeeklyDsaData[0].Week)
	assert.Equal(t, "4/2 - 10/2", report.WeeklyDsaData[1].Week)
	assert.Equal(t, 4, report.WeeklyDsaData[1].Problems) // 复习题不计入
	assert.Equal(t, 2, report.WeeklyDsaData[2].Problems)
	assert.Equal(t, "25/2 - 2/3", report.WeeklyDsaData[4].Week)
}

func TestBuildMonthReportEmptyMonth(t *testing.T) {
	report := BuildMonthReport(nil, 2024, 4)

	assert.Equal(t, 0, report.ConsistencyPercentage)
	require.Len(t, report.HeatmapData, 30)
	for _, cell := range report.HeatmapData {
		assert.Equal(t, 0, cell.Intensity)
	}
}
