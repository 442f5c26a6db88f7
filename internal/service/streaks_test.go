package service

import (
	"habit_tracker_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func dsaLog(date time.Time) model.DailyLog {
	return model.DailyLog{
		UserID:  "u1",
		Date:    date,
		DsaDone: true,
		DsaType: model.DSANew,
	}
}

func TestComputeStreakConsecutiveDays(t *testing.T) {
	logs := []model.DailyLog{
		dsaLog(day(2024, time.March, 1)),
		dsaLog(day(2024, time.March, 2)),
		dsaLog(day(2024, time.March, 3)),
	}
	index := BuildLogIndex(logs)

	assert.Equal(t, 3, ComputeStreak(index, DSADone, day(2024, time.March, 3)))
}

func TestComputeStreakZeroWhenNoRecordToday(t *testing.T) {
	logs := []model.DailyLog{
		dsaLog(day(2024, time.March, 1)),
		dsaLog(day(2024, time.March, 2)),
		dsaLog(day(2024, time.March, 3)),
	}
	index := BuildLogIndex(logs)

	// 3月4日没有记录，之前的连续段不计
	assert.Equal(t, 0, ComputeStreak(index, DSADone, day(2024, time.March, 4)))
}

func TestComputeStreakZeroWhenTodayNotDone(t *testing.T) {
	logs := []model.DailyLog{
		dsaLog(day(2024, time.March, 1)),
		dsaLog(day(2024, time.March, 2)),
		{UserID: "u1", Date: day(2024, time.March, 3), DsaDone: false},
	}
	index := BuildLogIndex(logs)

	assert.Equal(t, 0, ComputeStreak(index, DSADone, day(2024, time.March, 3)))
}

func TestComputeStreakStopsAtGap(t *testing.T) {
	logs := []model.DailyLog{
		dsaLog(day(2024, time.March, 1)),
		// 3月2日缺失
		dsaLog(day(2024, time.March, 3)),
		dsaLog(day(2024, time.March, 4)),
	}
	index := BuildLogIndex(logs)

	assert.Equal(t, 2, ComputeStreak(index, DSADone, day(2024, time.March, 4)))
}

func TestComputeStreakExtendsByOneDay(t *testing.T) {
	logs := make([]model.DailyLog, 0, 11)
	start := day(2024, time.February, 20)
	for i := 0; i < 10; i++ {
		logs = append(logs, dsaLog(start.AddDate(0, 0, i)))
	}
	index := BuildLogIndex(logs)
	assert.Equal(t, 10, ComputeStreak(index, DSADone, day(2024, time.February, 29)))

	logs = append(logs, dsaLog(day(2024, time.March, 1)))
	index = BuildLogIndex(logs)
	assert.Equal(t, 11, ComputeStreak(index, DSADone, day(2024, time.March, 1)))
}

func TestComputeStreakIgnoresTimeOfDay(t *testing.T) {
	logs := []model.DailyLog{
		dsaLog(day(2024, time.March, 2)),
		dsaLog(time.Date(2024, time.March, 3, 14, 30, 0, 0, time.Local)),
	}
	index := BuildLogIndex(logs)

	asOf := time.Date(2024, time.March, 3, 23, 59, 0, 0, time.Local)
	assert.Equal(t, 2, ComputeStreak(index, DSADone, asOf))
}

func TestComputeStreakCappedAtMax(t *testing.T) {
	logs := make([]model.DailyLog, 0, maxStreakDays+30)
	asOf := day(2024, time.March, 1)
	for i := 0; i < maxStreakDays+30; i++ {
		logs = append(logs, dsaLog(asOf.AddDate(0, 0, -i)))
	}
	index := BuildLogIndex(logs)

	assert.Equal(t, maxStreakDays, ComputeStreak(index, DSADone, asOf))
}

func TestLearningActivePredicate(t *testing.T) {
	tests := []struct {
		name   string
		log    model.DailyLog
		active bool
	}{
		{"notes only", model.DailyLog{LearningNotes: "读完 context 源码"}, true},
		{"time only", model.DailyLog{LearningTime: 30}, true},
		{"whitespace notes no time", model.DailyLog{LearningNotes: "   \t\n"}, false},
		{"empty", model.DailyLog{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, LearningActive(&tt.log))
		})
	}
}

func TestComputeStreaksPerCategory(t *testing.T) {
	asOf := day(2024, time.March, 5)
	logs := []model.DailyLog{
		{UserID: "u1", Date: day(2024, time.March, 3), DsaDone: true, MeditationDone: true},
		{UserID: "u1", Date: day(2024, time.March, 4), DsaDone: true, MeditationDone: true, GymDone: true},
		{UserID: "u1", Date: day(2024, time.March, 5), DsaDone: true, GymDone: true, LearningTime: 45},
	}
	index := BuildLogIndex(logs)

	streaks := ComputeStreaks(index, asOf)
	assert.Equal(t, 3, streaks.Dsa)
	assert.Equal(t, 0, streaks.Meditation) // 当天未冥想
	assert.Equal(t, 2, streaks.Gym)
	assert.Equal(t, 1, streaks.Learning)
}

func TestBuildLogIndexLastWriteWins(t *testing.T) {
	d := day(2024, time.March, 3)
	logs := []model.DailyLog{
		{UserID: "u1", Date: d, DsaCount: 1},
		{UserID: "u1", Date: d, DsaCount: 7},
	}
	index := BuildLogIndex(logs)

	assert.Len(t, index, 1)
	assert.Equal(t, 7, index[DayKey(d)].DsaCount)
}
