package service

import (
	"habit_tracker_backend/internal/model"
	"strings"
	"time"
)

// maxStreakDays 连续打卡回溯的安全上限，防止脏数据或时钟异常导致死循环
const maxStreakDays = 3650

const dayLayout = "2006-01-02"

// LogIndex 按日历日索引的记录集合，键为 "YYYY-MM-DD"
type LogIndex map[string]*model.DailyLog

// BuildLogIndex 将记录列表建成按日索引；同一天出现多条时保留最后一条
func BuildLogIndex(logs []model.DailyLog) LogIndex {
	index := make(LogIndex, len(logs))
	for i := range logs {
		index[DayKey(logs[i].Date)] = &logs[i]
	}
	return index
}

// DayKey 返回记录所属日历日的索引键
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// Midnight 去掉时间部分，保留本地日历日
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LogPredicate 单个分类当天是否算作完成
type LogPredicate func(*model.DailyLog) bool

func DSADone(log *model.DailyLog) bool {
	return log.DsaDone
}

func MeditationDone(log *model.DailyLog) bool {
	return log.MeditationDone
}

func GymDone(log *model.DailyLog) bool {
	return log.GymDone
}

// LearningActive 学习没有 done 标记：有笔记（去空白后非空）或有时长即算
func LearningActive(log *model.DailyLog) bool {
	return strings.TrimSpace(log.LearningNotes) != "" || log.LearningTime > 0
}

// ComputeStreak 计算截至 asOf 当天的连续天数。
// asOf 当天没有记录或不满足条件时结果为 0，之前的连续段不计；
// 否则从 asOf 逐日回溯，遇到缺失或不满足的日子即停止。
func ComputeStreak(index LogIndex, pred LogPredicate, asOf time.Time) int {
	day := Midnight(asOf)
	streak := 0

	for i := 0; i < maxStreakDays; i++ {
		log, ok := index[DayKey(day)]
		if !ok || !pred(log) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// ComputeStreaks 一次计算四个分类的连续天数
func ComputeStreaks(index LogIndex, asOf time.Time) model.StreakSet {
	return model.StreakSet{
		Dsa:        ComputeStreak(index, DSADone, asOf),
		Meditation: ComputeStreak(index, MeditationDone, asOf),
		Gym:        ComputeStreak(index, GymDone, asOf),
		Learning:   ComputeStreak(index, LearningActive, asOf),
	}
}
