package service

import (
	"habit_tracker_backend/internal/model"
)

// NormalizeLog 把可能不完整的记录补全为各分类的默认形态：
// 枚举为空时回落到默认值，数值不允许为负。纯函数，不访问存储。
func NormalizeLog(log *model.DailyLog) *model.DailyLog {
	if log.DsaType == "" {
		log.DsaType = model.DSANew
	}
	if log.GymType == "" {
		log.GymType = model.GymDumbbells
	}

	if log.DsaCount < 0 {
		log.DsaCount = 0
	}
	if log.DsaTime < 0 {
		log.DsaTime = 0
	}
	if log.MeditationTime < 0 {
		log.MeditationTime = 0
	}
	if log.GymTime < 0 {
		log.GymTime = 0
	}
	if log.LearningTime < 0 {
		log.LearningTime = 0
	}
	if log.ProjectTime < 0 {
		log.ProjectTime = 0
	}

	return log
}

// NormalizeLogs 就地规范化一批记录
func NormalizeLogs(logs []model.DailyLog) []model.DailyLog {
	for i := range logs {
		NormalizeLog(&logs[i])
	}
	return logs
}
