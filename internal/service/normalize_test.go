package service

import (
	"habit_tracker_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLogFillsEnumDefaults(t *testing.T) {
	log := &model.DailyLog{Date: day(2024, time.March, 1)}

	NormalizeLog(log)

	assert.Equal(t, model.DSANew, log.DsaType)
	assert.Equal(t, model.GymDumbbells, log.GymType)
}

func TestNormalizeLogKeepsExplicitEnums(t *testing.T) {
	log := &model.DailyLog{
		DsaType: model.DSARevision,
		GymType: model.GymShoulders,
	}

	NormalizeLog(log)

	assert.Equal(t, model.DSARevision, log.DsaType)
	assert.Equal(t, model.GymShoulders, log.GymType)
}

func TestNormalizeLogClampsNegativeNumbers(t *testing.T) {
	log := &model.DailyLog{
		DsaCount:       -1,
		DsaTime:        -30,
		MeditationTime: -5,
		GymTime:        -90,
		LearningTime:   -10,
		ProjectTime:    -60,
	}

	NormalizeLog(log)

	assert.Equal(t, 0, log.DsaCount)
	assert.Equal(t, 0, log.DsaTime)
	assert.Equal(t, 0, log.MeditationTime)
	assert.Equal(t, 0, log.GymTime)
	assert.Equal(t, 0, log.LearningTime)
	assert.Equal(t, 0, log.ProjectTime)
}

func TestNormalizeLogKeepsValidValues(t *testing.T) {
	log := &model.DailyLog{
		DsaDone:       true,
		DsaType:       model.DSANew,
		DsaCount:      5,
		DsaTime:       120,
		GymType:       model.GymPushPull,
		LearningNotes: "分布式锁笔记",
		LearningTime:  40,
	}

	NormalizeLog(log)

	assert.Equal(t, 5, log.DsaCount)
	assert.Equal(t, 120, log.DsaTime)
	assert.Equal(t, model.GymPushPull, log.GymType)
	assert.Equal(t, "分布式锁笔记", log.LearningNotes)
	assert.Equal(t, 40, log.LearningTime)
}

func TestNormalizeLogsInPlace(t *testing.T) {
	logs := []model.DailyLog{
		{DsaCount: -3},
		{GymType: model.GymShoulders, MeditationTime: -1},
	}

	out := NormalizeLogs(logs)

	assert.Equal(t, 0, logs[0].DsaCount)
	assert.Equal(t, model.DSANew, logs[0].DsaType)
	assert.Equal(t, model.GymShoulders, logs[1].GymType)
	assert.Equal(t, 0, logs[1].MeditationTime)
	assert.Equal(t, &logs[0], &out[0])
}
