package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool      { return &b }
func intPtr(n int) *int         { return &n }
func strPtr(s string) *string   { return &s }
func dsaPtr(t DSAType) *DSAType { return &t }

func TestNewDailyLogDefaults(t *testing.T) {
	date := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.Local)
	log := NewDailyLog("u1", date)

	assert.Equal(t, "u1", log.UserID)
	assert.Equal(t, date, log.Date)
	assert.Equal(t, DSANew, log.DsaType)
	assert.Equal(t, GymDumbbells, log.GymType)
	assert.False(t, log.DsaDone)
	assert.Zero(t, log.DsaCount)
}

func TestPatchApplyOverwritesOnlyPresentFields(t *testing.T) {
	log := &DailyLog{
		DsaDone:        true,
		DsaType:        DSANew,
		DsaCount:       4,
		DsaTime:        60,
		MeditationDone: true,
		MeditationTime: 15,
		LearningNotes:  "旧笔记",
	}

	patch := &DailyLogPatch{
		DsaCount: intPtr(7),
		DsaType:  dsaPtr(DSARevision),
	}
	patch.Apply(log)

	// 补丁里出现的字段被覆盖
	assert.Equal(t, 7, log.DsaCount)
	assert.Equal(t, DSARevision, log.DsaType)

	// 未出现的字段保持原样
	assert.True(t, log.DsaDone)
	assert.Equal(t, 60, log.DsaTime)
	assert.True(t, log.MeditationDone)
	assert.Equal(t, 15, log.MeditationTime)
	assert.Equal(t, "旧笔记", log.LearningNotes)
}

func TestPatchApplyCanZeroFieldsExplicitly(t *testing.T) {
	log := &DailyLog{
		GymDone:       true,
		GymTime:       90,
		LearningNotes: "会被清空",
	}

	patch := &DailyLogPatch{
		GymDone:       boolPtr(false),
		GymTime:       intPtr(0),
		LearningNotes: strPtr(""),
	}
	patch.Apply(log)

	assert.False(t, log.GymDone)
	assert.Zero(t, log.GymTime)
	assert.Empty(t, log.LearningNotes)
}

func TestPatchApplyEmptyPatchIsNoop(t *testing.T) {
	log := &DailyLog{
		DsaDone:     true,
		DsaCount:    3,
		ProjectDone: true,
		ProjectName: "habit-tracker",
	}
	before := *log

	(&DailyLogPatch{}).Apply(log)

	assert.Equal(t, before, *log)
}
