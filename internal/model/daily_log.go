package model

import (
	"time"
)

type DSAType string

const (
	DSANew      DSAType = "NEW"
	DSARevision DSAType = "REVISION"
)

type GymType string

const (
	GymDumbbells GymType = "DUMBBELLS"
	GymPushPull  GymType = "PUSH_PULL"
	GymShoulders GymType = "SHOULDERS"
)

// DailyLog 用户每天一条打卡记录，(user_id, date) 唯一
// 数据库列为扁平的 snake_case，对外 JSON 为 camelCase，聚合逻辑只使用内存模型
// swagger:model DailyLog
type DailyLog struct {
	BaseModel
	UserID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_log_date,priority:1" json:"userId"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_user_log_date,priority:2" json:"date"`

	DsaDone  bool    `gorm:"default:false" json:"dsaDone"`
	DsaType  DSAType `gorm:"type:enum('NEW','REVISION');default:'NEW'" json:"dsaType"`
	DsaCount int     `gorm:"default:0" json:"dsaCount"`
	DsaTime  int     `gorm:"default:0" json:"dsaTime"` // 分钟

	MeditationDone bool `gorm:"default:false" json:"meditationDone"`
	MeditationTime int  `gorm:"default:0" json:"meditationTime"`

	GymDone bool    `gorm:"default:false" json:"gymDone"`
	GymType GymType `gorm:"type:enum('DUMBBELLS','PUSH_PULL','SHOULDERS');default:'DUMBBELLS'" json:"gymType"`
	GymTime int     `gorm:"default:0" json:"gymTime"`

	LearningNotes string `gorm:"type:text" json:"learningNotes"`
	LearningTime  int    `gorm:"default:0" json:"learningTime"`

	ProjectDone  bool   `gorm:"default:false" json:"projectDone"`
	ProjectName  string `gorm:"size:255" json:"projectName"`
	ProjectNotes string `gorm:"type:text" json:"projectNotes"`
	ProjectTime  int    `gorm:"default:0" json:"projectTime"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}

// NewDailyLog 返回带有各分类默认值的空记录
func NewDailyLog(userID string, date time.Time) *DailyLog {
	return &DailyLog{
		UserID:  userID,
		Date:    date,
		DsaType: DSANew,
		GymType: GymDumbbells,
	}
}

// DailyLogPatch 部分更新载荷：只有请求里出现的字段才会覆盖已有值，
// 未出现的字段保持原样（merge 语义）
// swagger:model DailyLogPatch
type DailyLogPatch struct {
	DsaDone  *bool    `json:"dsaDone"`
	DsaType  *DSAType `json:"dsaType" binding:"omitempty,oneof=NEW REVISION"`
	DsaCount *int     `json:"dsaCount" binding:"omitempty,min=0"`
	DsaTime  *int     `json:"dsaTime" binding:"omitempty,min=0"`

	MeditationDone *bool `json:"meditationDone"`
	MeditationTime *int  `json:"meditationTime" binding:"omitempty,min=0"`

	GymDone *bool    `json:"gymDone"`
	GymType *GymType `json:"gymType" binding:"omitempty,oneof=DUMBBELLS PUSH_PULL SHOULDERS"`
	GymTime *int     `json:"gymTime" binding:"omitempty,min=0"`

	LearningNotes *string `json:"learningNotes"`
	LearningTime  *int    `json:"learningTime" binding:"omitempty,min=0"`

	ProjectDone  *bool   `json:"projectDone"`
	ProjectName  *string `json:"projectName"`
	ProjectNotes *string `json:"projectNotes"`
	ProjectTime  *int    `json:"projectTime" binding:"omitempty,min=0"`
}

// Apply 将补丁套用到记录上
func (p *DailyLogPatch) Apply(log *DailyLog) {
	if p.DsaDone != nil {
		log.DsaDone = *p.DsaDone
	}
	if p.DsaType != nil {
		log.DsaType = *p.DsaType
	}
	if p.DsaCount != nil {
		log.DsaCount = *p.DsaCount
	}
	if p.DsaTime != nil {
		log.DsaTime = *p.DsaTime
	}
	if p.MeditationDone != nil {
		log.MeditationDone = *p.MeditationDone
	}
	if p.MeditationTime != nil {
		log.MeditationTime = *p.MeditationTime
	}
	if p.GymDone != nil {
		log.GymDone = *p.GymDone
	}
	if p.GymType != nil {
		log.GymType = *p.GymType
	}
	if p.GymTime != nil {
		log.GymTime = *p.GymTime
	}
	if p.LearningNotes != nil {
		log.LearningNotes = *p.LearningNotes
	}
	if p.LearningTime != nil {
		log.LearningTime = *p.LearningTime
	}
	if p.ProjectDone != nil {
		log.ProjectDone = *p.ProjectDone
	}
	if p.ProjectName != nil {
		log.ProjectName = *p.ProjectName
	}
	if p.ProjectNotes != nil {
		log.ProjectNotes = *p.ProjectNotes
	}
	if p.ProjectTime != nil {
		log.ProjectTime = *p.ProjectTime
	}
}
