package repository

import (
	"habit_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type DailyLogRepository struct {
	DB *gorm.DB
}

// NewDailyLogRepository 创建新的打卡记录仓库实例
func NewDailyLogRepository(db *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{DB: db}
}

// FindByUserAndDate 查询用户在指定日期的记录，一天最多一条
func (r *DailyLogRepository) FindByUserAndDate(userID string, date time.Time) (*model.DailyLog, error) {
	var log model.DailyLog
	// 获取日期的开始和结束时间
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour).Add(-1 * time.Nanosecond)

	err := r.DB.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startOfDay, endOfDay).First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// FindByUserInRange 查询区间内的记录，按日期升序
func (r *DailyLogRepository) FindByUserInRange(userID string, start, end time.Time) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

// FindRecentByUser 查询 since 之后（含当天）的全部记录，供连续天数计算使用
func (r *DailyLogRepository) FindRecentByUser(userID string, since time.Time) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

// Save 新记录插入，已有记录整行更新；(user_id, date) 上有唯一索引兜底
func (r *DailyLogRepository) Save(log *model.DailyLog) error {
	if log.ID == 0 {
		return r.DB.Create(log).Error
	}
	return r.DB.Save(log).Error
}
