package repository

import (
	"habit_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type MotivationRepository struct {
	DB *gorm.DB
}

func NewMotivationRepository(db *gorm.DB) *MotivationRepository {
	return &MotivationRepository{DB: db}
}

// 获取启用的激励短句
func (r *MotivationRepository) GetEnabled() ([]*model.Motivation, error) {
	var motivations []*model.Motivation
	err := r.DB.Where("is_enabled = ?", true).Find(&motivations).Error
	return motivations, err
}

// 获取当前使用的激励短句
func (r *MotivationRepository) GetCurrent() (*model.Motivation, error) {
	var motivation model.Motivation
	err := r.DB.Where("is_currently_used = ?", true).First(&motivation).Error
	return &motivation, err
}

// 设置当前使用的激励短句
func (r *MotivationRepository) SetCurrent(id uint) error {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&model.Motivation{}).Where("is_currently_used = ?", true).Update("is_currently_used", false).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&model.Motivation{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_currently_used": true,
		"last_used_at":      time.Now(),
	}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
