package service

import (
	"habit_tracker_backend/internal/repository"
	"math/rand"
	"time"
)

type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
}

func NewMotivationService(motivationRepo *repository.MotivationRepository) *MotivationService {
	return &MotivationService{MotivationRepo: motivationRepo}
}

// GetCurrentMotivation 获取当前显示的激励短句，每12小时轮换一次
func (s *MotivationService) GetCurrentMotivation() (string, error) {
	current, err := s.MotivationRepo.GetCurrent()
	if err != nil {
		// 没有当前使用的短句时，从启用列表里选第一个
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil || len(enabled) == 0 {
			return "", err
		}
		s.MotivationRepo.SetCurrent(enabled[0].ID)
		return enabled[0].Content, nil
	}

	elapsed := time.Since(current.LastUsedAt)
	enabled, err := s.MotivationRepo.GetEnabled()

	// 只有一条启用的短句时不轮换
	if err == nil && len(enabled) > 1 && elapsed.Hours() >= 12 {
		candidates := enabled[:0:0]
		for _, m := range enabled {
			if m.ID != current.ID {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) > 0 {
			next := candidates[rand.Intn(len(candidates))]
			s.MotivationRepo.SetCurrent(next.ID)
			return next.Content, nil
		}
	}

	return current.Content, nil
}
