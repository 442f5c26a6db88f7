package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"habit_tracker_backend/internal/model"
	"habit_tracker_backend/internal/repository"
	"habit_tracker_backend/pkg/logger"
	"habit_tracker_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	reportCacheTTL    = 10 * time.Minute
	cacheGenKeyPrefix = "habit:cache_gen:"
	weekReportKeyFmt  = "habit:week_report:%s:%d:%d:%d"  // userID, gen, year, week
	monthReportKeyFmt = "habit:month_report:%s:%d:%d:%d" // userID, gen, year, month
)

// LogService 打卡记录的读写与聚合入口。
// 周报/月报结果缓存在 Redis，键里带用户级代数计数器，写入时递增代数即让旧键失效。
type LogService struct {
	LogRepo *repository.DailyLogRepository
	Redis   *redis.Client
}

func NewLogService(logRepo *repository.DailyLogRepository, rdb *redis.Client) *LogService {
	return &LogService{
		LogRepo: logRepo,
		Redis:   rdb,
	}
}

// SaveLog 保存某天的打卡记录，merge 语义：补丁里没出现的字段保持原值
func (s *LogService) SaveLog(ctx context.Context, userID string, date time.Time, patch *model.DailyLogPatch) (*model.DailyLog, error) {
	day := Midnight(date)

	log, err := s.LogRepo.FindByUserAndDate(userID, day)
	created := false
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log = model.NewDailyLog(userID, day)
		created = true
	} else if err != nil {
		return nil, err
	}

	patch.Apply(log)
	NormalizeLog(log)

	if err := s.LogRepo.Save(log); err != nil {
		return nil, err
	}

	monitoring.LogUpserts.WithLabelValues(fmt.Sprintf("%t", created)).Inc()
	s.bumpCacheGeneration(ctx, userID)

	return log, nil
}

// GetLogByDate 读取某天的记录；没有记录返回 nil，不算错误
func (s *LogService) GetLogByDate(userID string, date time.Time) (*model.DailyLog, error) {
	log, err := s.LogRepo.FindByUserAndDate(userID, Midnight(date))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return NormalizeLog(log), nil
}

// GetWeekReport 某一周的记录列表和汇总
func (s *LogService) GetWeekReport(ctx context.Context, userID string, year, week int) (*model.WeekReport, error) {
	gen := s.cacheGeneration(ctx, userID)
	cacheKey := fmt.Sprintf(weekReportKeyFmt, userID, gen, year, week)

	var cached model.WeekReport
	if s.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	start, end := WeekBounds(year, week)
	logs, err := s.LogRepo.FindByUserInRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	NormalizeLogs(logs)

	report := &model.WeekReport{
		Logs:    logs,
		Summary: AggregateWeek(logs),
	}

	s.cacheSet(ctx, cacheKey, report)
	return report, nil
}

// GetMonthReport 某个月的热力图、周桶和坚持率
func (s *LogService) GetMonthReport(ctx context.Context, userID string, year, month int) (*model.MonthReport, error) {
	gen := s.cacheGeneration(ctx, userID)
	cacheKey := fmt.Sprintf(monthReportKeyFmt, userID, gen, year, month)

	var cached model.MonthReport
	if s.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	start, end := MonthBounds(year, month)
	logs, err := s.LogRepo.FindByUserInRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	NormalizeLogs(logs)

	report := BuildMonthReport(logs, year, month)

	s.cacheSet(ctx, cacheKey, &report)
	return &report, nil
}

// GetStreaks 截至 asOf 的四个分类连续天数
func (s *LogService) GetStreaks(userID string, asOf time.Time) (*model.StreakSet, error) {
	day := Midnight(asOf)
	since := day.AddDate(0, 0, -maxStreakDays)

	logs, err := s.LogRepo.FindRecentByUser(userID, since)
	if err != nil {
		return nil, err
	}
	NormalizeLogs(logs)

	streaks := ComputeStreaks(BuildLogIndex(logs), day)
	return &streaks, nil
}

func (s *LogService) cacheGeneration(ctx context.Context, userID string) int64 {
	gen, err := s.Redis.Get(ctx, cacheGenKeyPrefix+userID).Int64()
	if err != nil && err != redis.Nil {
		logger.Log.Warn("Failed to read cache generation", zap.Error(err))
	}
	return gen
}

func (s *LogService) bumpCacheGeneration(ctx context.Context, userID string) {
	if err := s.Redis.Incr(ctx, cacheGenKeyPrefix+userID).Err(); err != nil {
		logger.Log.Warn("Failed to bump cache generation", zap.Error(err))
	}
}

func (s *LogService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	val, err := s.Redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logger.Log.Warn("Report cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		logger.Log.Warn("Report cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *LogService) cacheSet(ctx context.Context, key string, report interface{}) {
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, data, reportCacheTTL).Err(); err != nil {
		logger.Log.Warn("Report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
