package database

import (
	"fmt"
	"habit_tracker_backend/internal/config"
	"habit_tracker_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 建立数据库连接；migrate 为 true 时执行建表迁移并填充种子数据
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.DailyLog{},
			&model.Motivation{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		// 默认的激励短句
		var count int64
		db.Model(&model.Motivation{}).Count(&count)
		if count == 0 {
			defaultMotivations := []string{
				"Small habits, repeated daily, compound into remarkable results.",
				"You don't have to be great to start, but you have to start to be great.",
				"Consistency beats intensity. Show up today.",
				"A one-day streak is still a streak. Begin again.",
			}
			for i, content := range defaultMotivations {
				motivation := &model.Motivation{
					Content:         content,
					IsEnabled:       true,
					IsCurrentlyUsed: i == 0,
				}
				db.Create(motivation)
			}
		}
	}

	return db, nil
}
