package database

import (
	"edupulse_backend/internal/config"
	"edupulse_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
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

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.ClickstreamEvent{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizResult{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认课程（空库时插入演示数据，方便前端首屏有内容）
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count == 0 {
		defaultCourses := []model.Course{
			{
				Title:       "Go 语言入门",
				Description: "从零开始学习 Go：变量、流程控制、函数与包。",
				Type:        model.TextCourse,
				Category:    "programming",
				Level:       "beginner",
				Tags:        model.StringList{"go", "basics"},
				Duration:    45,
			},
			{
				Title:       "HTTP 服务实战",
				Description: "Building and deploying production HTTP services.",
				Type:        model.VideoCourse,
				Category:    "backend",
				Level:       "intermediate",
				Tags:        model.StringList{"http", "backend"},
				Duration:    60,
			},
			{
				Title:       "数据结构自测",
				Description: "检验数组、链表与哈希表的掌握程度。",
				Type:        model.QuizCourse,
				Category:    "computer-science",
				Level:       "beginner",
				Tags:        model.StringList{"data-structures", "quiz"},
				Duration:    20,
			},
		}
		for _, course := range defaultCourses {
			db.Create(&course)
		}
	}

	return db, nil
}
