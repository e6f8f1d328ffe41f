// 演示数据填充脚本
//
// 创建一个演示学生账号、一份课程测验，以及最近一周的点击流事件，
// 方便在空库上直接查看仪表盘统计效果（连续天数、成就、进度等）。
//
// 用法: go run scripts/seed_demo_data.go

package main

import (
	"edupulse_backend/internal/config"
	"edupulse_backend/internal/model"
	"edupulse_backend/internal/repository"
	"edupulse_backend/internal/service"
	"edupulse_backend/pkg/database"
	"edupulse_backend/pkg/logger"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	eventRepo := repository.NewEventRepository(db)
	quizRepo := repository.NewQuizRepository(db)

	// 演示账号，已存在则复用
	user, err := userRepo.FindByEmail("demo@edupulse.local")
	if err != nil {
		hash, _ := bcrypt.GenerateFromPassword([]byte("demo123456"), bcrypt.DefaultCost)
		user = &model.User{
			Name:     "Demo Student",
			Email:    "demo@edupulse.local",
			Password: string(hash),
			Role:     model.Student,
		}
		if err := userRepo.Create(user); err != nil {
			log.Fatalf("创建演示用户失败: %v", err)
		}
		log.Printf("已创建演示用户 demo@edupulse.local / demo123456 (id=%d)", user.ID)
	} else {
		log.Printf("演示用户已存在 (id=%d)", user.ID)
	}

	courses, err := courseRepo.FindPublished(repository.CourseFilter{})
	if err != nil || len(courses) == 0 {
		log.Fatalf("没有可用课程，请先启动主应用完成建表与默认课程初始化")
	}

	// 给第一门课挂一个测验
	if _, err := quizRepo.FindByCourseID(courses[0].ID); err != nil {
		quiz := &model.Quiz{
			CourseID:  courses[0].ID,
			Title:     courses[0].Title + " 随堂测验",
			PassScore: 60,
			Questions: []model.QuizQuestion{
				{Text: "Go 的切片是值类型还是引用语义？", Options: model.StringList{"值类型", "引用语义", "两者都不是"}, Answer: 1, Order: 1},
				{Text: "哪个关键字用于启动 goroutine？", Options: model.StringList{"async", "go", "spawn"}, Answer: 1, Order: 2},
			},
		}
		if err := db.Create(quiz).Error; err != nil {
			log.Fatalf("创建演示测验失败: %v", err)
		}
		log.Printf("已创建演示测验 (id=%d)", quiz.ID)
	}

	// 最近 5 天每天若干事件，制造连续学习天数
	sessionID := uuid.New().String()
	now := time.Now()
	var events []model.ClickstreamEvent
	for day := 4; day >= 0; day-- {
		ts := now.AddDate(0, 0, -day)
		for i, course := range courses {
			ev := service.BuildEvent(user.ID, sessionID, model.ActionCourseView, model.EventDetails{
				"courseId":    fmt.Sprintf("%d", course.ID),
				"courseTitle": course.Title,
			})
			ev.Timestamp = ts.Add(time.Duration(i) * time.Minute)
			events = append(events, ev)
		}
	}
	quizDone := service.BuildEvent(user.ID, sessionID, model.ActionQuizComplete, model.EventDetails{
		"courseId": fmt.Sprintf("%d", courses[0].ID),
		"score":    100,
	})
	quizDone.Timestamp = now
	events = append(events, quizDone)

	if err := eventRepo.AppendBatch(events); err != nil {
		log.Fatalf("写入点击流事件失败: %v", err)
	}
	log.Printf("已写入 %d 条演示点击流事件，完成！", len(events))
}
