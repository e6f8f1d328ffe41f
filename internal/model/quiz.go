package model

import "time"

// Quiz 课程测验，一个课程最多挂一个测验
// swagger:model Quiz
type Quiz struct {
	BaseModel
	CourseID  uint           `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	PassScore int            `gorm:"default:60" json:"passScore"`
	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	QuizID  uint       `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	Text    string     `gorm:"type:text;not null" json:"text"`
	Options StringList `gorm:"type:json" json:"options"`
	// 正确选项下标，不下发给学生端
	Answer int `gorm:"not null" json:"-"`
	Order  int `gorm:"default:0" json:"order"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizResult 一次测验提交的成绩
// swagger:model QuizResult
type QuizResult struct {
	BaseModel
	QuizID      uint      `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	UserID      uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Score       int       `gorm:"default:0" json:"score"`
	Passed      bool      `gorm:"default:false" json:"passed"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
