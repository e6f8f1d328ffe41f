package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type CourseType string

const (
	TextCourse  CourseType = "text"
	VideoCourse CourseType = "video"
	QuizCourse  CourseType = "quiz"
)

// StringList 以JSON形式存储的字符串数组（课程标签等）
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}
	return json.Unmarshal(data, l)
}

// Course represents one piece of learnable content
// swagger:model Course
type Course struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Type        CourseType `gorm:"type:enum('text','video','quiz');not null" json:"type"`
	Category    string     `gorm:"size:100;index" json:"category"`
	Level       string     `gorm:"size:50" json:"level"`
	Tags        StringList `gorm:"type:json" json:"tags"`
	Duration    int        `gorm:"default:0" json:"duration"` // 预计学习时长（分钟）
	VideoURL    string     `gorm:"size:255" json:"videoUrl,omitempty"`
	Thumbnail   string     `gorm:"size:255" json:"thumbnail,omitempty"`
	Published   bool       `gorm:"default:true" json:"published"`
	UploaderID  uint       `gorm:"index;type:bigint unsigned" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}
