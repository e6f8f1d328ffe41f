package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type ActionType string

const (
	ActionCourseView   ActionType = "course_view"
	ActionQuizStart    ActionType = "quiz_start"
	ActionQuizComplete ActionType = "quiz_complete"
	ActionVideoPlay    ActionType = "video_play"
	ActionNavigation   ActionType = "navigation"
	ActionButtonClick  ActionType = "button_click"
	ActionLogin        ActionType = "login"
)

// EventDetails 事件的自由键值负载，JSON 存储
type EventDetails map[string]interface{}

func (d EventDetails) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(d)
	return string(b), err
}

func (d *EventDetails) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for EventDetails")
	}
	return json.Unmarshal(data, d)
}

// CourseID 从负载中取出 courseId（缺失或非字符串时返回空串）
func (d EventDetails) CourseID() string {
	if d == nil {
		return ""
	}
	if v, ok := d["courseId"].(string); ok {
		return v
	}
	return ""
}

// ClickstreamEvent 一次用户交互记录，只追加，写入后不可变
// swagger:model ClickstreamEvent
type ClickstreamEvent struct {
	ID        string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	SessionID string       `gorm:"size:36;index" json:"sessionId"`
	UserID    uint         `gorm:"index:idx_user_ts;type:bigint unsigned;not null" json:"userId"`
	Action    ActionType   `gorm:"size:50;not null;index" json:"action"`
	Details   EventDetails `gorm:"type:json" json:"details"`
	Timestamp time.Time    `gorm:"not null;index:idx_user_ts" json:"timestamp"`
}

func (ClickstreamEvent) TableName() string {
	return "clickstream_events"
}
