package repository

import (
	"edupulse_backend/internal/model"

	"gorm.io/gorm"
)

// EventRepository 点击流事件仓库。事件只追加，不提供更新或删除。
type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Append(event *model.ClickstreamEvent) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) AppendBatch(events []model.ClickstreamEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.DB.Create(&events).Error
}

// FindByUserID 返回用户的完整事件日志，按到达顺序（时间戳升序）
func (r *EventRepository) FindByUserID(userID uint) ([]model.ClickstreamEvent, error) {
	var events []model.ClickstreamEvent
	err := r.DB.Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ClickstreamEvent{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// FindBySessionID 返回一次浏览器会话内的全部事件
func (r *EventRepository) FindBySessionID(sessionID string) ([]model.ClickstreamEvent, error) {
	var events []model.ClickstreamEvent
	err := r.DB.Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Find(&events).Error
	return events, err
}
