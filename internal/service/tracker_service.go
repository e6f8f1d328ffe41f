package service

import (
	"edupulse_backend/internal/config"
	"edupulse_backend/internal/model"
	"edupulse_backend/internal/repository"
	"edupulse_backend/internal/util"
	"edupulse_backend/pkg/logger"
	"edupulse_backend/pkg/monitoring"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// knownActions 允许写入的动作类型
var knownActions = map[model.ActionType]bool{
	model.ActionCourseView:   true,
	model.ActionQuizStart:    true,
	model.ActionQuizComplete: true,
	model.ActionVideoPlay:    true,
	model.ActionNavigation:   true,
	model.ActionButtonClick:  true,
	model.ActionLogin:        true,
}

// StatsInvalidator 新事件落库后需要失效的统计缓存
type StatsInvalidator interface {
	Invalidate(userID uint)
}

// TrackerService 点击流事件采集。显式构造、按需注入，
// 不持有任何进程级全局状态。
type TrackerService struct {
	EventRepo   *repository.EventRepository
	Cfg         *config.Config
	invalidator StatsInvalidator
}

func NewTrackerService(eventRepo *repository.EventRepository, cfg *config.Config) *TrackerService {
	return &TrackerService{
		EventRepo: eventRepo,
		Cfg:       cfg,
	}
}

// SetInvalidator 绑定统计缓存失效回调（在 app 装配阶段调用一次）
func (s *TrackerService) SetInvalidator(inv StatsInvalidator) {
	s.invalidator = inv
}

// BuildEvent 由动作名和负载组装一条事件：生成ID、打当前时间戳。
// sessionId 为空时生成一个新的会话ID（客户端未传时的兜底）。
func BuildEvent(userID uint, sessionID string, action model.ActionType, details model.EventDetails) model.ClickstreamEvent {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	return model.ClickstreamEvent{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		UserID:    userID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// Track 记录一条事件。持久化失败只记日志，调用方拿到的事件仍然有效。
func (s *TrackerService) Track(userID uint, sessionID string, action model.ActionType, details model.EventDetails) (*model.ClickstreamEvent, error) {
	if !knownActions[action] {
		return nil, util.ErrInvalidAction
	}

	event := BuildEvent(userID, sessionID, action, details)

	if err := s.EventRepo.Append(&event); err != nil {
		logger.Log.Error("failed to append clickstream event",
			zap.String("action", string(action)),
			zap.Uint("userId", userID),
			zap.Error(err))
		return nil, err
	}

	monitoring.ClickstreamEvents.WithLabelValues(string(action)).Inc()
	s.invalidate(userID)

	return &event, nil
}

// TrackBatch 一次写入多条事件，全部成功或整体失败
func (s *TrackerService) TrackBatch(userID uint, sessionID string, inputs []EventInput) ([]model.ClickstreamEvent, error) {
	if len(inputs) > s.Cfg.Clickstream.MaxBatchSize {
		return nil, util.ErrBatchTooLarge
	}

	events := make([]model.ClickstreamEvent, 0, len(inputs))
	for _, in := range inputs {
		if !knownActions[in.Action] {
			return nil, util.ErrInvalidAction
		}
		events = append(events, BuildEvent(userID, sessionID, in.Action, in.Details))
	}

	if err := s.EventRepo.AppendBatch(events); err != nil {
		logger.Log.Error("failed to append clickstream batch",
			zap.Uint("userId", userID),
			zap.Int("size", len(events)),
			zap.Error(err))
		return nil, err
	}

	for _, e := range events {
		monitoring.ClickstreamEvents.WithLabelValues(string(e.Action)).Inc()
	}
	s.invalidate(userID)

	return events, nil
}

func (s *TrackerService) invalidate(userID uint) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(userID)
	}
}

// EventInput 批量上报中的单条输入
type EventInput struct {
	Action  model.ActionType   `json:"action" binding:"required"`
	Details model.EventDetails `json:"details"`
}
