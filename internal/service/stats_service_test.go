package service

import (
	"fmt"
	"testing"
	"time"

	"edupulse_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(action model.ActionType, courseID string, ts time.Time) model.ClickstreamEvent {
	details := model.EventDetails{}
	if courseID != "" {
		details["courseId"] = courseID
	}
	return model.ClickstreamEvent{
		ID:        fmt.Sprintf("ev-%s-%s-%d", action, courseID, ts.UnixNano()),
		SessionID: "sess-1",
		UserID:    1,
		Action:    action,
		Details:   details,
		Timestamp: ts,
	}
}

func TestComputeStatisticsDistinctCourses(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)

	// 浏览 A、B、A，再完成 A 的测验
	events := []model.ClickstreamEvent{
		makeEvent(model.ActionCourseView, "A", now.Add(-3*time.Hour)),
		makeEvent(model.ActionCourseView, "B", now.Add(-2*time.Hour)),
		makeEvent(model.ActionCourseView, "A", now.Add(-time.Hour)),
		makeEvent(model.ActionQuizComplete, "A", now.Add(-30*time.Minute)),
	}

	stats := ComputeStatistics(events, now)

	assert.Equal(t, 2, stats.CoursesEnrolled, "重复浏览同一课程只计一次")
	assert.Equal(t, 1, stats.CoursesCompleted)
	assert.Equal(t, 1, stats.StudyHours) // 2门 × 30分钟 = 1小时
	assert.Equal(t, 50, stats.OverallProgress)
	assert.Equal(t, 2, stats.Achievements) // 浏览过课程 + 完成过测验
	assert.Equal(t, model.RankBeginner, stats.Rank)
}

func TestComputeStatisticsIgnoresEventsWithoutCourseID(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	events := []model.ClickstreamEvent{
		makeEvent(model.ActionCourseView, "", now),
		makeEvent(model.ActionNavigation, "", now),
	}

	stats := ComputeStatistics(events, now)

	assert.Equal(t, 0, stats.CoursesEnrolled)
	assert.Equal(t, 0, stats.OverallProgress)
}

func TestComputeStatisticsWeeklyHours(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)

	var events []model.ClickstreamEvent
	// 近7天内 12 个事件 = 60 分钟 = 1 小时
	for i := 0; i < 12; i++ {
		events = append(events, makeEvent(model.ActionButtonClick, "", now.Add(-time.Duration(i)*time.Hour)))
	}
	// 7天之外的事件不计入
	events = append(events, makeEvent(model.ActionButtonClick, "", now.AddDate(0, 0, -10)))

	stats := ComputeStatistics(events, now)
	assert.Equal(t, 1, stats.WeeklyHours)
}

func TestComputeStatisticsStreak(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)

	events := []model.ClickstreamEvent{
		makeEvent(model.ActionNavigation, "", now.AddDate(0, 0, -2)),
		makeEvent(model.ActionNavigation, "", now.AddDate(0, 0, -1)),
		makeEvent(model.ActionNavigation, "", now),
	}
	stats := ComputeStatistics(events, now)
	assert.Equal(t, 3, stats.Streak)

	// 连续性在第4天前断开：更早的事件不延长连续天数
	events = append(events, makeEvent(model.ActionNavigation, "", now.AddDate(0, 0, -4)))
	stats = ComputeStatistics(events, now)
	assert.Equal(t, 3, stats.Streak)
}

func TestComputeStatisticsStreakZeroWithoutEventToday(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)

	// 昨天、前天都有事件，但今天没有
	events := []model.ClickstreamEvent{
		makeEvent(model.ActionNavigation, "", now.AddDate(0, 0, -2)),
		makeEvent(model.ActionNavigation, "", now.AddDate(0, 0, -1)),
	}
	stats := ComputeStatistics(events, now)
	assert.Equal(t, 0, stats.Streak)
}

func TestComputeStatisticsRecentActivities(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)

	var events []model.ClickstreamEvent
	for i := 0; i < 15; i++ {
		events = append(events, makeEvent(model.ActionNavigation, "", now.Add(time.Duration(i)*time.Minute)))
	}

	stats := ComputeStatistics(events, now)

	require.Len(t, stats.RecentActivities, 10)
	// 最新的在最前
	assert.Equal(t, events[14].ID, stats.RecentActivities[0].ID)
	assert.Equal(t, events[5].ID, stats.RecentActivities[9].ID)
	for i := 1; i < len(stats.RecentActivities); i++ {
		assert.False(t, stats.RecentActivities[i].Timestamp.After(stats.RecentActivities[i-1].Timestamp))
	}
}

func TestCountAchievements(t *testing.T) {
	assert.Equal(t, 0, countAchievements(0, 0, 0, 0))
	assert.Equal(t, 1, countAchievements(1, 0, 0, 0))
	assert.Equal(t, 4, countAchievements(4, 1, 1, 1))
	// 浏览满5门课解锁第5个里程碑
	assert.Equal(t, 5, countAchievements(5, 1, 1, 1))
	// 上限5
	assert.Equal(t, 5, countAchievements(100, 100, 100, 100))
}

func TestRankFor(t *testing.T) {
	assert.Equal(t, model.RankBeginner, rankFor(0))
	assert.Equal(t, model.RankBeginner, rankFor(2))
	assert.Equal(t, model.RankIntermediate, rankFor(3))
	assert.Equal(t, model.RankIntermediate, rankFor(4))
	assert.Equal(t, model.RankAdvanced, rankFor(5))
}

func TestOverallProgress(t *testing.T) {
	assert.Equal(t, 0, overallProgress(0, 0))
	// 没有浏览过课程时分母视为1
	assert.Equal(t, 100, overallProgress(1, 0))
	assert.Equal(t, 50, overallProgress(1, 2))
	assert.Equal(t, 33, overallProgress(1, 3))
	// 上限100
	assert.Equal(t, 100, overallProgress(10, 2))
}

func TestDefaultStatistics(t *testing.T) {
	stats := DefaultStatistics()

	assert.Equal(t, 0, stats.CoursesEnrolled)
	assert.Equal(t, 0, stats.Achievements)
	assert.Equal(t, model.RankBeginner, stats.Rank)
	require.Len(t, stats.RecentActivities, 1)
	assert.Equal(t, "welcome", stats.RecentActivities[0].ID)
	assert.Contains(t, stats.RecentActivities[0].Details["message"], "Welcome")
}

func TestEventLogHash(t *testing.T) {
	now := time.Now()
	events := []model.ClickstreamEvent{
		makeEvent(model.ActionCourseView, "A", now),
		makeEvent(model.ActionQuizStart, "A", now.Add(time.Minute)),
	}

	h1 := EventLogHash(events)
	h2 := EventLogHash(events)
	assert.Equal(t, h1, h2, "同一份日志指纹稳定")

	appended := append(events, makeEvent(model.ActionQuizComplete, "A", now.Add(2*time.Minute)))
	assert.NotEqual(t, h1, EventLogHash(appended), "追加事件后指纹变化")
}
