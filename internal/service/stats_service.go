package service

import (
	"edupulse_backend/internal/model"
	"edupulse_backend/internal/repository"
	"edupulse_backend/pkg/logger"
	"edupulse_backend/pkg/monitoring"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// 固定的时长假设：每浏览一门课按30分钟计，近7天每个事件按5分钟计。
// 这是估算而非测量值。
const (
	minutesPerCourse      = 30
	minutesPerWeekEvent   = 5
	recentActivitiesLimit = 10
)

// 成就里程碑："浏览5门以上课程"的门槛
const milestoneCourseCount = 5

type memoEntry struct {
	hash  uint64
	stats *model.DerivedStatistics
}

// StatsService 把用户的完整事件日志归并为派生统计。
// 统计是事件日志的纯函数：按事件列表哈希做备忘录，
// 日志不变时不重算，新事件落库时失效。
type StatsService struct {
	EventRepo *repository.EventRepository

	mu   sync.RWMutex
	memo map[uint]memoEntry
}

func NewStatsService(eventRepo *repository.EventRepository) *StatsService {
	return &StatsService{
		EventRepo: eventRepo,
		memo:      make(map[uint]memoEntry),
	}
}

// Invalidate 丢弃某个用户的备忘结果（TrackerService 写入新事件后调用）
func (s *StatsService) Invalidate(userID uint) {
	s.mu.Lock()
	delete(s.memo, userID)
	s.mu.Unlock()
}

// GetUserStatistics 读取事件日志并推导统计。
// 日志为空或读取失败时降级为默认统计加一条欢迎活动，从不把错误抛给调用方。
func (s *StatsService) GetUserStatistics(userID uint) *model.DerivedStatistics {
	events, err := s.EventRepo.FindByUserID(userID)
	if err != nil {
		logger.Log.Warn("failed to load clickstream events, serving defaults",
			zap.Uint("userId", userID),
			zap.Error(err))
		return DefaultStatistics()
	}

	if len(events) == 0 {
		return DefaultStatistics()
	}

	hash := EventLogHash(events)

	s.mu.RLock()
	entry, ok := s.memo[userID]
	s.mu.RUnlock()
	if ok && entry.hash == hash {
		monitoring.StatsCache.WithLabelValues("hit").Inc()
		return entry.stats
	}
	monitoring.StatsCache.WithLabelValues("miss").Inc()

	stats := ComputeStatistics(events, time.Now())

	s.mu.Lock()
	s.memo[userID] = memoEntry{hash: hash, stats: stats}
	s.mu.Unlock()

	return stats
}

// EventLogHash 事件列表的指纹：FNV-1a over 条数 + 各事件ID。
// 日志只追加，条数加ID足以辨别变化。
func EventLogHash(events []model.ClickstreamEvent) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.Itoa(len(events))))
	for _, e := range events {
		h.Write([]byte(e.ID))
	}
	return h.Sum64()
}

// DefaultStatistics 降级统计：全零指标加一条合成的欢迎活动
func DefaultStatistics() *model.DerivedStatistics {
	return &model.DerivedStatistics{
		Rank: model.RankBeginner,
		RecentActivities: []model.Activity{
			{
				ID:        "welcome",
				Action:    model.ActionNavigation,
				Details:   model.EventDetails{"message": "Welcome! Start exploring courses to begin your learning journey."},
				Timestamp: time.Now(),
			},
		},
	}
}

// ComputeStatistics 事件日志 -> 派生统计 的纯函数。
// events 按到达顺序排列；now 注入以便测试。
func ComputeStatistics(events []model.ClickstreamEvent, now time.Time) *model.DerivedStatistics {
	coursesViewed := make(map[string]bool)
	coursesCompleted := make(map[string]bool)
	var quizStarts, quizCompletes, videoPlays int

	weekAgo := now.AddDate(0, 0, -7)
	weekEventCount := 0

	// 连续学习天数：记录出现过事件的本地日期
	activeDays := make(map[string]bool)

	for _, e := range events {
		switch e.Action {
		case model.ActionCourseView:
			if id := e.Details.CourseID(); id != "" {
				coursesViewed[id] = true
			}
		case model.ActionQuizStart:
			quizStarts++
		case model.ActionQuizComplete:
			quizCompletes++
			if id := e.Details.CourseID(); id != "" {
				coursesCompleted[id] = true
			}
		case model.ActionVideoPlay:
			videoPlays++
		}

		if e.Timestamp.After(weekAgo) {
			weekEventCount++
		}

		activeDays[e.Timestamp.Local().Format("2006-01-02")] = true
	}

	achievements := countAchievements(len(coursesViewed), quizStarts, videoPlays, quizCompletes)

	stats := &model.DerivedStatistics{
		CoursesEnrolled:  len(coursesViewed),
		CoursesCompleted: len(coursesCompleted),
		StudyHours:       minutesPerCourse * len(coursesViewed) / 60,
		Achievements:     achievements,
		WeeklyHours:      minutesPerWeekEvent * weekEventCount / 60,
		Streak:           streakLength(activeDays, now),
		Rank:             rankFor(achievements),
		OverallProgress:  overallProgress(quizCompletes, len(coursesViewed)),
		RecentActivities: recentActivities(events, recentActivitiesLimit),
	}

	return stats
}

// countAchievements 满足的里程碑个数，上限5
func countAchievements(distinctCourses, quizStarts, videoPlays, quizCompletes int) int {
	count := 0
	if distinctCourses >= 1 {
		count++
	}
	if quizStarts >= 1 {
		count++
	}
	if videoPlays >= 1 {
		count++
	}
	if quizCompletes >= 1 {
		count++
	}
	if distinctCourses >= milestoneCourseCount {
		count++
	}
	return count
}

// streakLength 从今天往回数，事件日期连续命中的天数；遇到第一个空档即停。
// 今天没有事件时返回 0。
func streakLength(activeDays map[string]bool, now time.Time) int {
	streak := 0
	day := now.Local()
	for {
		if !activeDays[day.Format("2006-01-02")] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// rankFor 阈值按升序逐个评估，后面命中的覆盖前面的
func rankFor(achievements int) model.UserRank {
	rank := model.RankBeginner
	if achievements >= 3 {
		rank = model.RankIntermediate
	}
	if achievements >= 5 {
		rank = model.RankAdvanced
	}
	if achievements >= 7 {
		rank = model.RankExpert
	}
	return rank
}

func overallProgress(quizCompletes, distinctCourses int) int {
	denominator := distinctCourses
	if denominator < 1 {
		denominator = 1
	}
	progress := 100 * quizCompletes / denominator
	if progress > 100 {
		progress = 100
	}
	return progress
}

// recentActivities 最后 limit 条事件，按时间倒序
func recentActivities(events []model.ClickstreamEvent, limit int) []model.Activity {
	start := len(events) - limit
	if start < 0 {
		start = 0
	}

	recent := events[start:]
	activities := make([]model.Activity, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		e := recent[i]
		activities = append(activities, model.Activity{
			ID:        e.ID,
			Action:    e.Action,
			Details:   e.Details,
			Timestamp: e.Timestamp,
		})
	}
	return activities
}
