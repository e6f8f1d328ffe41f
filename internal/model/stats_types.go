package model

import "time"

// UserRank 按成就数划分的称号
type UserRank string

const (
	RankBeginner     UserRank = "Beginner"
	RankIntermediate UserRank = "Intermediate"
	RankAdvanced     UserRank = "Advanced"
	RankExpert       UserRank = "Expert"
)

// Activity 仪表盘最近活动单项
type Activity struct {
	ID        string       `json:"id"`
	Action    ActionType   `json:"action"`
	Details   EventDetails `json:"details"`
	Timestamp time.Time    `json:"timestamp"`
}

// DerivedStatistics 从完整事件日志按需推导的汇总指标，不落库
type DerivedStatistics struct {
	CoursesEnrolled  int        `json:"coursesEnrolled"`
	CoursesCompleted int        `json:"coursesCompleted"`
	StudyHours       int        `json:"studyHours"`
	Achievements     int        `json:"achievements"`
	WeeklyHours      int        `json:"weeklyHours"`
	Streak           int        `json:"streak"`
	Rank             UserRank   `json:"rank"`
	OverallProgress  int        `json:"overallProgress"`
	RecentActivities []Activity `json:"recentActivities"`
}
