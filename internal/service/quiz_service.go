package service

import (
	"edupulse_backend/internal/model"
	"edupulse_backend/internal/repository"
	"edupulse_backend/internal/util"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo *repository.QuizRepository
	Tracker  *TrackerService
}

func NewQuizService(quizRepo *repository.QuizRepository, tracker *TrackerService) *QuizService {
	return &QuizService{
		QuizRepo: quizRepo,
		Tracker:  tracker,
	}
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

// StartQuiz 开始测验，顺带记录 quiz_start 事件
func (s *QuizService) StartQuiz(userID uint, sessionID string, quizID uint) (*model.Quiz, error) {
	quiz, err := s.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}

	s.Tracker.Track(userID, sessionID, model.ActionQuizStart, model.EventDetails{
		"quizId":   strconv.FormatUint(uint64(quiz.ID), 10),
		"courseId": strconv.FormatUint(uint64(quiz.CourseID), 10),
	})

	return quiz, nil
}

// SubmitQuiz 服务端判分。answers 是选项下标，按题目顺序排列。
// 判分成功后记录 quiz_complete 事件。
func (s *QuizService) SubmitQuiz(userID uint, sessionID string, quizID uint, answers []int) (*model.QuizResult, error) {
	quiz, err := s.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}

	if len(answers) != len(quiz.Questions) {
		return nil, util.ErrAnswerCount
	}

	correct := 0
	for i, q := range quiz.Questions {
		if answers[i] == q.Answer {
			correct++
		}
	}

	score := 0
	if len(quiz.Questions) > 0 {
		score = 100 * correct / len(quiz.Questions)
	}

	result := &model.QuizResult{
		QuizID:      quiz.ID,
		UserID:      userID,
		Score:       score,
		Passed:      score >= quiz.PassScore,
		SubmittedAt: time.Now(),
	}

	if err := s.QuizRepo.CreateResult(result); err != nil {
		return nil, err
	}

	s.Tracker.Track(userID, sessionID, model.ActionQuizComplete, model.EventDetails{
		"quizId":   strconv.FormatUint(uint64(quiz.ID), 10),
		"courseId": strconv.FormatUint(uint64(quiz.CourseID), 10),
		"score":    score,
	})

	return result, nil
}
