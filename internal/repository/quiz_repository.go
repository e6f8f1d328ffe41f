package repository

import (
	"edupulse_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.`order` ASC")
	}).First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByCourseID(courseID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.`order` ASC")
	}).Where("course_id = ?", courseID).First(&quiz).Error
	return &quiz, err
}

func (r *QuizRepository) CreateResult(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

func (r *QuizRepository) FindResultsByUser(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&results).Error
	return results, err
}
