package util

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUserNotFound    = errors.New("用户不存在")
	ErrEmailRegistered = errors.New("该邮箱已被注册")
	ErrCourseNotFound  = errors.New("course not found")
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrCourseNoVideo   = errors.New("course has no video attached")
	ErrInvalidAction   = errors.New("unknown clickstream action")
	ErrBatchTooLarge   = errors.New("batch exceeds the allowed size")
	ErrInvalidVideoExt = errors.New("不支持的视频格式")
	ErrAnswerCount     = errors.New("answer count does not match question count")
)
