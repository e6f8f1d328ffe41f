package service

import (
	"context"
	"edupulse_backend/internal/config"
	"edupulse_backend/internal/model"
	"edupulse_backend/internal/repository"
	"edupulse_backend/internal/util"
	"edupulse_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const courseListCacheKey = "content:courses"

type ContentService struct {
	CourseRepo     *repository.CourseRepository
	StorageService *StorageService
	Cfg            *config.Config
	Redis          *redis.Client
}

func NewContentService(courseRepo *repository.CourseRepository, storageService *StorageService, cfg *config.Config, rdb *redis.Client) *ContentService {
	return &ContentService{
		CourseRepo:     courseRepo,
		StorageService: storageService,
		Cfg:            cfg,
		Redis:          rdb,
	}
}

// GetCourses 获取已发布课程列表。无筛选条件时走Redis缓存。
func (s *ContentService) GetCourses(ctx context.Context, filter repository.CourseFilter) ([]model.Course, error) {
	cacheable := filter == (repository.CourseFilter{})

	if cacheable && s.Redis != nil {
		cached, err := s.Redis.Get(ctx, courseListCacheKey).Result()
		if err == nil {
			var courses []model.Course
			if jsonErr := json.Unmarshal([]byte(cached), &courses); jsonErr == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindPublished(filter)
	if err != nil {
		return nil, err
	}

	if cacheable && s.Redis != nil {
		if data, jsonErr := json.Marshal(courses); jsonErr == nil {
			ttl := time.Duration(s.Cfg.Clickstream.ContentCacheTTL) * time.Second
			s.Redis.Set(ctx, courseListCacheKey, data, ttl)
		}
	}

	return courses, nil
}

func (s *ContentService) GetCourse(id uint) (*model.Course, error) {
	return s.CourseRepo.FindByID(id)
}

// CreateCourse 新建课程并使列表缓存失效
func (s *ContentService) CreateCourse(ctx context.Context, course *model.Course) error {
	if err := s.CourseRepo.Create(course); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

// GetVideoPlayback 返回课程视频的播放地址
func (s *ContentService) GetVideoPlayback(courseID uint) (string, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return "", util.ErrCourseNotFound
	}
	if course.Type != model.VideoCourse || course.VideoURL == "" {
		return "", util.ErrCourseNoVideo
	}
	return course.VideoURL, nil
}

// UploadCourseVideo 上传课程视频：落临时文件，ffmpeg探测时长并截取缩略图，
// 再推到存储后端，最后把时长（分钟）和地址写回课程。
func (s *ContentService) UploadCourseVideo(ctx context.Context, courseID uint, file *multipart.FileHeader) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	isValidType := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			isValidType = true
			break
		}
	}
	if !isValidType {
		return nil, util.ErrInvalidVideoExt
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// 深度验证 MIME 类型
	if _, err := util.ValidateMimeType(src, []string{util.MimeVideo, util.MimeOctetStream}); err != nil {
		return nil, fmt.Errorf("非法的文件内容: %v", err)
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	// 先写临时文件，ffmpeg 需要本地路径
	tmpFile, err := os.CreateTemp("", "course_video_*"+ext)
	if err != nil {
		return nil, err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmpFile, src); err != nil {
		tmpFile.Close()
		return nil, err
	}
	tmpFile.Close()

	info, err := util.GetVideoInfo(tmpPath)
	if err != nil {
		logger.Log.Warn("failed to probe video metadata", zap.Error(err))
		info = &util.VideoInfo{}
	}

	basename := time.Now().Format("20060102150405") + "_" + util.GenerateRandomString(6)
	videoName := "videos/" + basename + ext

	videoURL, err := s.StorageService.UploadFile(ctx, videoName, tmpPath, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	thumbnailURL := ""
	thumbPath := filepath.Join(os.TempDir(), basename+".jpg")
	if err := util.GenerateThumbnail(tmpPath, thumbPath, "00:00:01"); err == nil {
		defer os.Remove(thumbPath)
		url, upErr := s.StorageService.UploadFile(ctx, "thumbnails/"+basename+".jpg", thumbPath, "image/jpeg")
		if upErr == nil {
			thumbnailURL = url
		}
	}

	course.Type = model.VideoCourse
	course.VideoURL = videoURL
	course.Thumbnail = thumbnailURL
	if info.Duration > 0 {
		course.Duration = int(info.Duration / 60)
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)

	return course, nil
}

func (s *ContentService) invalidateListCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, courseListCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate course list cache", zap.Error(err))
	}
}
