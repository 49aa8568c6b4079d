package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository/selector"
	"swimtrack/training-tracker/internal/storage"
)

// ErrStorageUnavailable rejects illustration operations when no bucket is
// configured.
var ErrStorageUnavailable = errors.New("file storage is not configured")

// IllustrationUpload is a presigned upload slot for an exercise illustration.
type IllustrationUpload struct {
	ObjectKey string `json:"objectKey"`
	UploadURL string `json:"uploadUrl"`
}

// ExerciseService defines operations on the exercise catalog.
type ExerciseService interface {
	Create(ctx context.Context, exercise *domain.Exercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	// Delete removes the exercise and every strength session item that
	// references it.
	Delete(ctx context.Context, id int64) error

	// RequestIllustrationUpload reserves an object key and returns a presigned
	// PUT URL; the client uploads directly and then stores the key on the
	// exercise via Update.
	RequestIllustrationUpload(ctx context.Context, contentType string) (*IllustrationUpload, error)
	IllustrationURL(ctx context.Context, exerciseID int64) (string, error)
}

type exerciseService struct {
	sel    *selector.Selector
	files  storage.FileStorage // nil when no bucket is configured
	errLog *ErrorLog
}

// NewExerciseService creates a new instance of ExerciseService.
func NewExerciseService(sel *selector.Selector, files storage.FileStorage, errLog *ErrorLog) ExerciseService {
	return &exerciseService{sel: sel, files: files, errLog: errLog}
}

func (s *exerciseService) Create(ctx context.Context, exercise *domain.Exercise) (int64, error) {
	if exercise.Name == "" {
		return 0, errors.New("exercise name is required")
	}
	if exercise.Kind == "" {
		exercise.Kind = domain.KindStrength
	}
	if exercise.Kind != domain.KindStrength && exercise.Kind != domain.KindWarmup {
		return 0, fmt.Errorf("unknown exercise kind %q", exercise.Kind)
	}
	now := time.Now()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now
	id, err := s.sel.Provider().Exercises().Create(ctx, exercise)
	if err != nil {
		return 0, s.errLog.Wrap("exercise create", err)
	}
	return id, nil
}

func (s *exerciseService) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	exercise, err := s.sel.Provider().Exercises().GetByID(ctx, id)
	if err != nil {
		return nil, s.errLog.Wrap("exercise get", err)
	}
	return exercise, nil
}

func (s *exerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.sel.Provider().Exercises().List(ctx)
	if err != nil {
		return nil, s.errLog.Wrap("exercise list", err)
	}
	return exercises, nil
}

func (s *exerciseService) Update(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.Name == "" {
		return errors.New("exercise name is required")
	}
	exercise.UpdatedAt = time.Now()
	if err := s.sel.Provider().Exercises().Update(ctx, exercise); err != nil {
		return s.errLog.Wrap("exercise update", err)
	}
	return nil
}

func (s *exerciseService) Delete(ctx context.Context, id int64) error {
	provider := s.sel.Provider()
	exercise, err := provider.Exercises().GetByID(ctx, id)
	if err != nil {
		return s.errLog.Wrap("exercise delete", err)
	}

	// drop the exercise from every session first so templates never point at
	// a missing catalog entry
	if err := provider.StrengthSessions().RemoveExerciseItems(ctx, id); err != nil {
		return s.errLog.Wrap("exercise delete", err)
	}
	if err := provider.Exercises().Delete(ctx, id); err != nil {
		return s.errLog.Wrap("exercise delete", err)
	}

	if s.files != nil && exercise.Illustration != "" {
		// best effort, an orphaned object is harmless
		_ = s.files.DeleteObject(ctx, exercise.Illustration)
	}
	return nil
}

func (s *exerciseService) RequestIllustrationUpload(ctx context.Context, contentType string) (*IllustrationUpload, error) {
	if s.files == nil {
		return nil, ErrStorageUnavailable
	}
	ext := ""
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	default:
		return nil, fmt.Errorf("unsupported illustration content type %q", contentType)
	}

	key := path.Join("exercises", uuid.NewString()+ext)
	url, err := s.files.GeneratePresignedUploadURL(ctx, key, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}
	return &IllustrationUpload{ObjectKey: key, UploadURL: url}, nil
}

func (s *exerciseService) IllustrationURL(ctx context.Context, exerciseID int64) (string, error) {
	if s.files == nil {
		return "", ErrStorageUnavailable
	}
	exercise, err := s.sel.Provider().Exercises().GetByID(ctx, exerciseID)
	if err != nil {
		return "", s.errLog.Wrap("illustration url", err)
	}
	if exercise.Illustration == "" {
		return "", nil
	}
	return s.files.GeneratePresignedDownloadURL(ctx, exercise.Illustration, storage.DefaultPresignedURLExpiry)
}
