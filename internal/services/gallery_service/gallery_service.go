package services

import (
	"context"
	"fmt"
	"log/slog"

	"nevod_store/internal/domain/models"
	"nevod_store/internal/lib/logger/sl"
	"nevod_store/internal/repository"
	storage "nevod_store/internal/storage/filestorage"
	"nevod_store/internal/transport/http/dto"

	"github.com/google/uuid"
)

// GalleryService единая точка входа для создания/обновления/удаления
// агрегата галереи. Каждая операция выполняется одной транзакцией БД;
// уборка старых файлов происходит после коммита и не влияет на результат.
type GalleryService struct {
	log    *slog.Logger
	repo   repository.GalleryRepository
	files  storage.FileStorage
	policy *attachmentPolicy
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, files storage.FileStorage) *GalleryService {
	return &GalleryService{
		log:    log,
		repo:   repo,
		files:  files,
		policy: &attachmentPolicy{log: log, files: files},
	}
}

// CreateGallery создает галерею. Обязателен ровно один из медиафайлов;
// все строки формы становятся новыми дочерними записями.
func (s *GalleryService) CreateGallery(ctx context.Context, input dto.GalleryWriteInput) (*dto.GalleryResponse, error) {
	const op = "gallery_service.CreateGallery"

	log := s.log.With(
		slog.String("op", op),
		slog.String("title", input.Title),
	)

	log.Info("creating gallery")

	if input.Image == nil && input.Video == nil {
		return nil, &models.ValidationError{Errors: []string{"exactly one of image or video is required"}}
	}

	plan, err := reconcileItems(nil, input.Items)
	if err != nil {
		log.Warn("invalid gallery items", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	state, _, err := s.policy.apply(ctx, mediaState{}, input.Image, input.Video)
	if err != nil {
		log.Error("failed to store media file", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	gallery := models.Gallery{
		Title:       input.Title,
		Description: input.Description,
		Image:       state.image,
		Video:       state.video,
	}

	if err := gallery.Validate(); err != nil {
		// Файл уже записан - убираем за собой
		s.policy.cleanup(ctx, state.refs())
		log.Warn("gallery validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.CreateGallery(ctx, gallery, plan.Insert)
	if err != nil {
		// Транзакция откатилась, записанный файл осиротел
		s.policy.cleanup(ctx, state.refs())
		log.Error("failed to create gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.GetGalleryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery created successfully", slog.String("id", id.String()))
	return dto.ToGalleryResponse(created), nil
}

// UpdateGallery обновляет поля галереи, при необходимости заменяет
// медиафайл и приводит дочерние записи к отправленному состоянию.
// Отсутствие обоих файлов означает, что медиа не меняется.
func (s *GalleryService) UpdateGallery(ctx context.Context, galleryID uuid.UUID, input dto.GalleryWriteInput) (*dto.GalleryResponse, error) {
	const op = "gallery_service.UpdateGallery"

	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
	)

	log.Info("updating gallery")

	current, err := s.repo.GetGalleryByID(ctx, galleryID)
	if err != nil {
		log.Warn("failed to load gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	plan, err := reconcileItems(current.Items, input.Items)
	if err != nil {
		log.Warn("invalid gallery items", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	state, removals, err := s.policy.apply(ctx,
		mediaState{image: current.Image, video: current.Video},
		input.Image, input.Video,
	)
	if err != nil {
		log.Error("failed to store media file", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	gallery := models.Gallery{
		ID:          current.ID,
		Title:       input.Title,
		Description: input.Description,
		Image:       state.image,
		Video:       state.video,
	}

	if err := gallery.Validate(); err != nil {
		if state.image != current.Image || state.video != current.Video {
			s.policy.cleanup(ctx, state.refs())
		}
		log.Warn("gallery validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateGallery(ctx, gallery, plan); err != nil {
		if state.image != current.Image || state.video != current.Video {
			s.policy.cleanup(ctx, state.refs())
		}
		log.Error("failed to update gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Коммит прошел, старые файлы больше никем не используются
	s.policy.cleanup(ctx, removals)

	updated, err := s.repo.GetGalleryByID(ctx, galleryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery updated successfully")
	return dto.ToGalleryResponse(updated), nil
}

// DeleteGallery удаляет галерею вместе с дочерними записями одной
// транзакцией, затем best-effort удаляет прикрепленный медиафайл.
func (s *GalleryService) DeleteGallery(ctx context.Context, galleryID uuid.UUID) error {
	const op = "gallery_service.DeleteGallery"

	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
	)

	log.Info("deleting gallery")

	gallery, err := s.repo.GetGalleryByID(ctx, galleryID)
	if err != nil {
		log.Warn("failed to load gallery", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteGallery(ctx, galleryID); err != nil {
		log.Error("failed to delete gallery", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.policy.cleanup(ctx, []string{gallery.Image, gallery.Video})

	log.Info("gallery deleted successfully")
	return nil
}

// GetGalleryByID возвращает галерею вместе с дочерними записями
func (s *GalleryService) GetGalleryByID(ctx context.Context, galleryID uuid.UUID) (*dto.GalleryResponse, error) {
	const op = "gallery_service.GetGalleryByID"

	gallery, err := s.repo.GetGalleryByID(ctx, galleryID)
	if err != nil {
		s.log.Warn("failed to get gallery", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dto.ToGalleryResponse(gallery), nil
}

// ListGalleries возвращает список галерей с пагинацией
func (s *GalleryService) ListGalleries(ctx context.Context, page, perPage int) (*dto.GalleryListResponse, error) {
	const op = "gallery_service.ListGalleries"

	galleries, total, err := s.repo.ListGalleries(ctx, page, perPage)
	if err != nil {
		s.log.Error("failed to list galleries", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses := make([]dto.GalleryResponse, 0, len(galleries))
	for _, gallery := range galleries {
		responses = append(responses, *dto.ToGalleryResponse(gallery))
	}

	return &dto.GalleryListResponse{
		Galleries: responses,
		Total:     total,
		Page:      page,
		PerPage:   perPage,
	}, nil
}
