package dto

import (
	"mime/multipart"
	"time"

	"nevod_store/internal/domain/models"

	"github.com/google/uuid"
)

// GalleryItemInput представляет строку дочерней записи из формы.
// Пустой ID означает новую запись; непустой ID должен принадлежать
// существующей записи этой галереи.
type GalleryItemInput struct {
	ID  uuid.UUID `json:"id,omitempty"`
	Tag string    `json:"tag"`
}

// GalleryWriteInput входные данные создания/обновления галереи.
// Файлы приходят из multipart-формы; при создании обязателен ровно один
// из Image/Video, при обновлении оба опциональны (медиа не меняется).
type GalleryWriteInput struct {
	Title       string                `json:"title" validate:"required,max=255"`
	Description string                `json:"description" validate:"required,max=1000"`
	Image       *multipart.FileHeader `json:"-"`
	Video       *multipart.FileHeader `json:"-"`
	Items       []GalleryItemInput    `json:"items"`
}

// GalleryItemResponse представляет дочернюю запись галереи в ответе API
type GalleryItemResponse struct {
	ID  uuid.UUID `json:"id"`
	Tag string    `json:"tag"`
}

// GalleryResponse представляет галерею в ответе API
type GalleryResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Image       string                `json:"image,omitempty"`
	Video       string                `json:"video,omitempty"`
	Items       []GalleryItemResponse `json:"items"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type GalleryListResponse struct {
	Galleries []GalleryResponse `json:"galleries"`
	Total     int               `json:"total"`
	Page      int               `json:"page"`
	PerPage   int               `json:"per_page"`
}

// ToGalleryResponse преобразует доменную модель в DTO
func ToGalleryResponse(gallery models.Gallery) *GalleryResponse {
	items := make([]GalleryItemResponse, 0, len(gallery.Items))
	for _, item := range gallery.Items {
		items = append(items, GalleryItemResponse{ID: item.ID, Tag: item.Tag})
	}

	return &GalleryResponse{
		ID:          gallery.ID,
		Title:       gallery.Title,
		Description: gallery.Description,
		Image:       gallery.Image,
		Video:       gallery.Video,
		Items:       items,
		CreatedAt:   gallery.CreatedAt,
		UpdatedAt:   gallery.UpdatedAt,
	}
}
