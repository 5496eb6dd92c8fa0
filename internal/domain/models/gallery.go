package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gallery представляет фотогалерею магазина (корневой агрегат).
// Инвариант: одновременно может быть заполнено не более одного из полей
// Image/Video, при создании ровно одно из них обязательно.
type Gallery struct {
	ID          uuid.UUID     `json:"id"`              // Уникальный идентификатор галереи
	Title       string        `json:"title"`           // Заголовок галереи
	Description string        `json:"description"`     // Описание галереи
	Image       string        `json:"image,omitempty"` // Путь к изображению в файловом хранилище
	Video       string        `json:"video,omitempty"` // Путь к видеофайлу в файловом хранилище
	Items       []GalleryItem `json:"items"`           // Дочерние записи (теги галереи)
	CreatedAt   time.Time     `json:"created_at"`      // Дата создания
	UpdatedAt   time.Time     `json:"updated_at"`      // Дата последнего обновления
}

// GalleryItem представляет дочернюю запись галереи.
// Жизненный цикл записи привязан к родительской галерее.
type GalleryItem struct {
	ID        uuid.UUID `json:"id"`         // Уникальный идентификатор записи
	GalleryID uuid.UUID `json:"gallery_id"` // Идентификатор родительской галереи
	Tag       string    `json:"tag"`        // Текст тега (непустой, до 255 символов)
	Position  int       `json:"position"`   // Порядок отображения
	CreatedAt time.Time `json:"created_at"`
}

// GalleryItemPlan описывает план приведения дочерней коллекции к отправленному
// состоянию. Применяется репозиторием внутри одной транзакции: сначала
// удаления, затем обновления, затем вставки в порядке отправки.
type GalleryItemPlan struct {
	Delete []uuid.UUID
	Update []GalleryItem
	Insert []GalleryItem
}

// HasMedia сообщает, прикреплен ли к галерее медиафайл
func (g *Gallery) HasMedia() bool {
	return g.Image != "" || g.Video != ""
}

// Validate проверяет корректность данных галереи
func (g *Gallery) Validate() error {
	var validationErrors []string

	if strings.TrimSpace(g.Title) == "" {
		validationErrors = append(validationErrors, "title is required")
	}
	if len(g.Title) > 255 {
		validationErrors = append(validationErrors, "title must be 255 characters or less")
	}
	if strings.TrimSpace(g.Description) == "" {
		validationErrors = append(validationErrors, "description is required")
	}
	if len(g.Description) > 1000 {
		validationErrors = append(validationErrors, "description must be 1000 characters or less")
	}
	if g.Image != "" && g.Video != "" {
		validationErrors = append(validationErrors, "image and video are mutually exclusive")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// ValidationError кастомный тип ошибки для валидации входных данных
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// IsValidationError проверяет, является ли ошибка ошибкой валидации
// (в том числе обернутой через %w)
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
