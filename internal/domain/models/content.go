package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Information представляет единственную глобальную запись с контактной
// информацией магазина. Единственность обеспечивается уникальным индексом
// по колонке-маркеру на уровне БД, а не блокировками в приложении.
type Information struct {
	ID        uuid.UUID `json:"id"`
	About     string    `json:"about"`   // Текст "О компании"
	Phone     string    `json:"phone"`   // Контактный телефон
	Email     string    `json:"email"`   // Контактный email
	Address   string    `json:"address"` // Адрес магазина
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryBanner представляет баннер категории.
// На категорию допускается не более одного баннера (уникальный индекс
// по category_id, запись обновляется через upsert).
type CategoryBanner struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Image      string    `json:"image"` // Путь к изображению баннера
	UpdatedAt  time.Time `json:"updated_at"`
}

// ShopLink представляет ссылку на внешний интернет-магазин (маркетплейс)
type ShopLink struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`    // Название площадки
	URL       string    `json:"url"`      // Адрес страницы магазина
	Position  int       `json:"position"` // Порядок отображения
	CreatedAt time.Time `json:"created_at"`
}

// Validate проверяет корректность контактной информации
func (i *Information) Validate() error {
	var validationErrors []string

	if strings.TrimSpace(i.About) == "" {
		validationErrors = append(validationErrors, "about is required")
	}
	if len(i.Phone) > 64 {
		validationErrors = append(validationErrors, "phone must be 64 characters or less")
	}
	if len(i.Email) > 255 {
		validationErrors = append(validationErrors, "email must be 255 characters or less")
	}
	if len(i.Address) > 512 {
		validationErrors = append(validationErrors, "address must be 512 characters or less")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// Validate проверяет корректность ссылки на внешний магазин
func (l *ShopLink) Validate() error {
	var validationErrors []string

	if strings.TrimSpace(l.Title) == "" {
		validationErrors = append(validationErrors, "title is required")
	}
	if len(l.Title) > 255 {
		validationErrors = append(validationErrors, "title must be 255 characters or less")
	}
	if strings.TrimSpace(l.URL) == "" {
		validationErrors = append(validationErrors, "url is required")
	}
	if !strings.HasPrefix(l.URL, "http://") && !strings.HasPrefix(l.URL, "https://") {
		validationErrors = append(validationErrors, "url must start with http:// or https://")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
