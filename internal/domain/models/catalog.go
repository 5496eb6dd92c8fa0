package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category представляет категорию товаров (например, "Невода", "Бредни")
type Category struct {
	ID        uuid.UUID `json:"id"`   // Уникальный идентификатор категории
	Name      string    `json:"name"` // Название категории
	CreatedAt time.Time `json:"created_at"`
}

// Product представляет товар каталога
type Product struct {
	ID          uuid.UUID `json:"id"`              // Уникальный идентификатор товара
	CategoryID  uuid.UUID `json:"category_id"`     // Идентификатор категории
	Name        string    `json:"name"`            // Название товара
	Description string    `json:"description"`     // Описание товара
	Image       string    `json:"image,omitempty"` // Путь к изображению в файловом хранилище
	Price       int64     `json:"price"`           // Цена в копейках
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate проверяет корректность данных категории
func (c *Category) Validate() error {
	var validationErrors []string

	if strings.TrimSpace(c.Name) == "" {
		validationErrors = append(validationErrors, "name is required")
	}
	if len(c.Name) > 255 {
		validationErrors = append(validationErrors, "name must be 255 characters or less")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// Validate проверяет корректность данных товара
func (p *Product) Validate() error {
	var validationErrors []string

	if p.CategoryID == uuid.Nil {
		validationErrors = append(validationErrors, "category_id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		validationErrors = append(validationErrors, "name is required")
	}
	if len(p.Name) > 255 {
		validationErrors = append(validationErrors, "name must be 255 characters or less")
	}
	if len(p.Description) > 1000 {
		validationErrors = append(validationErrors, "description must be 1000 characters or less")
	}
	if p.Price < 0 {
		validationErrors = append(validationErrors, "price must not be negative")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
