package dto

import (
	"mime/multipart"
	"time"

	"nevod_store/internal/domain/models"

	"github.com/google/uuid"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CategoryResponse представляет категорию в ответе API
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductWriteInput входные данные создания/обновления товара.
// Image опционален: при обновлении отсутствие файла означает,
// что изображение не меняется.
type ProductWriteInput struct {
	CategoryID  uuid.UUID             `json:"category_id" validate:"required"`
	Name        string                `json:"name" validate:"required,max=255"`
	Description string                `json:"description" validate:"max=1000"`
	Price       int64                 `json:"price" validate:"min=0"`
	Image       *multipart.FileHeader `json:"-"`
}

// ProductResponse представляет товар в ответе API
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}

func ToCategoryResponse(category models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}

func ToProductResponse(product models.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		Name:        product.Name,
		Description: product.Description,
		Image:       product.Image,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
