package dto

import (
	"mime/multipart"
	"time"

	"nevod_store/internal/domain/models"

	"github.com/google/uuid"
)

type InformationRequest struct {
	About   string `json:"about" validate:"required"`
	Phone   string `json:"phone" validate:"max=64"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=512"`
}

// InformationResponse представляет контактную информацию в ответе API
type InformationResponse struct {
	ID        uuid.UUID `json:"id"`
	About     string    `json:"about"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BannerWriteInput входные данные замены баннера категории
type BannerWriteInput struct {
	CategoryID uuid.UUID             `json:"category_id" validate:"required"`
	Image      *multipart.FileHeader `json:"-" validate:"required"`
}

type BannerResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Image      string    `json:"image"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ShopLinkRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	URL      string `json:"url" validate:"required,url"`
	Position int    `json:"position" validate:"min=0"`
}

type ShopLinkResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

func ToInformationResponse(info models.Information) *InformationResponse {
	return &InformationResponse{
		ID:        info.ID,
		About:     info.About,
		Phone:     info.Phone,
		Email:     info.Email,
		Address:   info.Address,
		UpdatedAt: info.UpdatedAt,
	}
}

func ToBannerResponse(banner models.CategoryBanner) *BannerResponse {
	return &BannerResponse{
		ID:         banner.ID,
		CategoryID: banner.CategoryID,
		Image:      banner.Image,
		UpdatedAt:  banner.UpdatedAt,
	}
}

func ToShopLinkResponse(link models.ShopLink) *ShopLinkResponse {
	return &ShopLinkResponse{
		ID:        link.ID,
		Title:     link.Title,
		URL:       link.URL,
		Position:  link.Position,
		CreatedAt: link.CreatedAt,
	}
}
