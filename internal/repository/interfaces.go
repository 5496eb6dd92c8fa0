package repository

import (
	"context"
	"time"

	"nevod_store/internal/domain/models"

	"github.com/google/uuid"
)

type GalleryRepository interface {
	CreateGallery(ctx context.Context, gallery models.Gallery, items []models.GalleryItem) (uuid.UUID, error)
	UpdateGallery(ctx context.Context, gallery models.Gallery, plan models.GalleryItemPlan) error
	DeleteGallery(ctx context.Context, id uuid.UUID) error
	GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error)
	ListGalleries(ctx context.Context, page, perPage int) ([]models.Gallery, int, error)
}

type CatalogRepository interface {
	SaveCategory(ctx context.Context, category models.Category) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)

	SaveProduct(ctx context.Context, product models.Product) (uuid.UUID, error)
	UpdateProduct(ctx context.Context, product models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProductByID(ctx context.Context, id uuid.UUID) (models.Product, error)
	ListProducts(ctx context.Context, categoryID uuid.UUID, page, perPage int) ([]models.Product, int, error)
}

type ContentRepository interface {
	GetInformation(ctx context.Context) (models.Information, error)
	UpsertInformation(ctx context.Context, info models.Information) (uuid.UUID, error)

	GetCategoryBanner(ctx context.Context, categoryID uuid.UUID) (models.CategoryBanner, error)
	UpsertCategoryBanner(ctx context.Context, banner models.CategoryBanner) (uuid.UUID, error)

	SaveShopLink(ctx context.Context, link models.ShopLink) (uuid.UUID, error)
	UpdateShopLink(ctx context.Context, link models.ShopLink) error
	DeleteShopLink(ctx context.Context, id uuid.UUID) error
	ListShopLinks(ctx context.Context) ([]models.ShopLink, error)
}

type ListingCache interface {
	GetProductListing(ctx context.Context, categoryID uuid.UUID, page, perPage int) (*ProductListing, error)
	SetProductListing(ctx context.Context, categoryID uuid.UUID, page, perPage int, listing ProductListing, ttl time.Duration) error
	InvalidateProductListings(ctx context.Context) error
}
