package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nevod_store/internal/domain/models"
	"nevod_store/internal/lib/logger/sl"
	"nevod_store/internal/repository"
	storage "nevod_store/internal/storage/filestorage"
	"nevod_store/internal/transport/http/dto"

	"github.com/google/uuid"
)

const (
	productImageDir = "products"

	// Время жизни страницы каталога в кэше витрины
	listingTTL = 5 * time.Minute
)

// CatalogService управляет категориями и товарами. Публичная выдача
// каталога читается через redis-кэш, любая мутация сбрасывает его целиком.
type CatalogService struct {
	log   *slog.Logger
	repo  repository.CatalogRepository
	files storage.FileStorage
	cache repository.ListingCache
}

func NewCatalogService(log *slog.Logger, repo repository.CatalogRepository, files storage.FileStorage, cache repository.ListingCache) *CatalogService {
	return &CatalogService{
		log:   log,
		repo:  repo,
		files: files,
		cache: cache,
	}
}

// CreateCategory создает категорию товаров
func (s *CatalogService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	const op = "catalog_service.CreateCategory"

	log := s.log.With(slog.String("op", op), slog.String("name", req.Name))

	category := models.Category{Name: req.Name}
	if err := category.Validate(); err != nil {
		log.Warn("category validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveCategory(ctx, category)
	if err != nil {
		log.Error("failed to create category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateListings(ctx)

	created, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category created", slog.String("id", id.String()))
	return dto.ToCategoryResponse(created), nil
}

// UpdateCategory обновляет название категории
func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	const op = "catalog_service.UpdateCategory"

	log := s.log.With(slog.String("op", op), slog.String("category_id", id.String()))

	category := models.Category{ID: id, Name: req.Name}
	if err := category.Validate(); err != nil {
		log.Warn("category validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		log.Error("failed to update category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateListings(ctx)

	updated, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dto.ToCategoryResponse(updated), nil
}

// DeleteCategory удаляет категорию без товаров
func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "catalog_service.DeleteCategory"

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		s.log.Error("failed to delete category", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateListings(ctx)

	return nil
}

// ListCategories возвращает все категории
func (s *CatalogService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	const op = "catalog_service.ListCategories"

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.log.Error("failed to list categories", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, *dto.ToCategoryResponse(category))
	}

	return responses, nil
}

// CreateProduct создает товар, при наличии файла сохраняет изображение
func (s *CatalogService) CreateProduct(ctx context.Context, input dto.ProductWriteInput) (*dto.ProductResponse, error) {
	const op = "catalog_service.CreateProduct"

	log := s.log.With(slog.String("op", op), slog.String("name", input.Name))

	log.Info("creating product")

	product := models.Product{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Image != nil {
		path, _, err := s.files.Save(ctx, input.Image, productImageDir)
		if err != nil {
			log.Error("failed to save product image", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		product.Image = path
	}

	id, err := s.repo.SaveProduct(ctx, product)
	if err != nil {
		// Удаляем файл, если не удалось сохранить в БД
		if product.Image != "" {
			_ = s.files.Delete(ctx, product.Image)
		}
		log.Error("failed to create product", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateListings(ctx)

	created, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("product created", slog.String("id", id.String()))
	return dto.ToProductResponse(created), nil
}

// UpdateProduct обновляет товар. Новый файл вытесняет старое изображение,
// старый файл удаляется после успешной записи в БД.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input dto.ProductWriteInput) (*dto.ProductResponse, error) {
	const op = "catalog_service.UpdateProduct"

	log := s.log.With(slog.String("op", op), slog.String("product_id", id.String()))

	log.Info("updating product")

	current, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		log.Warn("failed to load product", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	product := models.Product{
		ID:          current.ID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       current.Image,
	}

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Image != nil {
		path, _, err := s.files.Save(ctx, input.Image, productImageDir)
		if err != nil {
			log.Error("failed to save product image", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		product.Image = path
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		if input.Image != nil && product.Image != current.Image {
			_ = s.files.Delete(ctx, product.Image)
		}
		log.Error("failed to update product", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Старое изображение больше не используется
	if input.Image != nil && current.Image != "" && current.Image != product.Image {
		if s.files.Exists(ctx, current.Image) {
			if err := s.files.Delete(ctx, current.Image); err != nil {
				log.Warn("failed to remove old product image",
					slog.String("path", current.Image), sl.Err(err))
			}
		}
	}

	s.invalidateListings(ctx)

	updated, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dto.ToProductResponse(updated), nil
}

// DeleteProduct удаляет товар и best-effort его изображение
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	const op = "catalog_service.DeleteProduct"

	log := s.log.With(slog.String("op", op), slog.String("product_id", id.String()))

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		log.Warn("failed to load product", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		log.Error("failed to delete product", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if product.Image != "" && s.files.Exists(ctx, product.Image) {
		if err := s.files.Delete(ctx, product.Image); err != nil {
			log.Warn("failed to remove product image",
				slog.String("path", product.Image), sl.Err(err))
		}
	}

	s.invalidateListings(ctx)

	log.Info("product deleted")
	return nil
}

// GetProductByID возвращает товар по ID
func (s *CatalogService) GetProductByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	const op = "catalog_service.GetProductByID"

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		s.log.Warn("failed to get product", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dto.ToProductResponse(product), nil
}

// ListProducts возвращает страницу каталога, по возможности из кэша.
// Ошибки кэша не фатальны - выдача строится из БД.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID uuid.UUID, page, perPage int) (*dto.ProductListResponse, error) {
	const op = "catalog_service.ListProducts"

	log := s.log.With(slog.String("op", op))

	if cached, err := s.cache.GetProductListing(ctx, categoryID, page, perPage); err != nil {
		log.Warn("listing cache read failed", sl.Err(err))
	} else if cached != nil {
		return s.toListResponse(cached.Products, cached.Total, page, perPage), nil
	}

	products, total, err := s.repo.ListProducts(ctx, categoryID, page, perPage)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	listing := repository.ProductListing{Products: products, Total: total}
	if err := s.cache.SetProductListing(ctx, categoryID, page, perPage, listing, listingTTL); err != nil {
		log.Warn("listing cache write failed", sl.Err(err))
	}

	return s.toListResponse(products, total, page, perPage), nil
}

func (s *CatalogService) toListResponse(products []models.Product, total, page, perPage int) *dto.ProductListResponse {
	responses := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, *dto.ToProductResponse(product))
	}

	return &dto.ProductListResponse{
		Products: responses,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}
}

func (s *CatalogService) invalidateListings(ctx context.Context) {
	if err := s.cache.InvalidateProductListings(ctx); err != nil {
		s.log.Warn("failed to invalidate listing cache", sl.Err(err))
	}
}
