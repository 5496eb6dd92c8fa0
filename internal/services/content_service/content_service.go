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
	gocache "github.com/patrickmn/go-cache"
)

const (
	bannerImageDir = "banners"

	informationCacheKey = "information"
	shopLinksCacheKey   = "shop_links"
)

// ContentService обслуживает редко меняющийся контент сайта: страницу
// "о магазине", баннеры категорий и ссылки на внешние маркетплейсы.
// Чтения мемоизируются в памяти процесса, мутации сбрасывают ключ.
type ContentService struct {
	log   *slog.Logger
	repo  repository.ContentRepository
	files storage.FileStorage
	memo  *gocache.Cache
}

func NewContentService(log *slog.Logger, repo repository.ContentRepository, files storage.FileStorage) *ContentService {
	return &ContentService{
		log:   log,
		repo:  repo,
		files: files,
		memo:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// GetInformation возвращает справочную информацию магазина
func (s *ContentService) GetInformation(ctx context.Context) (*dto.InformationResponse, error) {
	const op = "content_service.GetInformation"

	if cached, ok := s.memo.Get(informationCacheKey); ok {
		return cached.(*dto.InformationResponse), nil
	}

	info, err := s.repo.GetInformation(ctx)
	if err != nil {
		s.log.Warn("failed to get information", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.ToInformationResponse(info)
	s.memo.SetDefault(informationCacheKey, resp)

	return resp, nil
}

// SaveInformation создает или полностью заменяет справочную информацию
func (s *ContentService) SaveInformation(ctx context.Context, req dto.InformationRequest) (*dto.InformationResponse, error) {
	const op = "content_service.SaveInformation"

	log := s.log.With(slog.String("op", op))

	info := models.Information{
		About:   req.About,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := info.Validate(); err != nil {
		log.Warn("information validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.UpsertInformation(ctx, info); err != nil {
		log.Error("failed to save information", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.memo.Delete(informationCacheKey)

	saved, err := s.repo.GetInformation(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("information saved")
	return dto.ToInformationResponse(saved), nil
}

// GetCategoryBanner возвращает баннер категории
func (s *ContentService) GetCategoryBanner(ctx context.Context, categoryID uuid.UUID) (*dto.BannerResponse, error) {
	const op = "content_service.GetCategoryBanner"

	cacheKey := bannerCacheKey(categoryID)

	if cached, ok := s.memo.Get(cacheKey); ok {
		return cached.(*dto.BannerResponse), nil
	}

	banner, err := s.repo.GetCategoryBanner(ctx, categoryID)
	if err != nil {
		s.log.Warn("failed to get banner", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.ToBannerResponse(banner)
	s.memo.SetDefault(cacheKey, resp)

	return resp, nil
}

// SaveCategoryBanner создает или заменяет баннер категории.
// Изображение обязательно; старый файл удаляется после записи в БД.
func (s *ContentService) SaveCategoryBanner(ctx context.Context, input dto.BannerWriteInput) (*dto.BannerResponse, error) {
	const op = "content_service.SaveCategoryBanner"

	log := s.log.With(
		slog.String("op", op),
		slog.String("category_id", input.CategoryID.String()),
	)

	if input.Image == nil {
		return nil, &models.ValidationError{Errors: []string{"banner image is required"}}
	}

	var oldImage string
	if current, err := s.repo.GetCategoryBanner(ctx, input.CategoryID); err == nil {
		oldImage = current.Image
	}

	path, _, err := s.files.Save(ctx, input.Image, bannerImageDir)
	if err != nil {
		log.Error("failed to save banner image", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	banner := models.CategoryBanner{
		CategoryID: input.CategoryID,
		Image:      path,
	}

	if _, err := s.repo.UpsertCategoryBanner(ctx, banner); err != nil {
		_ = s.files.Delete(ctx, path)
		log.Error("failed to save banner", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if oldImage != "" && oldImage != path && s.files.Exists(ctx, oldImage) {
		if err := s.files.Delete(ctx, oldImage); err != nil {
			log.Warn("failed to remove old banner image",
				slog.String("path", oldImage), sl.Err(err))
		}
	}

	s.memo.Delete(bannerCacheKey(input.CategoryID))

	saved, err := s.repo.GetCategoryBanner(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("banner saved")
	return dto.ToBannerResponse(saved), nil
}

// CreateShopLink добавляет ссылку на внешний маркетплейс
func (s *ContentService) CreateShopLink(ctx context.Context, req dto.ShopLinkRequest) (*dto.ShopLinkResponse, error) {
	const op = "content_service.CreateShopLink"

	log := s.log.With(slog.String("op", op), slog.String("title", req.Title))

	link := models.ShopLink{
		Title:    req.Title,
		URL:      req.URL,
		Position: req.Position,
	}

	if err := link.Validate(); err != nil {
		log.Warn("shop link validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveShopLink(ctx, link)
	if err != nil {
		log.Error("failed to create shop link", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.memo.Delete(shopLinksCacheKey)
	link.ID = id

	log.Info("shop link created", slog.String("id", id.String()))
	return dto.ToShopLinkResponse(link), nil
}

// UpdateShopLink обновляет ссылку на внешний маркетплейс
func (s *ContentService) UpdateShopLink(ctx context.Context, id uuid.UUID, req dto.ShopLinkRequest) (*dto.ShopLinkResponse, error) {
	const op = "content_service.UpdateShopLink"

	log := s.log.With(slog.String("op", op), slog.String("link_id", id.String()))

	link := models.ShopLink{
		ID:       id,
		Title:    req.Title,
		URL:      req.URL,
		Position: req.Position,
	}

	if err := link.Validate(); err != nil {
		log.Warn("shop link validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateShopLink(ctx, link); err != nil {
		log.Error("failed to update shop link", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.memo.Delete(shopLinksCacheKey)

	return dto.ToShopLinkResponse(link), nil
}

// DeleteShopLink удаляет ссылку
func (s *ContentService) DeleteShopLink(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.DeleteShopLink"

	if err := s.repo.DeleteShopLink(ctx, id); err != nil {
		s.log.Error("failed to delete shop link", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.memo.Delete(shopLinksCacheKey)

	return nil
}

// ListShopLinks возвращает все ссылки в порядке позиции
func (s *ContentService) ListShopLinks(ctx context.Context) ([]dto.ShopLinkResponse, error) {
	const op = "content_service.ListShopLinks"

	if cached, ok := s.memo.Get(shopLinksCacheKey); ok {
		return cached.([]dto.ShopLinkResponse), nil
	}

	links, err := s.repo.ListShopLinks(ctx)
	if err != nil {
		s.log.Error("failed to list shop links", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses := make([]dto.ShopLinkResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, *dto.ToShopLinkResponse(link))
	}

	s.memo.SetDefault(shopLinksCacheKey, responses)

	return responses, nil
}

func bannerCacheKey(categoryID uuid.UUID) string {
	return "banner:" + categoryID.String()
}
