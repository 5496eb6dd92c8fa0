package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"nevod_store/internal/domain/models"
	"nevod_store/internal/lib/logger/sl"
	appstorage "nevod_store/internal/storage"
	filestorage "nevod_store/internal/storage/filestorage"
	"nevod_store/internal/transport/http/dto"
	"nevod_store/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type GalleryService interface {
	CreateGallery(ctx context.Context, input dto.GalleryWriteInput) (*dto.GalleryResponse, error)
	UpdateGallery(ctx context.Context, galleryID uuid.UUID, input dto.GalleryWriteInput) (*dto.GalleryResponse, error)
	DeleteGallery(ctx context.Context, galleryID uuid.UUID) error
	GetGalleryByID(ctx context.Context, galleryID uuid.UUID) (*dto.GalleryResponse, error)
	ListGalleries(ctx context.Context, page, perPage int) (*dto.GalleryListResponse, error)
}

type CatalogService interface {
	CreateCategory(ctx context.Context, req dto.CategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req dto.CategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)

	CreateProduct(ctx context.Context, input dto.ProductWriteInput) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input dto.ProductWriteInput) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, categoryID uuid.UUID, page, perPage int) (*dto.ProductListResponse, error)
}

type ContentService interface {
	GetInformation(ctx context.Context) (*dto.InformationResponse, error)
	SaveInformation(ctx context.Context, req dto.InformationRequest) (*dto.InformationResponse, error)

	GetCategoryBanner(ctx context.Context, categoryID uuid.UUID) (*dto.BannerResponse, error)
	SaveCategoryBanner(ctx context.Context, input dto.BannerWriteInput) (*dto.BannerResponse, error)

	CreateShopLink(ctx context.Context, req dto.ShopLinkRequest) (*dto.ShopLinkResponse, error)
	UpdateShopLink(ctx context.Context, id uuid.UUID, req dto.ShopLinkRequest) (*dto.ShopLinkResponse, error)
	DeleteShopLink(ctx context.Context, id uuid.UUID) error
	ListShopLinks(ctx context.Context) ([]dto.ShopLinkResponse, error)
}

type Routers struct {
	log            *slog.Logger
	GalleryService GalleryService
	CatalogService CatalogService
	ContentService ContentService
}

func NewRouter(log *slog.Logger, galleryService GalleryService, catalogService CatalogService, contentService ContentService) *Routers {
	return &Routers{
		log:            log,
		GalleryService: galleryService,
		CatalogService: catalogService,
		ContentService: contentService,
	}
}

// CreateGallery godoc
// @Summary Создание галереи
// @Description Создает галерею из multipart-формы. Обязателен ровно один из файлов image/video.
// @Tags Галереи
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Заголовок галереи"
// @Param description formData string true "Описание галереи"
// @Param image formData file false "Изображение (взаимоисключимо с video)"
// @Param video formData file false "Видео (взаимоисключимо с image)"
// @Param items formData string false "Дочерние записи в JSON-формате"
// @Success 201 {object} response.Response{data=dto.GalleryResponse} "Созданная галерея"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 413 {object} response.ErrorResponse "Превышен максимальный размер файла"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /api/v1/galleries [post]
func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	input, err := r.parseGalleryForm(c)
	if err != nil {
		log.Warn("invalid gallery form", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	gallery, err := r.GalleryService.CreateGallery(c.Request().Context(), *input)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(gallery))
}

// UpdateGallery godoc
// @Summary Обновление галереи
// @Description Обновляет поля галереи и приводит дочерние записи к отправленному состоянию. Отсутствие файлов означает, что медиа не меняется.
// @Tags Галереи
// @Accept multipart/form-data
// @Produce json
// @Param gallery_id path string true "UUID галереи" format(uuid)
// @Param title formData string true "Заголовок галереи"
// @Param description formData string true "Описание галереи"
// @Param image formData file false "Новое изображение"
// @Param video formData file false "Новое видео"
// @Param items formData string false "Дочерние записи в JSON-формате"
// @Success 200 {object} response.Response{data=dto.GalleryResponse} "Обновленная галерея"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Галерея не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /api/v1/galleries/{gallery_id} [put]
func (r *Routers) UpdateGallery(c echo.Context) error {
	const op = "http.routers.UpdateGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		log.Warn("invalid gallery id", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	input, err := r.parseGalleryForm(c)
	if err != nil {
		log.Warn("invalid gallery form", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	gallery, err := r.GalleryService.UpdateGallery(c.Request().Context(), galleryID, *input)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(gallery))
}

// DeleteGallery godoc
// @Summary Удаление галереи
// @Description Удаляет галерею вместе с дочерними записями и медиафайлом
// @Tags Галереи
// @Produce json
// @Param gallery_id path string true "UUID галереи" format(uuid)
// @Success 204 "Галерея удалена"
// @Failure 404 {object} response.ErrorResponse "Галерея не найдена"
// @Security ApiKeyAuth
// @Router /api/v1/galleries/{gallery_id} [delete]
func (r *Routers) DeleteGallery(c echo.Context) error {
	const op = "http.routers.DeleteGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	if err := r.GalleryService.DeleteGallery(c.Request().Context(), galleryID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetGallery godoc
// @Summary Получение галереи
// @Tags Галереи
// @Produce json
// @Param gallery_id path string true "UUID галереи" format(uuid)
// @Success 200 {object} response.Response{data=dto.GalleryResponse} "Галерея"
// @Failure 404 {object} response.ErrorResponse "Галерея не найдена"
// @Router /api/v1/galleries/{gallery_id} [get]
func (r *Routers) GetGallery(c echo.Context) error {
	const op = "http.routers.GetGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	gallery, err := r.GalleryService.GetGalleryByID(c.Request().Context(), galleryID)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(gallery))
}

// ListGalleries godoc
// @Summary Список галерей
// @Tags Галереи
// @Produce json
// @Param page query int false "Номер страницы (от 1)"
// @Param per_page query int false "Размер страницы"
// @Success 200 {object} response.Response{data=dto.GalleryListResponse} "Страница галерей"
// @Router /api/v1/galleries [get]
func (r *Routers) ListGalleries(c echo.Context) error {
	const op = "http.routers.ListGalleries"

	log := r.log.With(
		slog.String("op", op),
	)

	page, perPage := parsePagination(c)

	galleries, err := r.GalleryService.ListGalleries(c.Request().Context(), page, perPage)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(galleries))
}

func (r *Routers) CreateCategory(c echo.Context) error {
	const op = "http.routers.CreateCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid category request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	category, err := r.CatalogService.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(category))
}

func (r *Routers) UpdateCategory(c echo.Context) error {
	const op = "http.routers.UpdateCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid category request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	category, err := r.CatalogService.UpdateCategory(c.Request().Context(), categoryID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(category))
}

func (r *Routers) DeleteCategory(c echo.Context) error {
	const op = "http.routers.DeleteCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	if err := r.CatalogService.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListCategories godoc
// @Summary Список категорий товаров
// @Tags Каталог
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.CategoryResponse} "Категории"
// @Router /api/v1/categories [get]
func (r *Routers) ListCategories(c echo.Context) error {
	const op = "http.routers.ListCategories"

	log := r.log.With(
		slog.String("op", op),
	)

	categories, err := r.CatalogService.ListCategories(c.Request().Context())
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(categories))
}

// CreateProduct godoc
// @Summary Создание товара
// @Description Создает товар из multipart-формы с опциональным изображением
// @Tags Каталог
// @Accept multipart/form-data
// @Produce json
// @Param category_id formData string true "UUID категории" format(uuid)
// @Param name formData string true "Название товара"
// @Param description formData string false "Описание товара"
// @Param price formData integer true "Цена в копейках"
// @Param image formData file false "Изображение товара"
// @Success 201 {object} response.Response{data=dto.ProductResponse} "Созданный товар"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Security ApiKeyAuth
// @Router /api/v1/products [post]
func (r *Routers) CreateProduct(c echo.Context) error {
	const op = "http.routers.CreateProduct"

	log := r.log.With(
		slog.String("op", op),
	)

	input, err := parseProductForm(c)
	if err != nil {
		log.Warn("invalid product form", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	product, err := r.CatalogService.CreateProduct(c.Request().Context(), *input)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(product))
}

func (r *Routers) UpdateProduct(c echo.Context) error {
	const op = "http.routers.UpdateProduct"

	log := r.log.With(
		slog.String("op", op),
	)

	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid product ID format"))
	}

	input, err := parseProductForm(c)
	if err != nil {
		log.Warn("invalid product form", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	product, err := r.CatalogService.UpdateProduct(c.Request().Context(), productID, *input)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(product))
}

func (r *Routers) DeleteProduct(c echo.Context) error {
	const op = "http.routers.DeleteProduct"

	log := r.log.With(
		slog.String("op", op),
	)

	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid product ID format"))
	}

	if err := r.CatalogService.DeleteProduct(c.Request().Context(), productID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) GetProduct(c echo.Context) error {
	const op = "http.routers.GetProduct"

	log := r.log.With(
		slog.String("op", op),
	)

	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid product ID format"))
	}

	product, err := r.CatalogService.GetProductByID(c.Request().Context(), productID)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(product))
}

// ListProducts godoc
// @Summary Страница каталога товаров
// @Tags Каталог
// @Produce json
// @Param category_id query string false "UUID категории (без фильтра - все товары)" format(uuid)
// @Param page query int false "Номер страницы (от 1)"
// @Param per_page query int false "Размер страницы"
// @Success 200 {object} response.Response{data=dto.ProductListResponse} "Страница товаров"
// @Router /api/v1/products [get]
func (r *Routers) ListProducts(c echo.Context) error {
	const op = "http.routers.ListProducts"

	log := r.log.With(
		slog.String("op", op),
	)

	categoryID := uuid.Nil
	if raw := c.QueryParam("category_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
		}
		categoryID = parsed
	}

	page, perPage := parsePagination(c)

	products, err := r.CatalogService.ListProducts(c.Request().Context(), categoryID, page, perPage)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(products))
}

// GetInformation godoc
// @Summary Справочная информация магазина
// @Tags Контент
// @Produce json
// @Success 200 {object} response.Response{data=dto.InformationResponse} "Информация"
// @Failure 404 {object} response.ErrorResponse "Информация еще не заполнена"
// @Router /api/v1/information [get]
func (r *Routers) GetInformation(c echo.Context) error {
	const op = "http.routers.GetInformation"

	log := r.log.With(
		slog.String("op", op),
	)

	info, err := r.ContentService.GetInformation(c.Request().Context())
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(info))
}

func (r *Routers) SaveInformation(c echo.Context) error {
	const op = "http.routers.SaveInformation"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.InformationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid information request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	info, err := r.ContentService.SaveInformation(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(info))
}

func (r *Routers) GetCategoryBanner(c echo.Context) error {
	const op = "http.routers.GetCategoryBanner"

	log := r.log.With(
		slog.String("op", op),
	)

	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	banner, err := r.ContentService.GetCategoryBanner(c.Request().Context(), categoryID)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(banner))
}

// SaveCategoryBanner godoc
// @Summary Замена баннера категории
// @Tags Контент
// @Accept multipart/form-data
// @Produce json
// @Param category_id path string true "UUID категории" format(uuid)
// @Param image formData file true "Изображение баннера"
// @Success 200 {object} response.Response{data=dto.BannerResponse} "Сохраненный баннер"
// @Failure 400 {object} response.ErrorResponse "Изображение не передано"
// @Security ApiKeyAuth
// @Router /api/v1/categories/{category_id}/banner [put]
func (r *Routers) SaveCategoryBanner(c echo.Context) error {
	const op = "http.routers.SaveCategoryBanner"

	log := r.log.With(
		slog.String("op", op),
	)

	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	image, err := formFile(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	banner, err := r.ContentService.SaveCategoryBanner(c.Request().Context(), dto.BannerWriteInput{
		CategoryID: categoryID,
		Image:      image,
	})
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(banner))
}

func (r *Routers) CreateShopLink(c echo.Context) error {
	const op = "http.routers.CreateShopLink"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ShopLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid shop link request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	link, err := r.ContentService.CreateShopLink(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(link))
}

func (r *Routers) UpdateShopLink(c echo.Context) error {
	const op = "http.routers.UpdateShopLink"

	log := r.log.With(
		slog.String("op", op),
	)

	linkID, err := uuid.Parse(c.Param("link_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid link ID format"))
	}

	var req dto.ShopLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid shop link request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	link, err := r.ContentService.UpdateShopLink(c.Request().Context(), linkID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(link))
}

func (r *Routers) DeleteShopLink(c echo.Context) error {
	const op = "http.routers.DeleteShopLink"

	log := r.log.With(
		slog.String("op", op),
	)

	linkID, err := uuid.Parse(c.Param("link_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid link ID format"))
	}

	if err := r.ContentService.DeleteShopLink(c.Request().Context(), linkID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListShopLinks godoc
// @Summary Ссылки на внешние маркетплейсы
// @Tags Контент
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.ShopLinkResponse} "Ссылки в порядке позиции"
// @Router /api/v1/shop-links [get]
func (r *Routers) ListShopLinks(c echo.Context) error {
	const op = "http.routers.ListShopLinks"

	log := r.log.With(
		slog.String("op", op),
	)

	links, err := r.ContentService.ListShopLinks(c.Request().Context())
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(links))
}

// parseGalleryForm собирает входные данные галереи из multipart-формы.
// Отсутствие файла не считается ошибкой: решение, обязателен ли файл,
// принимает сервисный слой.
func (r *Routers) parseGalleryForm(c echo.Context) (*dto.GalleryWriteInput, error) {
	input := dto.GalleryWriteInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	image, err := formFile(c, "image")
	if err != nil {
		return nil, err
	}
	input.Image = image

	video, err := formFile(c, "video")
	if err != nil {
		return nil, err
	}
	input.Video = video

	if raw := c.FormValue("items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Items); err != nil {
			return nil, errors.New("items must be a valid JSON array")
		}
	}

	if err := c.Validate(input); err != nil {
		return nil, err
	}

	return &input, nil
}

func parseProductForm(c echo.Context) (*dto.ProductWriteInput, error) {
	categoryID, err := uuid.Parse(c.FormValue("category_id"))
	if err != nil {
		return nil, errors.New("invalid category ID format")
	}

	price, err := strconv.ParseInt(c.FormValue("price"), 10, 64)
	if err != nil {
		return nil, errors.New("price must be an integer amount in kopecks")
	}

	input := dto.ProductWriteInput{
		CategoryID:  categoryID,
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
	}

	image, err := formFile(c, "image")
	if err != nil {
		return nil, err
	}
	input.Image = image

	if err := c.Validate(input); err != nil {
		return nil, err
	}

	return &input, nil
}

// formFile возвращает nil без ошибки, если поле не передано
func formFile(c echo.Context, name string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}

func parsePagination(c echo.Context) (int, int) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 || perPage > 100 {
		perPage = 20
	}

	return page, perPage
}

// respondError переводит ошибки сервисного слоя в HTTP-статусы
func (r *Routers) respondError(c echo.Context, log *slog.Logger, err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", ve.Error()))
	}

	switch {
	case errors.Is(err, appstorage.ErrGalleryNotFound),
		errors.Is(err, appstorage.ErrGalleryItemNotFound),
		errors.Is(err, appstorage.ErrCategoryNotFound),
		errors.Is(err, appstorage.ErrProductNotFound),
		errors.Is(err, appstorage.ErrInformationNotFound),
		errors.Is(err, appstorage.ErrBannerNotFound),
		errors.Is(err, appstorage.ErrShopLinkNotFound):
		log.Warn("resource not found", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrNotFound)

	case errors.Is(err, filestorage.ErrFileTooLarge):
		log.Warn("file too large", sl.Err(err))
		return c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponseWithDetails("file_too_large", err.Error()))

	default:
		log.Error("internal error", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
}
