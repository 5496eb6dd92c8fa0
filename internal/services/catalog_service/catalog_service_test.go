package services_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"nevod_store/internal/domain/models"
	"nevod_store/internal/repository"
	services "nevod_store/internal/services/catalog_service"
	"nevod_store/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) SaveCategory(ctx context.Context, category models.Category) (uuid.UUID, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCatalogRepository) UpdateCategory(ctx context.Context, category models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCatalogRepository) SaveProduct(ctx context.Context, product models.Product) (uuid.UUID, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, product models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetProductByID(ctx context.Context, id uuid.UUID) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, categoryID uuid.UUID, page, perPage int) ([]models.Product, int, error) {
	args := m.Called(ctx, categoryID, page, perPage)
	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, file *multipart.FileHeader, subPath string) (string, int64, error) {
	args := m.Called(ctx, file, subPath)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStorage) Delete(ctx context.Context, filePath string) error {
	args := m.Called(ctx, filePath)
	return args.Error(0)
}

func (m *MockFileStorage) Exists(ctx context.Context, filePath string) bool {
	args := m.Called(ctx, filePath)
	return args.Bool(0)
}

func (m *MockFileStorage) GetFullPath(relativePath string) string {
	args := m.Called(relativePath)
	return args.String(0)
}

func (m *MockFileStorage) BaseURL() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockFileStorage) GetBaseDir() string {
	args := m.Called()
	return args.String(0)
}

type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) GetProductListing(ctx context.Context, categoryID uuid.UUID, page, perPage int) (*repository.ProductListing, error) {
	args := m.Called(ctx, categoryID, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductListing), args.Error(1)
}

func (m *MockListingCache) SetProductListing(ctx context.Context, categoryID uuid.UUID, page, perPage int, listing repository.ProductListing, ttl time.Duration) error {
	args := m.Called(ctx, categoryID, page, perPage, listing, ttl)
	return args.Error(0)
}

func (m *MockListingCache) InvalidateProductListings(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	err = writer.Close()
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func newTestService(t *testing.T) (*services.CatalogService, *MockCatalogRepository, *MockFileStorage, *MockListingCache) {
	t.Helper()

	mockRepo := new(MockCatalogRepository)
	mockStorage := new(MockFileStorage)
	mockCache := new(MockListingCache)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

	return services.NewCatalogService(log, mockRepo, mockStorage, mockCache), mockRepo, mockStorage, mockCache
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("served from cache without touching repo", func(t *testing.T) {
		service, mockRepo, _, mockCache := newTestService(t)

		cached := &repository.ProductListing{
			Products: []models.Product{{Name: "Сеть трехстенная"}},
			Total:    1,
		}
		mockCache.On("GetProductListing", ctx, categoryID, 1, 20).Return(cached, nil)

		resp, err := service.ListProducts(ctx, categoryID, 1, 20)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		mockRepo.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss loads from repo and caches", func(t *testing.T) {
		service, mockRepo, _, mockCache := newTestService(t)

		products := []models.Product{{Name: "Сеть"}}

		mockCache.On("GetProductListing", ctx, categoryID, 1, 20).Return(nil, nil)
		mockRepo.On("ListProducts", ctx, categoryID, 1, 20).Return(products, 1, nil)
		mockCache.On("SetProductListing", ctx, categoryID, 1, 20,
			repository.ProductListing{Products: products, Total: 1}, 5*time.Minute,
		).Return(nil)

		resp, err := service.ListProducts(ctx, categoryID, 1, 20)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		service, mockRepo, _, mockCache := newTestService(t)

		mockCache.On("GetProductListing", ctx, categoryID, 1, 20).
			Return(nil, errors.New("redis down"))
		mockRepo.On("ListProducts", ctx, categoryID, 1, 20).
			Return([]models.Product{}, 0, nil)
		mockCache.On("SetProductListing", ctx, categoryID, 1, 20, mock.Anything, mock.Anything).
			Return(errors.New("redis down"))

		resp, err := service.ListProducts(ctx, categoryID, 1, 20)

		require.NoError(t, err)
		assert.Zero(t, resp.Total)
	})
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid product rejected before repo", func(t *testing.T) {
		service, mockRepo, _, _ := newTestService(t)

		_, err := service.CreateProduct(ctx, dto.ProductWriteInput{
			CategoryID: uuid.New(),
			Name:       "",
			Price:      100,
		})

		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
		mockRepo.AssertNotCalled(t, "SaveProduct", mock.Anything, mock.Anything)
	})

	t.Run("create with image invalidates cache", func(t *testing.T) {
		service, mockRepo, mockStorage, mockCache := newTestService(t)

		productID := uuid.New()
		categoryID := uuid.New()
		file := createTestFile(t, "net.jpg", "img")

		mockStorage.On("Save", ctx, file, "products").
			Return("products/net.jpg", int64(3), nil)
		mockRepo.On("SaveProduct", ctx,
			mock.MatchedBy(func(p models.Product) bool {
				return p.Image == "products/net.jpg" && p.Name == "Сеть"
			}),
		).Return(productID, nil)
		mockCache.On("InvalidateProductListings", ctx).Return(nil)
		mockRepo.On("GetProductByID", ctx, productID).
			Return(models.Product{ID: productID, Name: "Сеть"}, nil)

		resp, err := service.CreateProduct(ctx, dto.ProductWriteInput{
			CategoryID: categoryID,
			Name:       "Сеть",
			Price:      150000,
			Image:      file,
		})

		require.NoError(t, err)
		assert.Equal(t, productID, resp.ID)
		mockCache.AssertCalled(t, "InvalidateProductListings", ctx)
	})

	t.Run("image removed when save to db fails", func(t *testing.T) {
		service, mockRepo, mockStorage, _ := newTestService(t)

		file := createTestFile(t, "net.jpg", "img")

		mockStorage.On("Save", ctx, file, "products").
			Return("products/net.jpg", int64(3), nil)
		mockRepo.On("SaveProduct", ctx, mock.Anything).
			Return(uuid.Nil, errors.New("db down"))
		mockStorage.On("Delete", ctx, "products/net.jpg").Return(nil)

		_, err := service.CreateProduct(ctx, dto.ProductWriteInput{
			CategoryID: uuid.New(),
			Name:       "Сеть",
			Price:      150000,
			Image:      file,
		})

		require.Error(t, err)
		mockStorage.AssertCalled(t, "Delete", ctx, "products/net.jpg")
	})
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("new image displaces old one", func(t *testing.T) {
		service, mockRepo, mockStorage, mockCache := newTestService(t)

		productID := uuid.New()
		categoryID := uuid.New()
		file := createTestFile(t, "new.jpg", "img")

		current := models.Product{
			ID:         productID,
			CategoryID: categoryID,
			Name:       "Сеть",
			Price:      150000,
			Image:      "products/old.jpg",
		}

		mockRepo.On("GetProductByID", ctx, productID).Return(current, nil)
		mockStorage.On("Save", ctx, file, "products").
			Return("products/new.jpg", int64(3), nil)
		mockRepo.On("UpdateProduct", ctx,
			mock.MatchedBy(func(p models.Product) bool {
				return p.Image == "products/new.jpg"
			}),
		).Return(nil)
		mockStorage.On("Exists", ctx, "products/old.jpg").Return(true)
		mockStorage.On("Delete", ctx, "products/old.jpg").Return(nil)
		mockCache.On("InvalidateProductListings", ctx).Return(nil)

		_, err := service.UpdateProduct(ctx, productID, dto.ProductWriteInput{
			CategoryID: categoryID,
			Name:       "Сеть",
			Price:      150000,
			Image:      file,
		})

		require.NoError(t, err)
		mockStorage.AssertCalled(t, "Delete", ctx, "products/old.jpg")
	})

	t.Run("without file image is unchanged", func(t *testing.T) {
		service, mockRepo, mockStorage, mockCache := newTestService(t)

		productID := uuid.New()
		categoryID := uuid.New()

		current := models.Product{
			ID:         productID,
			CategoryID: categoryID,
			Name:       "Сеть",
			Price:      150000,
			Image:      "products/old.jpg",
		}

		mockRepo.On("GetProductByID", ctx, productID).Return(current, nil)
		mockRepo.On("UpdateProduct", ctx,
			mock.MatchedBy(func(p models.Product) bool {
				return p.Image == "products/old.jpg"
			}),
		).Return(nil)
		mockCache.On("InvalidateProductListings", ctx).Return(nil)

		_, err := service.UpdateProduct(ctx, productID, dto.ProductWriteInput{
			CategoryID: categoryID,
			Name:       "Сеть обновленная",
			Price:      160000,
		})

		require.NoError(t, err)
		mockStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		mockStorage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	service, mockRepo, mockStorage, mockCache := newTestService(t)

	productID := uuid.New()

	mockRepo.On("GetProductByID", ctx, productID).
		Return(models.Product{ID: productID, Image: "products/net.jpg"}, nil)
	mockRepo.On("DeleteProduct", ctx, productID).Return(nil)
	mockStorage.On("Exists", ctx, "products/net.jpg").Return(true)
	mockStorage.On("Delete", ctx, "products/net.jpg").Return(nil)
	mockCache.On("InvalidateProductListings", ctx).Return(nil)

	require.NoError(t, service.DeleteProduct(ctx, productID))

	mockRepo.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCatalogService_Categories(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name rejected", func(t *testing.T) {
		service, mockRepo, _, _ := newTestService(t)

		_, err := service.CreateCategory(ctx, dto.CategoryRequest{Name: "  "})

		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
		mockRepo.AssertNotCalled(t, "SaveCategory", mock.Anything, mock.Anything)
	})

	t.Run("create invalidates listings", func(t *testing.T) {
		service, mockRepo, _, mockCache := newTestService(t)

		categoryID := uuid.New()

		mockRepo.On("SaveCategory", ctx,
			mock.MatchedBy(func(c models.Category) bool { return c.Name == "Сети" }),
		).Return(categoryID, nil)
		mockCache.On("InvalidateProductListings", ctx).Return(nil)
		mockRepo.On("GetCategoryByID", ctx, categoryID).
			Return(models.Category{ID: categoryID, Name: "Сети"}, nil)

		resp, err := service.CreateCategory(ctx, dto.CategoryRequest{Name: "Сети"})

		require.NoError(t, err)
		assert.Equal(t, categoryID, resp.ID)
		mockCache.AssertExpectations(t)
	})
}
