package repository

import (
	"context"
	"errors"
	"fmt"

	"nevod_store/internal/domain/models"
	"nevod_store/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CatalogRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCatalogRepo(db *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveCategory создает категорию и возвращает её ID
func (r *CatalogRepo) SaveCategory(ctx context.Context, category models.Category) (uuid.UUID, error) {
	const op = "repository.CatalogRepo.SaveCategory"

	query, args, err := r.sb.Insert("categories").
		Columns("name").
		Values(category.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UpdateCategory обновляет название категории
func (r *CatalogRepo) UpdateCategory(ctx context.Context, category models.Category) error {
	const op = "repository.CatalogRepo.UpdateCategory"

	query, args, err := r.sb.Update("categories").
		Set("name", category.Name).
		Where(sq.Eq{"id": category.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrCategoryNotFound)
	}

	return nil
}

// DeleteCategory удаляет категорию. Категория с товарами не удаляется -
// ограничение внешнего ключа вернет ошибку.
func (r *CatalogRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "repository.CatalogRepo.DeleteCategory"

	query, args, err := r.sb.Delete("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrCategoryNotFound)
	}

	return nil
}

// GetCategoryByID возвращает категорию по ID
func (r *CatalogRepo) GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	const op = "repository.CatalogRepo.GetCategoryByID"

	query, args, err := r.sb.Select("id", "name", "created_at").
		From("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var category models.Category
	err = r.db.QueryRow(ctx, query, args...).Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Category{}, fmt.Errorf("%s: %w", op, storage.ErrCategoryNotFound)
		}
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// ListCategories возвращает все категории в порядке создания
func (r *CatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "repository.CatalogRepo.ListCategories"

	query, args, err := r.sb.Select("id", "name", "created_at").
		From("categories").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}

// SaveProduct создает товар и возвращает его ID
func (r *CatalogRepo) SaveProduct(ctx context.Context, product models.Product) (uuid.UUID, error) {
	const op = "repository.CatalogRepo.SaveProduct"

	query, args, err := r.sb.Insert("products").
		Columns("category_id", "name", "description", "image", "price").
		Values(product.CategoryID, product.Name, product.Description, product.Image, product.Price).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UpdateProduct обновляет данные товара
func (r *CatalogRepo) UpdateProduct(ctx context.Context, product models.Product) error {
	const op = "repository.CatalogRepo.UpdateProduct"

	query, args, err := r.sb.Update("products").
		Set("category_id", product.CategoryID).
		Set("name", product.Name).
		Set("description", product.Description).
		Set("image", product.Image).
		Set("price", product.Price).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": product.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrProductNotFound)
	}

	return nil
}

// DeleteProduct удаляет товар по ID
func (r *CatalogRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	const op = "repository.CatalogRepo.DeleteProduct"

	query, args, err := r.sb.Delete("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrProductNotFound)
	}

	return nil
}

// GetProductByID возвращает товар по ID
func (r *CatalogRepo) GetProductByID(ctx context.Context, id uuid.UUID) (models.Product, error) {
	const op = "repository.CatalogRepo.GetProductByID"

	query, args, err := r.sb.Select("id", "category_id", "name", "description", "image", "price", "created_at", "updated_at").
		From("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var product models.Product
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&product.ID,
		&product.CategoryID,
		&product.Name,
		&product.Description,
		&product.Image,
		&product.Price,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Product{}, fmt.Errorf("%s: %w", op, storage.ErrProductNotFound)
		}
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	return product, nil
}

// ListProducts возвращает товары с пагинацией. При нулевом categoryID
// возвращаются товары всех категорий.
func (r *CatalogRepo) ListProducts(ctx context.Context, categoryID uuid.UUID, page, perPage int) ([]models.Product, int, error) {
	const op = "repository.CatalogRepo.ListProducts"

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	countBuilder := r.sb.Select("COUNT(*)").From("products")
	listBuilder := r.sb.Select("id", "category_id", "name", "description", "image", "price", "created_at", "updated_at").
		From("products")

	if categoryID != uuid.Nil {
		countBuilder = countBuilder.Where(sq.Eq{"category_id": categoryID})
		listBuilder = listBuilder.Where(sq.Eq{"category_id": categoryID})
	}

	query, args, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var totalCount int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = listBuilder.
		OrderBy("created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.CategoryID,
			&product.Name,
			&product.Description,
			&product.Image,
			&product.Price,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		products = append(products, product)
	}

	return products, totalCount, nil
}
