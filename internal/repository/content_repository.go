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

type ContentRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContentRepo(db *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetInformation возвращает единственную запись с контактной информацией
func (r *ContentRepo) GetInformation(ctx context.Context) (models.Information, error) {
	const op = "repository.ContentRepo.GetInformation"

	query, args, err := r.sb.Select("id", "about", "phone", "email", "address", "updated_at").
		From("information").
		ToSql()
	if err != nil {
		return models.Information{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var info models.Information
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&info.ID,
		&info.About,
		&info.Phone,
		&info.Email,
		&info.Address,
		&info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Information{}, fmt.Errorf("%s: %w", op, storage.ErrInformationNotFound)
		}
		return models.Information{}, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// UpsertInformation создает или обновляет единственную запись.
// Единственность обеспечивается уникальным индексом по колонке singleton.
func (r *ContentRepo) UpsertInformation(ctx context.Context, info models.Information) (uuid.UUID, error) {
	const op = "repository.ContentRepo.UpsertInformation"

	query, args, err := r.sb.Insert("information").
		Columns("singleton", "about", "phone", "email", "address").
		Values(true, info.About, info.Phone, info.Email, info.Address).
		Suffix(`ON CONFLICT (singleton) DO UPDATE SET
			about = EXCLUDED.about,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			updated_at = NOW()
			RETURNING id`).
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

// GetCategoryBanner возвращает баннер категории
func (r *ContentRepo) GetCategoryBanner(ctx context.Context, categoryID uuid.UUID) (models.CategoryBanner, error) {
	const op = "repository.ContentRepo.GetCategoryBanner"

	query, args, err := r.sb.Select("id", "category_id", "image", "updated_at").
		From("category_banners").
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return models.CategoryBanner{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var banner models.CategoryBanner
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&banner.ID,
		&banner.CategoryID,
		&banner.Image,
		&banner.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.CategoryBanner{}, fmt.Errorf("%s: %w", op, storage.ErrBannerNotFound)
		}
		return models.CategoryBanner{}, fmt.Errorf("%s: %w", op, err)
	}

	return banner, nil
}

// UpsertCategoryBanner создает или заменяет баннер категории.
// Правило "один баннер на категорию" обеспечивает уникальный индекс
// по category_id.
func (r *ContentRepo) UpsertCategoryBanner(ctx context.Context, banner models.CategoryBanner) (uuid.UUID, error) {
	const op = "repository.ContentRepo.UpsertCategoryBanner"

	query, args, err := r.sb.Insert("category_banners").
		Columns("category_id", "image").
		Values(banner.CategoryID, banner.Image).
		Suffix(`ON CONFLICT (category_id) DO UPDATE SET
			image = EXCLUDED.image,
			updated_at = NOW()
			RETURNING id`).
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

// SaveShopLink создает ссылку на внешний магазин и возвращает её ID
func (r *ContentRepo) SaveShopLink(ctx context.Context, link models.ShopLink) (uuid.UUID, error) {
	const op = "repository.ContentRepo.SaveShopLink"

	query, args, err := r.sb.Insert("shop_links").
		Columns("title", "url", "position").
		Values(link.Title, link.URL, link.Position).
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

// UpdateShopLink обновляет ссылку на внешний магазин
func (r *ContentRepo) UpdateShopLink(ctx context.Context, link models.ShopLink) error {
	const op = "repository.ContentRepo.UpdateShopLink"

	query, args, err := r.sb.Update("shop_links").
		Set("title", link.Title).
		Set("url", link.URL).
		Set("position", link.Position).
		Where(sq.Eq{"id": link.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrShopLinkNotFound)
	}

	return nil
}

// DeleteShopLink удаляет ссылку на внешний магазин
func (r *ContentRepo) DeleteShopLink(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ContentRepo.DeleteShopLink"

	query, args, err := r.sb.Delete("shop_links").
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
		return fmt.Errorf("%s: %w", op, storage.ErrShopLinkNotFound)
	}

	return nil
}

// ListShopLinks возвращает все ссылки, упорядоченные по позиции
func (r *ContentRepo) ListShopLinks(ctx context.Context) ([]models.ShopLink, error) {
	const op = "repository.ContentRepo.ListShopLinks"

	query, args, err := r.sb.Select("id", "title", "url", "position", "created_at").
		From("shop_links").
		OrderBy("position", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var links []models.ShopLink
	for rows.Next() {
		var link models.ShopLink
		if err := rows.Scan(&link.ID, &link.Title, &link.URL, &link.Position, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		links = append(links, link)
	}

	return links, nil
}
