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

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepo(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateGallery создает галерею вместе с дочерними записями в одной
// транзакции и возвращает её ID. При любой ошибке не остается частично
// видимых строк.
func (r *GalleryRepo) CreateGallery(ctx context.Context, gallery models.Gallery, items []models.GalleryItem) (uuid.UUID, error) {
	const op = "repository.GalleryRepo.CreateGallery"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Insert("galleries").
		Columns("title", "description", "image", "video").
		Values(gallery.Title, gallery.Description, gallery.Image, gallery.Video).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range items {
		if err := r.insertItem(ctx, tx, id, item); err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return id, nil
}

// UpdateGallery обновляет поля галереи и применяет план дочерних записей
// в одной транзакции. Порядок применения плана: удаления, затем обновления,
// затем вставки в порядке отправки.
func (r *GalleryRepo) UpdateGallery(ctx context.Context, gallery models.Gallery, plan models.GalleryItemPlan) error {
	const op = "repository.GalleryRepo.UpdateGallery"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Update("galleries").
		Set("title", gallery.Title).
		Set("description", gallery.Description).
		Set("image", gallery.Image).
		Set("video", gallery.Video).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": gallery.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
	}

	if len(plan.Delete) > 0 {
		query, args, err = r.sb.Delete("gallery_items").
			Where(sq.Eq{"id": plan.Delete, "gallery_id": gallery.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%s: can't build sql: %w", op, err)
		}

		if _, err = tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	for _, item := range plan.Update {
		query, args, err = r.sb.Update("gallery_items").
			Set("tag", item.Tag).
			Set("position", item.Position).
			Where(sq.Eq{"id": item.ID, "gallery_id": gallery.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%s: can't build sql: %w", op, err)
		}

		ct, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("%s: %w", op, storage.ErrGalleryItemNotFound)
		}
	}

	for _, item := range plan.Insert {
		if err := r.insertItem(ctx, tx, gallery.ID, item); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

// DeleteGallery удаляет галерею вместе с дочерними записями в одной
// транзакции. Файлы в хранилище записей не трогает - это забота сервиса.
func (r *GalleryRepo) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	const op = "repository.GalleryRepo.DeleteGallery"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Delete("gallery_items").
		Where(sq.Eq{"gallery_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err = tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Delete("galleries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

// GetGalleryByID возвращает галерею вместе с дочерними записями
func (r *GalleryRepo) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	const op = "repository.GalleryRepo.GetGalleryByID"

	query, args, err := r.sb.Select("id", "title", "description", "image", "video", "created_at", "updated_at").
		From("galleries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var gallery models.Gallery
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&gallery.ID,
		&gallery.Title,
		&gallery.Description,
		&gallery.Image,
		&gallery.Video,
		&gallery.CreatedAt,
		&gallery.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	items, err := r.listItems(ctx, []uuid.UUID{gallery.ID})
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}
	gallery.Items = items[gallery.ID]

	return gallery, nil
}

// ListGalleries возвращает список галерей с пагинацией и общее количество
func (r *GalleryRepo) ListGalleries(ctx context.Context, page, perPage int) ([]models.Gallery, int, error) {
	const op = "repository.GalleryRepo.ListGalleries"

	// Проверка и корректировка параметров пагинации
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	totalCount, err := r.getTotalCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Select("id", "title", "description", "image", "video", "created_at", "updated_at").
		From("galleries").
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

	var galleries []models.Gallery
	var ids []uuid.UUID
	for rows.Next() {
		var gallery models.Gallery
		err := rows.Scan(
			&gallery.ID,
			&gallery.Title,
			&gallery.Description,
			&gallery.Image,
			&gallery.Video,
			&gallery.CreatedAt,
			&gallery.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		galleries = append(galleries, gallery)
		ids = append(ids, gallery.ID)
	}

	if len(ids) > 0 {
		itemsByGallery, err := r.listItems(ctx, ids)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		for i := range galleries {
			galleries[i].Items = itemsByGallery[galleries[i].ID]
		}
	}

	return galleries, totalCount, nil
}

// insertItem вставляет дочернюю запись в рамках переданной транзакции
func (r *GalleryRepo) insertItem(ctx context.Context, tx pgx.Tx, galleryID uuid.UUID, item models.GalleryItem) error {
	query, args, err := r.sb.Insert("gallery_items").
		Columns("gallery_id", "tag", "position").
		Values(galleryID, item.Tag, item.Position).
		ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert gallery item: %w", err)
	}

	return nil
}

// listItems возвращает дочерние записи для набора галерей, сгруппированные
// по идентификатору родителя и упорядоченные по позиции
func (r *GalleryRepo) listItems(ctx context.Context, galleryIDs []uuid.UUID) (map[uuid.UUID][]models.GalleryItem, error) {
	query, args, err := r.sb.Select("id", "gallery_id", "tag", "position", "created_at").
		From("gallery_items").
		Where(sq.Eq{"gallery_id": galleryIDs}).
		OrderBy("position", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("can't build sql: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query gallery items: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]models.GalleryItem)
	for rows.Next() {
		var item models.GalleryItem
		err := rows.Scan(&item.ID, &item.GalleryID, &item.Tag, &item.Position, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		result[item.GalleryID] = append(result[item.GalleryID], item)
	}

	return result, nil
}

func (r *GalleryRepo) getTotalCount(ctx context.Context) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From("galleries").ToSql()
	if err != nil {
		return 0, fmt.Errorf("error build query: %w", err)
	}

	var count int
	err = r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error execute query: %w", err)
	}

	return count, nil
}
