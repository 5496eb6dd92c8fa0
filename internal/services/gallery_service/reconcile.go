package services

import (
	"fmt"

	"nevod_store/internal/domain/models"
	"nevod_store/internal/transport/http/dto"

	"github.com/google/uuid"
)

// reconcileItems строит план приведения дочерней коллекции галереи к
// отправленному состоянию формы. Текущие записи, id которых не пришли в
// форме, попадают в Delete; строки с известным id - в Update; строки без
// id - в Insert в порядке отправки. Пустая форма означает удаление всех
// текущих записей.
//
// Строка с id, не принадлежащим текущим записям, отклоняется как ошибка
// валидации: форма возвращает только выданные сервером идентификаторы,
// и клиентский id здесь может быть только устаревшим или подделанным.
func reconcileItems(current []models.GalleryItem, submitted []dto.GalleryItemInput) (models.GalleryItemPlan, error) {
	var plan models.GalleryItemPlan
	var validationErrors []string

	currentByID := make(map[uuid.UUID]struct{}, len(current))
	for _, item := range current {
		currentByID[item.ID] = struct{}{}
	}

	submittedIDs := make(map[uuid.UUID]struct{}, len(submitted))

	for i, row := range submitted {
		if row.Tag == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("item %d: tag is required", i))
		}
		if len(row.Tag) > 255 {
			validationErrors = append(validationErrors, fmt.Sprintf("item %d: tag must be 255 characters or less", i))
		}

		if row.ID == uuid.Nil {
			plan.Insert = append(plan.Insert, models.GalleryItem{Tag: row.Tag, Position: i})
			continue
		}

		if _, ok := currentByID[row.ID]; !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("item %d: unknown id %s", i, row.ID))
			continue
		}

		submittedIDs[row.ID] = struct{}{}
		plan.Update = append(plan.Update, models.GalleryItem{ID: row.ID, Tag: row.Tag, Position: i})
	}

	for _, item := range current {
		if _, ok := submittedIDs[item.ID]; !ok {
			plan.Delete = append(plan.Delete, item.ID)
		}
	}

	if len(validationErrors) > 0 {
		return models.GalleryItemPlan{}, &models.ValidationError{Errors: validationErrors}
	}

	return plan, nil
}
