package services

import (
	"strings"
	"testing"

	"nevod_store/internal/domain/models"
	"nevod_store/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileItems(t *testing.T) {
	itemA := uuid.New()
	itemB := uuid.New()

	current := []models.GalleryItem{
		{ID: itemA, Tag: "лето", Position: 0},
		{ID: itemB, Tag: "зима", Position: 1},
	}

	t.Run("empty submission deletes everything", func(t *testing.T) {
		plan, err := reconcileItems(current, nil)

		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{itemA, itemB}, plan.Delete)
		assert.Empty(t, plan.Update)
		assert.Empty(t, plan.Insert)
	})

	t.Run("rows without id become inserts in submission order", func(t *testing.T) {
		plan, err := reconcileItems(nil, []dto.GalleryItemInput{
			{Tag: "первый"},
			{Tag: "второй"},
			{Tag: "третий"},
		})

		require.NoError(t, err)
		require.Len(t, plan.Insert, 3)
		for i, tag := range []string{"первый", "второй", "третий"} {
			assert.Equal(t, tag, plan.Insert[i].Tag)
			assert.Equal(t, i, plan.Insert[i].Position)
		}
	})

	t.Run("known id becomes update with new position", func(t *testing.T) {
		plan, err := reconcileItems(current, []dto.GalleryItemInput{
			{Tag: "новый"},
			{ID: itemB, Tag: "зима-2"},
		})

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{itemA}, plan.Delete)
		require.Len(t, plan.Update, 1)
		assert.Equal(t, itemB, plan.Update[0].ID)
		assert.Equal(t, "зима-2", plan.Update[0].Tag)
		assert.Equal(t, 1, plan.Update[0].Position)
		require.Len(t, plan.Insert, 1)
		assert.Equal(t, 0, plan.Insert[0].Position)
	})

	t.Run("unknown id is a validation error", func(t *testing.T) {
		_, err := reconcileItems(current, []dto.GalleryItemInput{
			{ID: uuid.New(), Tag: "лето"},
		})

		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
		assert.Contains(t, err.Error(), "unknown id")
	})

	t.Run("empty tag is a validation error", func(t *testing.T) {
		_, err := reconcileItems(nil, []dto.GalleryItemInput{
			{Tag: ""},
		})

		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
	})

	t.Run("overlong tag is a validation error", func(t *testing.T) {
		_, err := reconcileItems(nil, []dto.GalleryItemInput{
			{Tag: strings.Repeat("a", 256)},
		})

		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
	})

	t.Run("errors are accumulated across rows", func(t *testing.T) {
		_, err := reconcileItems(current, []dto.GalleryItemInput{
			{Tag: ""},
			{ID: uuid.New(), Tag: "лето"},
		})

		require.Error(t, err)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Errors, 2)
	})
}
