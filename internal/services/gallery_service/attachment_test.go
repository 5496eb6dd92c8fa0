package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"nevod_store/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPolicy(t *testing.T) (*attachmentPolicy, *MockFileStorage) {
	t.Helper()

	mockStorage := new(MockFileStorage)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

	return &attachmentPolicy{log: log, files: mockStorage}, mockStorage
}

func TestAttachmentPolicy_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("both files rejected", func(t *testing.T) {
		policy, mockStorage := newTestPolicy(t)

		image := createTestFile(t, "photo.jpg", "img")
		video := createTestFile(t, "clip.mp4", "vid")

		_, _, err := policy.apply(ctx, mediaState{}, image, video)

		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
		mockStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("new image displaces current video", func(t *testing.T) {
		policy, mockStorage := newTestPolicy(t)

		image := createTestFile(t, "photo.jpg", "img")
		mockStorage.On("Save", ctx, image, "galleries/images").
			Return("galleries/images/photo.jpg", int64(3), nil)

		state, removals, err := policy.apply(ctx,
			mediaState{video: "galleries/videos/old.mp4"}, image, nil)

		require.NoError(t, err)
		assert.Equal(t, "galleries/images/photo.jpg", state.image)
		assert.Empty(t, state.video)
		assert.Equal(t, []string{"galleries/videos/old.mp4"}, removals)
	})

	t.Run("no files keeps state and removals empty", func(t *testing.T) {
		policy, mockStorage := newTestPolicy(t)

		current := mediaState{image: "galleries/images/old.jpg"}
		state, removals, err := policy.apply(ctx, current, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, current, state)
		assert.Empty(t, removals)
		mockStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("save error is returned and state untouched", func(t *testing.T) {
		policy, mockStorage := newTestPolicy(t)

		video := createTestFile(t, "clip.mp4", "vid")
		mockStorage.On("Save", ctx, video, "galleries/videos").
			Return("", int64(0), errors.New("disk full"))

		_, _, err := policy.apply(ctx, mediaState{image: "galleries/images/old.jpg"}, nil, video)

		require.Error(t, err)
	})
}

func TestAttachmentPolicy_Cleanup(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate refs removed once", func(t *testing.T) {
		policy, mockStorage := newTestPolicy(t)

		mockStorage.On("Exists", ctx, "galleries/images/a.jpg").Return(true)
		mockStorage.On("Delete", ctx, "galleries/images/a.jpg").Return(nil).Once()

		policy.cleanup(ctx, []string{
			"galleries/images/a.jpg",
			"",
			"galleries/images/a.jpg",
		})

		mockStorage.AssertNumberOfCalls(t, "Delete", 1)
	})

	t.Run("missing file skipped", func(t *testing.T) {
		policy, mockStorage := newTestPolicy(t)

		mockStorage.On("Exists", ctx, "galleries/images/gone.jpg").Return(false)

		policy.cleanup(ctx, []string{"galleries/images/gone.jpg"})

		mockStorage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete error swallowed", func(t *testing.T) {
		policy, mockStorage := newTestPolicy(t)

		mockStorage.On("Exists", ctx, "galleries/images/a.jpg").Return(true)
		mockStorage.On("Delete", ctx, "galleries/images/a.jpg").
			Return(errors.New("permission denied"))

		policy.cleanup(ctx, []string{"galleries/images/a.jpg"})
	})
}
