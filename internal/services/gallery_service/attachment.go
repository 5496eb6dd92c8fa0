package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	"nevod_store/internal/domain/models"
	"nevod_store/internal/lib/logger/sl"
	storage "nevod_store/internal/storage/filestorage"
)

const (
	galleryImageDir = "galleries/images"
	galleryVideoDir = "galleries/videos"
)

// mediaState итоговое состояние медиаполей галереи.
// Заполнено не более одного из двух полей.
type mediaState struct {
	image string
	video string
}

// attachmentPolicy следит за взаимоисключимостью изображения и видео.
// За один вызов может быть загружен только один новый файл; загрузка
// нового файла любого типа вытесняет оба старых.
type attachmentPolicy struct {
	log   *slog.Logger
	files storage.FileStorage
}

// apply сохраняет новый файл (если он есть) и возвращает итоговое
// состояние медиаполей вместе со списком старых путей, подлежащих
// удалению после коммита транзакции. Ошибка записи нового файла фатальна
// и возвращается до каких-либо изменений полей.
func (p *attachmentPolicy) apply(ctx context.Context, current mediaState, newImage, newVideo *multipart.FileHeader) (mediaState, []string, error) {
	const op = "gallery_service.attachmentPolicy.apply"

	if newImage != nil && newVideo != nil {
		return mediaState{}, nil, &models.ValidationError{
			Errors: []string{"image and video cannot be supplied together"},
		}
	}

	switch {
	case newImage != nil:
		path, _, err := p.files.Save(ctx, newImage, galleryImageDir)
		if err != nil {
			return mediaState{}, nil, fmt.Errorf("%s: %w", op, err)
		}
		return mediaState{image: path}, current.refs(), nil

	case newVideo != nil:
		path, _, err := p.files.Save(ctx, newVideo, galleryVideoDir)
		if err != nil {
			return mediaState{}, nil, fmt.Errorf("%s: %w", op, err)
		}
		return mediaState{video: path}, current.refs(), nil

	default:
		// Медиа не меняется, удалять нечего
		return current, nil, nil
	}
}

// cleanup удаляет старые файлы по принципу best-effort: к этому моменту
// транзакция уже закоммичена, и состояние БД не должно зависеть от
// результата уборки. Каждый путь удаляется не более одного раза.
func (p *attachmentPolicy) cleanup(ctx context.Context, refs []string) {
	seen := make(map[string]struct{}, len(refs))

	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}

		if !p.files.Exists(ctx, ref) {
			continue
		}

		if err := p.files.Delete(ctx, ref); err != nil {
			p.log.Warn("failed to remove old media file",
				slog.String("path", ref),
				sl.Err(err),
			)
		}
	}
}

func (s mediaState) refs() []string {
	var refs []string
	if s.image != "" {
		refs = append(refs, s.image)
	}
	if s.video != "" {
		refs = append(refs, s.video)
	}
	return refs
}
