package storage

import "errors"

var (
	ErrGalleryNotFound     = errors.New("gallery not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrInformationNotFound = errors.New("information not found")
	ErrBannerNotFound      = errors.New("banner not found")
	ErrShopLinkNotFound    = errors.New("shop link not found")
)
