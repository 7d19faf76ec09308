package service

import (
	"context"
	"io"

	apperrors "github.com/findme-ke/findme-api/internal/errors"
	ctxutil "github.com/findme-ke/findme-api/pkg/context"
	"github.com/findme-ke/findme-api/pkg/logger"
	"github.com/findme-ke/findme-api/pkg/objectstore"
)

// PhotoService wraps the object store collaborator. A nil store means photo
// uploads are not configured; report creation never depends on it.
type PhotoService struct {
	store *objectstore.PhotoStore
}

func NewPhotoService(store *objectstore.PhotoStore) *PhotoService {
	return &PhotoService{store: store}
}

// Enabled reports whether an object store is configured
func (s *PhotoService) Enabled() bool {
	return s.store != nil
}

// Upload stores the photo bytes and returns a publicly addressable URL
func (s *PhotoService) Upload(ctx context.Context, body io.Reader, contentType string) (string, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Upload")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	if s.store == nil {
		return "", apperrors.ErrServiceUnavailable
	}

	url, err := s.store.Upload(ctx, body, contentType)
	if err != nil {
		logger.ErrorWithContext(ctx, "Photo upload failed").
			Err(err).
			Log()
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "Photo uploaded").
		String("url", url).
		Log()

	return url, nil
}
