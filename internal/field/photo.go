package field

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/storage"
)

// PhotoURL returns the public URL for a field photo.
func PhotoURL(id string) string {
	return "/v1/photos/" + id
}

// PhotoThumbnailURL returns the public URL for a field photo's thumbnail.
func PhotoThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}

// PhotoService handles field photo upload and retrieval.
type PhotoService interface {
	Upload(ctx context.Context, fieldID string, header *multipart.FileHeader) (*Photo, error)
	List(ctx context.Context, fieldID string) ([]*Photo, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	Delete(ctx context.Context, id string) error
}

type photoService struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewPhotoService(repo Repository, store storage.Storage) PhotoService {
	return &photoService{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *photoService) Upload(ctx context.Context, fieldID string, header *multipart.FileHeader) (*Photo, error) {
	// Field must exist
	if _, err := s.repo.GetByID(ctx, fieldID); err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrPhotoNotImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the content for storage write plus thumbnail generation.
	// Field photos are small enough to hold in memory.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	photoID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))

	// Sharding path: photos/ab/UUID.ext
	shard := photoID[:2]
	storagePath := fmt.Sprintf("photos/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save photo to storage: %w", err)
	}

	// Thumbnail failure does not fail the upload
	var thumbnailPath *string
	if thumb, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), 320, 240); err == nil {
		tPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumb); err == nil {
			thumbnailPath = &tPath
		}
	}

	p := &Photo{
		ID:            photoID,
		FieldID:       fieldID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
	}

	if err := s.repo.CreatePhoto(ctx, p); err != nil {
		// Cleanup storage if db write fails
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return p, nil
}

func (s *photoService) List(ctx context.Context, fieldID string) ([]*Photo, error) {
	return s.repo.ListPhotos(ctx, fieldID)
}

func (s *photoService) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetPhotoByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve photo from storage: %w", err)
	}

	return stream, p, nil
}

func (s *photoService) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetPhotoByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if p.ThumbnailPath == nil {
		return nil, nil, ErrPhotoNotFound
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, p, nil
}

func (s *photoService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetPhotoByID(ctx, id)
	if err != nil {
		return err
	}

	// Best-effort storage cleanup; the DB row is the source of truth
	_ = s.storage.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}

	return s.repo.DeletePhoto(ctx, id)
}
