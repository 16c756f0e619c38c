package services

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkarpov/picshare/internal/client/api"
	"github.com/dkarpov/picshare/internal/client/models"
	"github.com/dkarpov/picshare/internal/client/session"
	"github.com/dkarpov/picshare/internal/logging"
)

// PictureService wraps the picture endpoints with session handling and
// local-file plumbing for uploads.
type PictureService interface {
	Upload(ctx context.Context, path, description string) (*models.Picture, error)
	List(ctx context.Context) ([]models.Picture, error)
	Feed(ctx context.Context) ([]models.Picture, error)
	Get(ctx context.Context, pictureID string) (*models.Picture, error)
	Delete(ctx context.Context, pictureID string) error
}

type pictureService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

func NewPictureService(client api.Client, store session.Store, log logging.Logger) PictureService {
	return &pictureService{client: client, store: store, log: log}
}

// Upload reads the image at path and posts it. The filename travels as-is;
// the content type is inferred from the extension, falling back to the
// backend's JPEG default for anything unrecognized.
func (s *pictureService) Upload(ctx context.Context, path, description string) (*models.Picture, error) {
	token, err := requireToken(ctx, s.store)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image file: %w", err)
	}

	file := api.UploadFile{
		Name:        filepath.Base(path),
		ContentType: imageContentType(path),
		Data:        data,
	}

	return s.client.UploadPicture(ctx, token, file, description)
}

func imageContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t := mime.TypeByExtension(ext); strings.HasPrefix(t, "image/") {
		return t
	}
	return api.DefaultUploadContentType
}

func (s *pictureService) List(ctx context.Context) ([]models.Picture, error) {
	token, err := requireToken(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.client.GetPictures(ctx, token)
}

func (s *pictureService) Feed(ctx context.Context) ([]models.Picture, error) {
	token, err := requireToken(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.client.GetAllPictures(ctx, token)
}

func (s *pictureService) Get(ctx context.Context, pictureID string) (*models.Picture, error) {
	token, err := requireToken(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.client.GetPicture(ctx, token, pictureID)
}

func (s *pictureService) Delete(ctx context.Context, pictureID string) error {
	token, err := requireToken(ctx, s.store)
	if err != nil {
		return err
	}
	return s.client.DeletePicture(ctx, token, pictureID)
}
