// Package api implements the picshare backend client: one ctx-first method
// per endpoint, each converting the response into either a typed payload or
// an *Error with a stable code and a ready-to-display message.
package api

import (
	"context"

	"github.com/dkarpov/picshare/internal/client/models"
)

// UploadFile carries the image bytes for UploadPicture. Name and
// ContentType may be left empty; the client substitutes the backend's
// expected defaults (photo.jpg, image/jpeg).
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Client is the full backend surface. Operations never persist or clear
// session tokens themselves; that orchestration belongs to the services
// layer, which owns the session store.
//
// Expected failures come back as *Error (match with errors.As). Methods do
// not return non-Error errors: transport problems map to CodeNetwork,
// anything unclassified to CodeUnknown.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, username, email, password string) error
	RefreshToken(ctx context.Context, token string) (string, error)
	RetrieveUser(ctx context.Context, token string) (*models.User, error)
	DeleteAccount(ctx context.Context, token string) error

	UploadPicture(ctx context.Context, token string, file UploadFile, description string) (*models.Picture, error)
	GetPictures(ctx context.Context, token string) ([]models.Picture, error)
	GetAllPictures(ctx context.Context, token string) ([]models.Picture, error)
	GetPicture(ctx context.Context, token, pictureID string) (*models.Picture, error)
	DeletePicture(ctx context.Context, token, pictureID string) error

	AddComment(ctx context.Context, token, pictureID, text string) (*models.Comment, error)
	GetComments(ctx context.Context, pictureID string) ([]models.Comment, error)
	RemoveComment(ctx context.Context, token, commentID string) error
	UpdateComment(ctx context.Context, token, commentID, text string) (*models.Comment, error)
}
