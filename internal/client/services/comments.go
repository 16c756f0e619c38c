package services

import (
	"context"
	"strings"

	"github.com/dkarpov/picshare/internal/client/api"
	"github.com/dkarpov/picshare/internal/client/models"
	"github.com/dkarpov/picshare/internal/client/session"
	"github.com/dkarpov/picshare/internal/logging"
)

// CommentService wraps the comment endpoints. Text is trimmed and
// whitespace-only input is rejected before any network call; the backend
// would answer 904 anyway, so the round trip is pointless.
type CommentService interface {
	List(ctx context.Context, pictureID string) ([]models.Comment, error)
	Add(ctx context.Context, pictureID, text string) (*models.Comment, error)
	Remove(ctx context.Context, commentID string) error
	Update(ctx context.Context, commentID, text string) (*models.Comment, error)
}

type commentService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

func NewCommentService(client api.Client, store session.Store, log logging.Logger) CommentService {
	return &commentService{client: client, store: store, log: log}
}

// List works without a session; reading comments is the one public
// operation.
func (s *commentService) List(ctx context.Context, pictureID string) ([]models.Comment, error) {
	return s.client.GetComments(ctx, pictureID)
}

func (s *commentService) Add(ctx context.Context, pictureID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, api.ErrEmptyComment
	}

	token, err := requireToken(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.client.AddComment(ctx, token, pictureID, text)
}

func (s *commentService) Remove(ctx context.Context, commentID string) error {
	token, err := requireToken(ctx, s.store)
	if err != nil {
		return err
	}
	return s.client.RemoveComment(ctx, token, commentID)
}

func (s *commentService) Update(ctx context.Context, commentID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, api.ErrEmptyComment
	}

	token, err := requireToken(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.client.UpdateComment(ctx, token, commentID, text)
}
