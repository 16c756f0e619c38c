package services

import (
	"context"

	"github.com/dkarpov/picshare/internal/client/api"
	"github.com/dkarpov/picshare/internal/client/models"
)

// fakeClient is a hand-rolled api.Client for service tests. Behavior is
// injected per method; unset methods succeed with zero values. Calls
// records the method names in invocation order.
type fakeClient struct {
	Calls []string

	LoginFn         func(ctx context.Context, email, password string) (string, error)
	RegisterFn      func(ctx context.Context, username, email, password string) error
	RefreshTokenFn  func(ctx context.Context, token string) (string, error)
	RetrieveUserFn  func(ctx context.Context, token string) (*models.User, error)
	DeleteAccountFn func(ctx context.Context, token string) error

	UploadPictureFn func(ctx context.Context, token string, file api.UploadFile, description string) (*models.Picture, error)
	GetPicturesFn   func(ctx context.Context, token string) ([]models.Picture, error)
	GetPictureFn    func(ctx context.Context, token, pictureID string) (*models.Picture, error)

	AddCommentFn    func(ctx context.Context, token, pictureID, text string) (*models.Comment, error)
	UpdateCommentFn func(ctx context.Context, token, commentID, text string) (*models.Comment, error)
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.record("Login")
	if f.LoginFn != nil {
		return f.LoginFn(ctx, email, password)
	}
	return "", nil
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) error {
	f.record("Register")
	if f.RegisterFn != nil {
		return f.RegisterFn(ctx, username, email, password)
	}
	return nil
}

func (f *fakeClient) RefreshToken(ctx context.Context, token string) (string, error) {
	f.record("RefreshToken")
	if f.RefreshTokenFn != nil {
		return f.RefreshTokenFn(ctx, token)
	}
	return token, nil
}

func (f *fakeClient) RetrieveUser(ctx context.Context, token string) (*models.User, error) {
	f.record("RetrieveUser")
	if f.RetrieveUserFn != nil {
		return f.RetrieveUserFn(ctx, token)
	}
	return &models.User{}, nil
}

func (f *fakeClient) DeleteAccount(ctx context.Context, token string) error {
	f.record("DeleteAccount")
	if f.DeleteAccountFn != nil {
		return f.DeleteAccountFn(ctx, token)
	}
	return nil
}

func (f *fakeClient) UploadPicture(ctx context.Context, token string, file api.UploadFile, description string) (*models.Picture, error) {
	f.record("UploadPicture")
	if f.UploadPictureFn != nil {
		return f.UploadPictureFn(ctx, token, file, description)
	}
	return nil, nil
}

func (f *fakeClient) GetPictures(ctx context.Context, token string) ([]models.Picture, error) {
	f.record("GetPictures")
	if f.GetPicturesFn != nil {
		return f.GetPicturesFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeClient) GetAllPictures(ctx context.Context, token string) ([]models.Picture, error) {
	f.record("GetAllPictures")
	if f.GetPicturesFn != nil {
		return f.GetPicturesFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeClient) GetPicture(ctx context.Context, token, pictureID string) (*models.Picture, error) {
	f.record("GetPicture")
	if f.GetPictureFn != nil {
		return f.GetPictureFn(ctx, token, pictureID)
	}
	return &models.Picture{PictureID: pictureID}, nil
}

func (f *fakeClient) DeletePicture(ctx context.Context, token, pictureID string) error {
	f.record("DeletePicture")
	return nil
}

func (f *fakeClient) AddComment(ctx context.Context, token, pictureID, text string) (*models.Comment, error) {
	f.record("AddComment")
	if f.AddCommentFn != nil {
		return f.AddCommentFn(ctx, token, pictureID, text)
	}
	return &models.Comment{PictureID: pictureID, Comment: text}, nil
}

func (f *fakeClient) GetComments(ctx context.Context, pictureID string) ([]models.Comment, error) {
	f.record("GetComments")
	return nil, nil
}

func (f *fakeClient) RemoveComment(ctx context.Context, token, commentID string) error {
	f.record("RemoveComment")
	return nil
}

func (f *fakeClient) UpdateComment(ctx context.Context, token, commentID, text string) (*models.Comment, error) {
	f.record("UpdateComment")
	if f.UpdateCommentFn != nil {
		return f.UpdateCommentFn(ctx, token, commentID, text)
	}
	return &models.Comment{CommentID: commentID, Comment: text}, nil
}
