package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/dkarpov/picshare/internal/client/models"
	"github.com/dkarpov/picshare/internal/common"
	"github.com/dkarpov/picshare/internal/logging"
)

// Defaults substituted when an UploadFile arrives without a name or type.
const (
	DefaultUploadName        = "photo.jpg"
	DefaultUploadContentType = "image/jpeg"
)

// refreshPath is the literal spelling the backend exposes. It is part of
// the external contract; do not "fix" it.
const refreshPath = "/refreash"

// HTTPClient talks to the picshare backend over plain HTTP. It is
// stateless apart from the base URL: tokens are passed in per call.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL. timeout bounds the
// whole exchange of each call; zero means the transport default.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do performs an HTTP exchange and reads the full body. Any transport-level
// failure (dial, TLS, timeout, body read) is reported as a CodeNetwork
// *Error; HTTP status interpretation is left to the caller.
func (c *HTTPClient) do(ctx context.Context, method, path, token, contentType string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		c.log.Error(ctx, "building request", "method", method, "path", path, "err", err)
		return 0, nil, networkError()
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return 0, nil, networkError()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn(ctx, "reading response", "method", method, "path", path, "err", err)
		return 0, nil, networkError()
	}

	return resp.StatusCode, data, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path, token string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, unknownError()
	}
	return c.do(ctx, http.MethodPost, path, token, "application/json", bytes.NewReader(body))
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type loginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type registerRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
	Email    string `json:"Email"`
}

type addCommentRequest struct {
	PictureID   string `json:"PictureId"`
	CommentText string `json:"CommentText"`
}

type updateCommentRequest struct {
	CommentText string `json:"CommentText"`
}

type picturesResponse struct {
	Pictures []models.Picture `json:"pictures"`
}

type commentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

// Login authenticates with email and password and returns the issued
// access token. The caller persists it.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	status, body, err := c.postJSON(ctx, "/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	if status == http.StatusOK {
		var resp tokenResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			c.log.Error(ctx, "decoding login response", "err", err)
			return "", unknownError()
		}
		return resp.AccessToken, nil
	}

	return "", classify(loginRules, status, string(body))
}

// Register creates a new account. A nil error means the backend accepted
// the registration and sent a verification email; no token is issued until
// the address is confirmed.
func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	status, body, err := c.postJSON(ctx, "/register", "", registerRequest{Username: username, Password: password, Email: email})
	if err != nil {
		return err
	}

	if status == http.StatusOK {
		return nil
	}

	return classify(registerRules, status, string(body))
}

// RefreshToken exchanges a (possibly stale) token for a fresh one. A 200
// with a present-but-empty accessToken is a failure: the backend uses it to
// reject tokens it no longer recognizes. All failure paths return an
// *Error; the caller decides what to do with the stored token.
func (c *HTTPClient) RefreshToken(ctx context.Context, token string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, refreshPath, token, "application/json", nil)
	if err != nil {
		return "", err
	}

	if status == http.StatusOK {
		var resp tokenResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			c.log.Error(ctx, "decoding refresh response", "err", err)
			return "", NewError(CodeUnknown, "Invalid token received from server")
		}
		if strings.TrimSpace(resp.AccessToken) == "" {
			return "", NewError(CodeUnknown, "Invalid token received from server")
		}
		return resp.AccessToken, nil
	}

	if e := match(userScoped, status, string(body)); e != nil {
		return "", e
	}
	return "", NewError(CodeUnknown, "Token refresh failed")
}

// RetrieveUser fetches the account owning the token.
func (c *HTTPClient) RetrieveUser(ctx context.Context, token string) (*models.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/retrieveuser", token, "", nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		var u models.User
		if err := json.Unmarshal(body, &u); err != nil {
			c.log.Error(ctx, "decoding user response", "err", err)
			return nil, unknownError()
		}
		return &u, nil
	}

	return nil, classify(userScoped, status, string(body))
}

// DeleteAccount permanently removes the token's account. The caller clears
// the stored token afterwards.
func (c *HTTPClient) DeleteAccount(ctx context.Context, token string) error {
	status, body, err := c.do(ctx, http.MethodDelete, "/deleteuser", token, "", nil)
	if err != nil {
		return err
	}
	if status == http.StatusOK {
		return nil
	}
	return classify(userScoped, status, string(body))
}

// UploadPicture posts the image as multipart form data. The optional
// description travels as a second form field. On success the backend may
// return the created picture; a success with an empty body yields
// (nil, nil).
func (c *HTTPClient) UploadPicture(ctx context.Context, token string, file UploadFile, description string) (*models.Picture, error) {
	name := file.Name
	if name == "" {
		name = DefaultUploadName
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = DefaultUploadContentType
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, name))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, unknownError()
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, unknownError()
	}
	if description != "" {
		if err := w.WriteField("description", description); err != nil {
			return nil, unknownError()
		}
	}
	if err := w.Close(); err != nil {
		return nil, unknownError()
	}

	status, body, err := c.do(ctx, http.MethodPost, "/uploadpicture", token, w.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		return decodeOptionalPicture(body)
	}

	return nil, classify(uploadRules, status, string(body))
}

// GetPictures returns the caller's own pictures. Ordering is whatever the
// backend sends; sorting for display is the caller's concern.
func (c *HTTPClient) GetPictures(ctx context.Context, token string) ([]models.Picture, error) {
	return c.getPictureList(ctx, "/getpictures", token)
}

// GetAllPictures returns the public feed.
func (c *HTTPClient) GetAllPictures(ctx context.Context, token string) ([]models.Picture, error) {
	return c.getPictureList(ctx, "/getallpictures", token)
}

func (c *HTTPClient) getPictureList(ctx context.Context, path, token string) ([]models.Picture, error) {
	status, body, err := c.do(ctx, http.MethodGet, path, token, "", nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		var resp picturesResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			c.log.Error(ctx, "decoding picture list", "path", path, "err", err)
			return nil, unknownError()
		}
		return resp.Pictures, nil
	}

	return nil, classify(userScoped, status, string(body))
}

// GetPicture fetches one picture with its full-resolution image data.
func (c *HTTPClient) GetPicture(ctx context.Context, token, pictureID string) (*models.Picture, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/getpicture/"+url.PathEscape(pictureID), token, "", nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		var p models.Picture
		if err := json.Unmarshal(body, &p); err != nil {
			c.log.Error(ctx, "decoding picture", "err", err)
			return nil, unknownError()
		}
		return &p, nil
	}

	return nil, classify(pictureRules, status, string(body))
}

// DeletePicture removes one of the caller's pictures.
func (c *HTTPClient) DeletePicture(ctx context.Context, token, pictureID string) error {
	status, body, err := c.do(ctx, http.MethodDelete, "/deletepicture/"+url.PathEscape(pictureID), token, "", nil)
	if err != nil {
		return err
	}
	if status == http.StatusOK {
		return nil
	}
	return classify(pictureRules, status, string(body))
}

// AddComment posts a comment on a picture. Empty text is rejected by the
// services layer before reaching here; the 904 sentinel is still mapped in
// case the server disagrees about what "empty" means.
func (c *HTTPClient) AddComment(ctx context.Context, token, pictureID, text string) (*models.Comment, error) {
	status, body, err := c.postJSON(ctx, "/addcomment", token, addCommentRequest{PictureID: pictureID, CommentText: text})
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		return decodeOptionalComment(body)
	}

	return nil, classify(addCommentRules, status, string(body))
}

// GetComments lists a picture's comments. This is the one read that works
// without a bearer token.
func (c *HTTPClient) GetComments(ctx context.Context, pictureID string) ([]models.Comment, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/getcomments/"+url.PathEscape(pictureID), "", "", nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		var resp commentsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			c.log.Error(ctx, "decoding comment list", "err", err)
			return nil, unknownError()
		}
		return resp.Comments, nil
	}

	return nil, classify(getCommentsRules, status, string(body))
}

// RemoveComment deletes the caller's own comment.
func (c *HTTPClient) RemoveComment(ctx context.Context, token, commentID string) error {
	status, body, err := c.do(ctx, http.MethodDelete, "/removecomment/"+url.PathEscape(commentID), token, "", nil)
	if err != nil {
		return err
	}
	if status == http.StatusOK {
		return nil
	}
	return classify(commentRules, status, string(body))
}

// UpdateComment replaces the text of the caller's own comment, returning
// the updated comment when the backend provides one.
func (c *HTTPClient) UpdateComment(ctx context.Context, token, commentID, text string) (*models.Comment, error) {
	body, err := json.Marshal(updateCommentRequest{CommentText: text})
	if err != nil {
		return nil, unknownError()
	}

	status, respBody, err := c.do(ctx, http.MethodPut, "/updatecomment/"+url.PathEscape(commentID), token, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		return decodeOptionalComment(respBody)
	}

	return nil, classify(commentRules, status, string(respBody))
}

// decodeOptionalPicture tolerates mutation responses with no body: the
// backend returns the created resource on some endpoints and nothing on
// others.
func decodeOptionalPicture(body []byte) (*models.Picture, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var p models.Picture
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

func decodeOptionalComment(body []byte) (*models.Comment, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var c models.Comment
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, nil
	}
	return &c, nil
}
