package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarpov/picshare/internal/logging"
)

func testClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	return NewHTTPClient(srv.URL, 5*time.Second, log)
}

func asAPIError(t *testing.T, err error) *Error {
	t.Helper()
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr), "expected *api.Error, got %v", err)
	return apiErr
}

func TestLogin(t *testing.T) {
	t.Run("success returns token", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/login", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"Email":"a@b.c","Password":"pw"}`, string(body))
			w.Write([]byte(`{"accessToken":"abc"}`))
		}))

		token, err := c.Login(context.Background(), "a@b.c", "pw")
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
	})

	t.Run("sentinel body maps to code", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("800"))
		}))

		_, err := c.Login(context.Background(), "a@b.c", "wrong")
		apiErr := asAPIError(t, err)
		assert.Equal(t, CodeBadCredentials, apiErr.Code)
		assert.Equal(t, "Incorrect email or password", apiErr.Message)
	})

	t.Run("unreachable server maps to network", func(t *testing.T) {
		log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
		c := NewHTTPClient("http://127.0.0.1:1", time.Second, log)

		_, err := c.Login(context.Background(), "a@b.c", "pw")
		apiErr := asAPIError(t, err)
		assert.Equal(t, CodeNetwork, apiErr.Code)
		assert.Equal(t, msgNetwork, apiErr.Message)
	})
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/register", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"Username":"dave","Password":"pw","Email":"a@b.c"}`, string(body))
		}))

		require.NoError(t, c.Register(context.Background(), "dave", "a@b.c", "pw"))
	})

	t.Run("duplicate via status", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(885)
		}))

		err := c.Register(context.Background(), "dave", "a@b.c", "pw")
		assert.Equal(t, CodeAlreadyRegistered, asAPIError(t, err).Code)
	})

	t.Run("duplicate via body", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("885"))
		}))

		err := c.Register(context.Background(), "dave", "a@b.c", "pw")
		assert.Equal(t, CodeAlreadyRegistered, asAPIError(t, err).Code)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("success rotates token", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/refreash", r.URL.Path)
			assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))
			w.Write([]byte(`{"accessToken":"new"}`))
		}))

		token, err := c.RefreshToken(context.Background(), "old")
		require.NoError(t, err)
		assert.Equal(t, "new", token)
	})

	t.Run("empty token in 200 body is a failure", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"accessToken":"  "}`))
		}))

		_, err := c.RefreshToken(context.Background(), "old")
		apiErr := asAPIError(t, err)
		assert.Equal(t, "Invalid token received from server", apiErr.Message)
	})

	t.Run("user gone", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))

		_, err := c.RefreshToken(context.Background(), "old")
		assert.Equal(t, CodeUserNotFound, asAPIError(t, err).Code)
	})

	t.Run("any other failure", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		_, err := c.RefreshToken(context.Background(), "old")
		apiErr := asAPIError(t, err)
		assert.Equal(t, "Token refresh failed", apiErr.Message)
	})
}

func TestRetrieveUser(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/retrieveuser", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"uuid":"u1","username":"dave","email":"a@b.c"}`))
	}))

	u, err := c.RetrieveUser(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UUID)
	assert.Equal(t, "dave", u.Username)
}

func TestUploadPicture(t *testing.T) {
	t.Run("multipart layout", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/uploadpicture", r.URL.Path)

			mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			require.NoError(t, err)
			require.Equal(t, "multipart/form-data", mediaType)

			mr := multipart.NewReader(r.Body, params["boundary"])

			part, err := mr.NextPart()
			require.NoError(t, err)
			assert.Equal(t, "image", part.FormName())
			assert.Equal(t, "cat.png", part.FileName())
			assert.Equal(t, "image/png", part.Header.Get("Content-Type"))
			data, _ := io.ReadAll(part)
			assert.Equal(t, []byte{1, 2, 3}, data)

			part, err = mr.NextPart()
			require.NoError(t, err)
			assert.Equal(t, "description", part.FormName())
			desc, _ := io.ReadAll(part)
			assert.Equal(t, "a cat", string(desc))

			w.Write([]byte(`{"pictureId":"p1","fileName":"cat.png"}`))
		}))

		file := UploadFile{Name: "cat.png", ContentType: "image/png", Data: []byte{1, 2, 3}}
		p, err := c.UploadPicture(context.Background(), "tok", file, "a cat")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "p1", p.PictureID)
	})

	t.Run("defaults fill missing name and type", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			require.NoError(t, err)

			part, err := multipart.NewReader(r.Body, params["boundary"]).NextPart()
			require.NoError(t, err)
			assert.Equal(t, "photo.jpg", part.FileName())
			assert.Equal(t, "image/jpeg", part.Header.Get("Content-Type"))
		}))

		_, err := c.UploadPicture(context.Background(), "tok", UploadFile{Data: []byte{1}}, "")
		require.NoError(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("901"))
		}))

		_, err := c.UploadPicture(context.Background(), "tok", UploadFile{Data: []byte{1}}, "")
		assert.Equal(t, CodeImageTooLarge, asAPIError(t, err).Code)
	})
}

func TestGetPictures(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getpictures", r.URL.Path)
		w.Write([]byte(`{"pictures":[{"pictureId":"p1"},{"pictureId":"p2"}]}`))
	}))

	pictures, err := c.GetPictures(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, pictures, 2)
	assert.Equal(t, "p1", pictures[0].PictureID)
}

func TestGetPicture(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/getpicture/p1", r.URL.Path)
			w.Write([]byte(`{"pictureId":"p1","imageData":"aGk="}`))
		}))

		p, err := c.GetPicture(context.Background(), "tok", "p1")
		require.NoError(t, err)
		assert.Equal(t, "aGk=", p.ImageData)
	})

	t.Run("forbidden", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		p, err := c.GetPicture(context.Background(), "tok", "p1")
		assert.Nil(t, p)
		assert.Equal(t, CodeForbidden, asAPIError(t, err).Code)
	})
}

func TestDeletePicture(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/deletepicture/p1", r.URL.Path)
	}))

	require.NoError(t, c.DeletePicture(context.Background(), "tok", "p1"))
}

func TestAddComment(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/addcomment", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"PictureId":"p1","CommentText":"nice"}`, string(body))
		w.Write([]byte(`{"commentId":"c1","comment":"nice"}`))
	}))

	comment, err := c.AddComment(context.Background(), "tok", "p1", "nice")
	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, "c1", comment.CommentID)
}

func TestGetComments(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getcomments/p1", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"comments":[{"commentId":"c1"}]}`))
	}))

	comments, err := c.GetComments(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
}

func TestUpdateComment(t *testing.T) {
	t.Run("returns updated comment when body present", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/updatecomment/c1", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"CommentText":"edited"}`, string(body))
			w.Write([]byte(`{"commentId":"c1","comment":"edited"}`))
		}))

		comment, err := c.UpdateComment(context.Background(), "tok", "c1", "edited")
		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, "edited", comment.Comment)
	})

	t.Run("empty success body yields nil comment", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

		comment, err := c.UpdateComment(context.Background(), "tok", "c1", "edited")
		require.NoError(t, err)
		assert.Nil(t, comment)
	})

	t.Run("comment gone", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := c.UpdateComment(context.Background(), "tok", "c1", "edited")
		assert.Equal(t, CodeCommentNotFound, asAPIError(t, err).Code)
	})
}

func TestRemoveComment(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/removecomment/c1", r.URL.Path)
	}))

	require.NoError(t, c.RemoveComment(context.Background(), "tok", "c1"))
}

func TestDeleteAccount(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/deleteuser", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
	}))

	require.NoError(t, c.DeleteAccount(context.Background(), "tok"))
}
