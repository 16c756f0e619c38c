package api

import (
	"net/http"
	"strings"
)

// The backend signals domain failures over two channels: a non-2xx HTTP
// status, or a 2xx/409/etc. response whose raw body equals a sentinel
// numeric string ("588", "885", ...). Which channel is used varies by
// endpoint, so each operation carries an ordered rule list evaluated
// top-down against both. The lists below are the single source of truth
// for the mapping; the transport never inspects statuses or bodies outside
// of them.

type rule struct {
	match   func(status int, body string) bool
	code    Code
	message string
}

func bodyIs(sentinel string) func(int, string) bool {
	return func(_ int, body string) bool { return body == sentinel }
}

func statusIs(status int) func(int, string) bool {
	return func(s int, _ string) bool { return s == status }
}

func statusOrBodyIs(status int, sentinel string) func(int, string) bool {
	return func(s int, body string) bool { return s == status || body == sentinel }
}

// match returns the first matching rule's Error, or nil when none applies.
// The body is compared with surrounding whitespace trimmed.
func match(rules []rule, status int, body string) *Error {
	body = strings.TrimSpace(body)
	for _, r := range rules {
		if r.match(status, body) {
			return &Error{Code: r.code, Message: r.message}
		}
	}
	return nil
}

// classify is match with an unclassified-failure fallback.
func classify(rules []rule, status int, body string) *Error {
	if e := match(rules, status, body); e != nil {
		return e
	}
	return unknownError()
}

const (
	msgUserNotFound     = "User not found. Please log in again."
	msgPictureNotFound  = "Picture not found."
	msgCommentNotFound  = "Comment not found."
	msgPictureForbidden = "You don't have permission to access this picture."
	msgCommentForbidden = "You don't have permission to modify this comment."
)

// userScoped covers the alternate channels every bearer-token operation
// shares: 409 or body "588" both mean the token's user no longer exists.
var userScoped = []rule{
	{statusOrBodyIs(http.StatusConflict, "588"), CodeUserNotFound, msgUserNotFound},
}

var loginRules = []rule{
	{bodyIs("588"), CodeUserNotFound, "Incorrect email or password"},
	{bodyIs("566"), CodeEmailNotConfirmed, "Please confirm your email before logging in"},
	{bodyIs("800"), CodeBadCredentials, "Incorrect email or password"},
}

var registerRules = []rule{
	{statusOrBodyIs(885, "885"), CodeAlreadyRegistered, "This email is already registered or a verification email has already been sent to this address. Please wait 10 minutes before trying again."},
	{statusOrBodyIs(http.StatusInternalServerError, "500"), CodeServerDown, "The server is temporarily down and will be back up as soon as possible. Please try again later."},
}

var uploadRules = append([]rule{
	{bodyIs("900"), CodeNoImage, "No image file was provided."},
	{bodyIs("901"), CodeImageTooLarge, "The image is too large. The maximum size is 10MB."},
	{bodyIs("902"), CodeBadImageType, "Invalid image type. Please choose a different photo."},
}, userScoped...)

// pictureRules serve get/delete of a single picture: forbidden (not the
// owner) is distinct from picture-not-found, which is distinct from
// user-not-found.
var pictureRules = append([]rule{
	{statusIs(http.StatusForbidden), CodeForbidden, msgPictureForbidden},
	{statusOrBodyIs(http.StatusNotFound, "903"), CodePictureNotFound, msgPictureNotFound},
}, userScoped...)

// addCommentRules: the referenced resource is a picture, so a bare 404
// means the picture is gone; "904" reports empty text the server rejected.
var addCommentRules = append([]rule{
	{bodyIs("904"), CodeEmptyComment, "Comment text cannot be empty."},
	{statusOrBodyIs(http.StatusNotFound, "903"), CodePictureNotFound, msgPictureNotFound},
}, userScoped...)

// commentRules serve remove/update of a single comment: a bare 404 means
// the comment is gone, while body "903" still disambiguates a vanished
// picture.
var commentRules = append([]rule{
	{statusIs(http.StatusForbidden), CodeForbidden, msgCommentForbidden},
	{bodyIs("903"), CodePictureNotFound, msgPictureNotFound},
	{statusOrBodyIs(http.StatusNotFound, "905"), CodeCommentNotFound, msgCommentNotFound},
	{bodyIs("904"), CodeEmptyComment, "Comment text cannot be empty."},
}, userScoped...)

// getCommentsRules: unauthenticated picture-scoped read.
var getCommentsRules = []rule{
	{statusOrBodyIs(http.StatusNotFound, "903"), CodePictureNotFound, msgPictureNotFound},
}
