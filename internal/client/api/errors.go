package api

// Code identifies a failure outcome. Numeric codes mirror the backend's
// sentinel vocabulary verbatim; the remaining values classify conditions the
// backend never names explicitly (transport failures, client-side
// validation, everything else).
type Code string

const (
	CodeUserNotFound      Code = "588"
	CodeEmailNotConfirmed Code = "566"
	CodeBadCredentials    Code = "800"
	CodeAlreadyRegistered Code = "885"
	CodeServerDown        Code = "500"
	CodeNoImage           Code = "900"
	CodeImageTooLarge     Code = "901"
	CodeBadImageType      Code = "902"
	CodePictureNotFound   Code = "903"
	CodeEmptyComment      Code = "904"
	CodeCommentNotFound   Code = "905"
	CodeForbidden         Code = "403"
	CodeNetwork           Code = "network"
	CodeUnknown           Code = "unknown"
	CodeValidation        Code = "validation"
)

// Class groups codes into the coarse failure taxonomy.
type Class string

const (
	ClassValidation      Class = "validation"
	ClassAuth            Class = "auth"
	ClassConflict        Class = "conflict"
	ClassServer          Class = "server"
	ClassNotFound        Class = "not-found"
	ClassForbidden       Class = "forbidden"
	ClassMalformedUpload Class = "malformed-upload"
	ClassNetwork         Class = "network"
	ClassUnknown         Class = "unknown"
)

// Class reports which taxonomy bucket the code belongs to.
func (c Code) Class() Class {
	switch c {
	case CodeValidation, CodeEmptyComment:
		return ClassValidation
	case CodeUserNotFound, CodeEmailNotConfirmed, CodeBadCredentials:
		return ClassAuth
	case CodeAlreadyRegistered:
		return ClassConflict
	case CodeServerDown:
		return ClassServer
	case CodePictureNotFound, CodeCommentNotFound:
		return ClassNotFound
	case CodeForbidden:
		return ClassForbidden
	case CodeNoImage, CodeImageTooLarge, CodeBadImageType:
		return ClassMalformedUpload
	case CodeNetwork:
		return ClassNetwork
	default:
		return ClassUnknown
	}
}

// Error is the uniform failure outcome of every API operation. Message is
// chosen by the client and is ready for display; callers are not expected
// to construct their own wording for the enumerated codes.
//
// Match with errors.As:
//
//	var apiErr *api.Error
//	if errors.As(err, &apiErr) && apiErr.Code == api.CodeForbidden { ... }
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError constructs an Error. Exposed so services can produce outcomes
// (client-side validation, missing session) in the same shape the transport
// does.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Display messages shared across operations. Operation-specific wording
// lives with the classification rules.
const (
	msgNetwork = "Unable to connect to the server. Please check your internet connection and try again."
	msgUnknown = "An unexpected error has occurred, please try again later"

	// VerifyEmailMessage is the success message for registration: no token
	// is issued until the address is confirmed.
	VerifyEmailMessage = "Please verify your email before logging in."
)

// ErrNoSession is returned by operations that need a bearer token when the
// store holds none. Classified as validation: it is detected client-side
// before any network call.
var ErrNoSession = &Error{Code: CodeValidation, Message: "You are not logged in. Please log in first."}

// ErrEmptyComment rejects whitespace-only comment text before a round trip
// the server is known to answer with 904.
var ErrEmptyComment = &Error{Code: CodeValidation, Message: "Please enter a comment"}

func networkError() *Error {
	return &Error{Code: CodeNetwork, Message: msgNetwork}
}

func unknownError() *Error {
	return &Error{Code: CodeUnknown, Message: msgUnknown}
}
