package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the requester does not own the resource
	ErrForbidden = errors.New("you are not allowed to access this resource")
	// ErrCacheMiss will throw if the requested key is not present in cache
	ErrCacheMiss = errors.New("cache miss")
)

// Validation kinds raised at entity-construction time.
const (
	KindMissingProperty = "NOT_CONTAIN_NEEDED_PROPERTY"
	KindWrongDataType   = "NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// ValidationError reports a request payload that failed entity
// construction. Entity is the screaming-snake entity name, Kind one of
// the constants above, so the rendered form stays stable for clients,
// e.g. "NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY".
type ValidationError struct {
	Entity string
	Kind   string
}

func (e ValidationError) Error() string {
	return e.Entity + "." + e.Kind
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
