package apperr

// ValidationError signals that caller-supplied fields failed a presence check.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError signals that an update or delete target does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found: " + e.ID
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// MissingFileError signals an upload request carrying no file at all.
type MissingFileError struct {
	Field string
}

func (e *MissingFileError) Error() string {
	return "no file provided in field " + e.Field
}

func NewMissingFile(field string) *MissingFileError {
	return &MissingFileError{Field: field}
}

// PayloadTooLargeError signals an upload exceeding the size limit. The size
// check runs before anything is forwarded to the media host.
type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return "payload too large"
}

// UploadError wraps a media-host failure. The upstream message is kept so it
// can be surfaced in the error response.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return "upload failed: " + e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func NewUpload(err error) *UploadError {
	return &UploadError{Err: err}
}
