package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBlobUpload marks a failed blob store write. An upload failure aborts the
// whole operation; delete failures during reconciliation are logged and
// swallowed by the caller, since an orphaned old file is an acceptable
// outcome and a lost record is not.
var ErrBlobUpload = errors.New("blob upload failed")

func NewBlobUploadError(path string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrBlobUpload,
		Details:    fmt.Sprintf("Failed to store file at %s", path),
		Cause:      cause,
	}
}

func IsBlobUploadError(err error) bool {
	return errors.Is(err, ErrBlobUpload)
}
