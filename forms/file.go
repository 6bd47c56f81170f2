package forms

import (
	"fmt"
	"path"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
)

type fileState int

const (
	fileOmitted fileState = iota
	fileClear
	fileUpload
)

// FileInput is the three-state signal for an attachment field in a submitted
// payload: the field was not touched (omitted), explicitly cleared, or carries
// a new upload. Collapsing omitted and clear into one state would silently
// erase stored files on partial updates, so the distinction is kept explicit.
type FileInput struct {
	state    fileState
	data     []byte
	filename string
}

// OmittedFile signals the field was absent from the payload; the stored value
// is carried forward untouched.
func OmittedFile() FileInput {
	return FileInput{state: fileOmitted}
}

// ClearFile signals the field was present but empty; the stored value is
// removed and its file deleted.
func ClearFile() FileInput {
	return FileInput{state: fileClear}
}

// NewUpload wraps fresh file bytes and the client-supplied filename, whose
// extension is preserved in the generated store path.
func NewUpload(data []byte, filename string) FileInput {
	return FileInput{state: fileUpload, data: data, filename: filename}
}

func (f FileInput) Omitted() bool  { return f.state == fileOmitted }
func (f FileInput) Cleared() bool  { return f.state == fileClear }
func (f FileInput) IsUpload() bool { return f.state == fileUpload }

func (f FileInput) Bytes() []byte    { return f.data }
func (f FileInput) Filename() string { return f.filename }
func (f FileInput) Size() int64      { return int64(len(f.data)) }

// Ext returns the lowercased filename extension without the leading dot.
func (f FileInput) Ext() string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(f.filename)), ".")
}

// ValidateFile checks an upload against an allowed extension list and a size
// cap, recording failures on v under field. Omitted and cleared inputs always
// pass.
func ValidateFile(v *errs.ValidationError, field string, f FileInput, allowedExts []string, maxBytes int64) {
	if !f.IsUpload() {
		return
	}
	ext := f.Ext()
	ok := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			ok = true
			break
		}
	}
	if !ok {
		v.Addf(field, "must be a file of type: %s", strings.Join(allowedExts, ", "))
		return
	}
	if f.Size() == 0 {
		v.Add(field, "uploaded file is empty")
		return
	}
	if f.Size() > maxBytes {
		v.Addf(field, "must not be greater than %s", formatSize(maxBytes))
	}
}

func formatSize(n int64) string {
	if n >= 1<<20 {
		return fmt.Sprintf("%dMB", n>>20)
	}
	return fmt.Sprintf("%dKB", n>>10)
}
