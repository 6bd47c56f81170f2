package storage

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
)

// BlobStore is the file storage the attachment pipeline writes to. Stored
// paths are store-relative (e.g. "projects/3f2a....jpg") and are the only
// thing persisted on records.
type BlobStore interface {
	// Put writes data under a freshly generated path built from hint and the
	// extension of filename (see ObjectPath) and returns that path.
	Put(ctx context.Context, data []byte, hint, filename string) (string, error)
	// Delete removes the object at path. Deleting a missing object is not an
	// error.
	Delete(ctx context.Context, path string) error
	// Exists reports whether an object is stored at path.
	Exists(ctx context.Context, path string) (bool, error)
}

// Path hints by field purpose. A hint ending in "/" yields "<dir>/<uuid><ext>";
// a hint ending in "_" yields "<dir>/<stem>_<uuid><ext>". These prefixes are a
// compatibility contract: previously stored data stays addressable.
const (
	HintProjectImage   = "projects/"
	HintExperienceLogo = "experience_logos/"
	HintAvatar         = "avatars/"
	HintResume         = "resumes/"
	HintAboutPicture   = "about/profile_"
	HintTrustedByLogo  = "about/company_logo_"
)

// ObjectPath builds a collision-resistant store path from a purpose hint and
// the original filename, preserving the file extension.
func ObjectPath(hint, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return hint + uuid.New().String() + ext
}
