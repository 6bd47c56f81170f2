package forms

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/storage"
)

// Reconciler compares prior attachment state against submitted file inputs
// and computes the final path values to persist. New uploads are written to
// the blob store immediately; deletions of superseded files are only
// scheduled, and run when Commit is called after the record write succeeds.
// If anything fails before that, Rollback removes this request's fresh
// uploads and discards the scheduled deletions, preferring a leaked orphan
// file over destroying the last copy of a referenced one.
type Reconciler struct {
	store     storage.BlobStore
	logger    zerolog.Logger
	deletions []string
	uploads   []string
}

func NewReconciler(store storage.BlobStore) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: log.With().Str("component", "reconciler").Logger(),
	}
}

// Single reconciles one attachment field and returns the final path value.
//
//   - omitted input: the prior path is carried forward untouched
//   - clear: the prior path (if any) is scheduled for deletion, final is nil
//   - upload: bytes go to a fresh generated path under hint; the prior path
//     (if any) is scheduled for deletion
func (r *Reconciler) Single(ctx context.Context, prior *string, in FileInput, hint string) (*string, error) {
	switch {
	case in.Omitted():
		return prior, nil

	case in.Cleared():
		if prior != nil && *prior != "" {
			r.deletions = append(r.deletions, *prior)
		}
		return nil, nil

	default:
		path, err := r.store.Put(ctx, in.Bytes(), hint, in.Filename())
		if err != nil {
			return nil, errs.NewBlobUploadError(hint, err)
		}
		r.uploads = append(r.uploads, path)
		if prior != nil && *prior != "" {
			r.deletions = append(r.deletions, *prior)
		}
		return &path, nil
	}
}

// List reconciles a list of per-entry attachments positionally: submitted[i]
// is matched against prior[i]. Entries past the end of prior have no stored
// file to supersede. Prior entries past the end of submitted are NOT handled
// here; the orchestrator detects removed entries by counting and schedules
// their deletions via ScheduleDelete.
func (r *Reconciler) List(ctx context.Context, prior []*string, submitted []FileInput, hint string) ([]*string, error) {
	finals := make([]*string, len(submitted))
	for i, in := range submitted {
		var priorAt *string
		if i < len(prior) {
			priorAt = prior[i]
		}
		final, err := r.Single(ctx, priorAt, in, hint)
		if err != nil {
			return nil, err
		}
		finals[i] = final
	}
	return finals, nil
}

// ScheduleDelete queues a stored path for deletion on Commit. Used for
// attachments owned by list entries that disappeared from the submission.
func (r *Reconciler) ScheduleDelete(path string) {
	if path != "" {
		r.deletions = append(r.deletions, path)
	}
}

// Commit runs the scheduled deletions. Called only after the record write
// succeeded; individual delete failures are logged and swallowed, since an
// orphaned old file is acceptable.
func (r *Reconciler) Commit(ctx context.Context) {
	for _, path := range r.deletions {
		if err := r.store.Delete(ctx, path); err != nil {
			r.logger.Warn().Err(err).Str("path", path).Msg("failed to delete superseded file")
		}
	}
	r.deletions = nil
	r.uploads = nil
}

// Rollback deletes the files uploaded during this request, best effort, and
// discards all scheduled deletions. Called when validation of a later field
// or the record write fails.
func (r *Reconciler) Rollback(ctx context.Context) {
	for _, path := range r.uploads {
		if err := r.store.Delete(ctx, path); err != nil {
			r.logger.Warn().Err(err).Str("path", path).Msg("failed to clean up fresh upload")
		}
	}
	r.deletions = nil
	r.uploads = nil
}

// Uploaded returns the store paths written by this reconciler so far.
func (r *Reconciler) Uploaded() []string {
	return r.uploads
}

// PendingDeletions returns the paths currently scheduled for deletion.
func (r *Reconciler) PendingDeletions() []string {
	return r.deletions
}
