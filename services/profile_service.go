package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/forms"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/storage"
)

// ProfileService orchestrates updates to the operator's account settings,
// including the avatar and resume attachments. Accounts are only ever
// updated through this pipeline; creation and password changes belong to the
// authentication layer.
type ProfileService struct {
	logger zerolog.Logger
	users  *database.UserRepo
	store  storage.BlobStore
}

func NewProfileService(users *database.UserRepo, store storage.BlobStore) ProfileService {
	return ProfileService{
		logger: log.With().Str("serviceName", "profileService").Logger(),
		users:  users,
		store:  store,
	}
}

type ProfileInput struct {
	Name       string
	Email      string
	Occupation string
	Bio        string
	Avatar     forms.FileInput
	Resume     forms.FileInput
}

func (in ProfileInput) validate() error {
	v := errs.NewValidationError()
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "The Name field is required.")
	}
	if strings.TrimSpace(in.Email) == "" {
		v.Add("email", "The Email field is required.")
	} else {
		validateEmail(v, "email", in.Email)
	}
	if strings.TrimSpace(in.Occupation) == "" {
		v.Add("occupation", "The Occupation field is required.")
	}
	forms.ValidateFile(v, "avatar", in.Avatar, []string{"jpg", "jpeg", "png"}, 10<<20)
	forms.ValidateFile(v, "resume", in.Resume, []string{"pdf", "doc", "docx"}, 10<<20)
	return v.ErrOrNil()
}

func (s ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.findUser(userID)
}

func (s ProfileService) Update(ctx context.Context, userID uuid.UUID, in ProfileInput) (*models.User, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != user.Email {
		existing, err := s.users.FindByEmail(email)
		if err != nil {
			return nil, errs.NewDatabaseError("find", "user", err)
		}
		if existing != nil && existing.ID != userID {
			v := errs.NewValidationError()
			v.Add("email", "The Email has already been taken.")
			return nil, v
		}
	}

	rec := forms.NewReconciler(s.store)

	avatar, err := rec.Single(ctx, user.Avatar, in.Avatar, storage.HintAvatar)
	if err != nil {
		rec.Rollback(ctx)
		return nil, err
	}
	resume, err := rec.Single(ctx, user.Resume, in.Resume, storage.HintResume)
	if err != nil {
		rec.Rollback(ctx)
		return nil, err
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Email = email
	user.Occupation = strings.TrimSpace(in.Occupation)
	user.Bio = in.Bio
	user.Avatar = avatar
	user.Resume = resume

	if err := s.users.Update(user); err != nil {
		rec.Rollback(ctx)
		return nil, errs.NewDatabaseError("update", "user", err)
	}

	rec.Commit(ctx)
	return user, nil
}

func (s ProfileService) findUser(id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("user")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return user, nil
}
