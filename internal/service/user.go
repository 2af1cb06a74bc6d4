package service

import (
	"context"
	"errors"
	"time"

	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/store"
	"github.com/ddsolutions/careers-api/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserStore is what the registration service needs from the store.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	CountUsersByEmail(ctx context.Context, email string) (int64, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(s UserStore) *UserService {
	return &UserService{store: s}
}

// CreateUser registers a new account. Email uniqueness is checked before
// insert and enforced again by the unique index; both paths surface
// store.ErrEmailExists. Role is fixed here and never changed afterwards.
func (u *UserService) CreateUser(ctx context.Context, email, password, firstName, lastName string, role models.Role) (*models.User, error) {
	cnt, err := u.store.CountUsersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, store.ErrEmailExists
	}

	uid, err := utils.GenerateUserID()
	if err != nil {
		return nil, err
	}
	if password == "" {
		// OAuth users arrive without one; they can only sign in via Google
		password = utils.GenerateRandomString(12)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           uid,
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		Skills:       utils.DatatypesJSONFromStrings(nil),
		Profile:      datatypes.JSONMap{},
		Progress:     datatypes.JSONMap{"career_readiness": 0, "sessions": 0},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	// try create; a duplicate-key error that is not the email index means
	// the generated id collided (rare), so regenerate a few times
	for i := 0; i < 5; i++ {
		err = u.store.CreateUser(ctx, user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		uid, err2 := utils.GenerateUserID()
		if err2 != nil {
			return nil, err2
		}
		user.ID = uid
	}
	return nil, errors.New("could not create unique user id")
}
