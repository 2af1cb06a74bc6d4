package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/store"
	"github.com/ddsolutions/careers-api/internal/utils"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	byEmail map[string]*models.User
}

func (f *fakeUserStore) CreateUser(ctx context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return store.ErrEmailExists
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserStore) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	if _, ok := f.byEmail[email]; ok {
		return 1, nil
	}
	return 0, nil
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc := NewUserService(&fakeUserStore{byEmail: map[string]*models.User{}})

	u, err := svc.CreateUser(context.Background(), "jane@x.com", "pw123", "Jane", "Doe", models.RoleStudent)
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if u.PasswordHash == "pw123" || u.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	ok, err := utils.ComparePasswordAndHash("pw123", u.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
	if !strings.HasPrefix(u.ID, "USR00") {
		t.Fatalf("unexpected user id %q", u.ID)
	}
	if u.Role != models.RoleStudent {
		t.Fatalf("role changed during creation: %q", u.Role)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	fs := &fakeUserStore{byEmail: map[string]*models.User{}}
	svc := NewUserService(fs)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "jane@x.com", "pw123", "Jane", "Doe", models.RoleStudent); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, err := svc.CreateUser(ctx, "jane@x.com", "other", "Janet", "Doe", models.RoleProfessional)
	if !errors.Is(err, store.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

// collidingUserStore rejects the first n inserts with a duplicate-key
// error that is not the email index, as a collision on the generated id
// would surface.
type collidingUserStore struct {
	rejectFirst  int
	attemptedIDs []string
	created      *models.User
}

func (f *collidingUserStore) CreateUser(ctx context.Context, u *models.User) error {
	f.attemptedIDs = append(f.attemptedIDs, u.ID)
	if len(f.attemptedIDs) <= f.rejectFirst {
		return gorm.ErrDuplicatedKey
	}
	cp := *u
	f.created = &cp
	return nil
}

func (f *collidingUserStore) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	return 0, nil
}

func TestCreateUser_IDCollisionRetriesWithFreshID(t *testing.T) {
	fs := &collidingUserStore{rejectFirst: 1}
	svc := NewUserService(fs)

	u, err := svc.CreateUser(context.Background(), "jane@x.com", "pw123", "Jane", "Doe", models.RoleStudent)
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if len(fs.attemptedIDs) != 2 {
		t.Fatalf("expected one retry, got attempts %v", fs.attemptedIDs)
	}
	if fs.attemptedIDs[0] == fs.attemptedIDs[1] {
		t.Fatalf("retry reused the colliding id %q", fs.attemptedIDs[0])
	}
	if u.ID != fs.attemptedIDs[1] {
		t.Fatalf("returned user carries id %q, stored %q", u.ID, fs.attemptedIDs[1])
	}
}

func TestCreateUser_PersistentCollisionGivesUp(t *testing.T) {
	fs := &collidingUserStore{rejectFirst: 100}
	svc := NewUserService(fs)

	_, err := svc.CreateUser(context.Background(), "jane@x.com", "pw123", "Jane", "Doe", models.RoleStudent)
	if err == nil {
		t.Fatal("expected an error after exhausting id retries")
	}
	if errors.Is(err, store.ErrEmailExists) {
		t.Fatal("an id collision must not be reported as a duplicate email")
	}
}

type failingUserStore struct {
	attempts int
}

func (f *failingUserStore) CreateUser(ctx context.Context, u *models.User) error {
	f.attempts++
	return errors.New("connection refused")
}

func (f *failingUserStore) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	return 0, nil
}

func TestCreateUser_NonDuplicateErrorIsNotRetried(t *testing.T) {
	fs := &failingUserStore{}
	svc := NewUserService(fs)

	_, err := svc.CreateUser(context.Background(), "jane@x.com", "pw123", "Jane", "Doe", models.RoleStudent)
	if err == nil {
		t.Fatal("expected the store error to surface")
	}
	if fs.attempts != 1 {
		t.Fatalf("a non-duplicate error must not trigger id retries, got %d attempts", fs.attempts)
	}
}

func TestCreateUser_EmptyPasswordGetsRandomOne(t *testing.T) {
	fs := &fakeUserStore{byEmail: map[string]*models.User{}}
	svc := NewUserService(fs)

	u, err := svc.CreateUser(context.Background(), "oauth@x.com", "", "O", "Auth", models.RoleStudent)
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	ok, err := utils.ComparePasswordAndHash("", u.PasswordHash)
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if ok {
		t.Fatal("empty password must not verify for an OAuth user")
	}
}
