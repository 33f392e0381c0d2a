package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
	"parth-agrotech/internal/testutil"
	"parth-agrotech/pkg/jwt"
	"parth-agrotech/pkg/session"
)

func init() {
	hashCost = bcrypt.MinCost
}

func newTestService(t *testing.T) *userService {
	db := testutil.NewTestDB(t)
	return NewUserService(
		NewUserRepository(db),
		session.NewMemoryStore(100, time.Hour*24),
		jwt.NewJWTService("test-secret"),
		24*time.Hour,
	).(*userService)
}

func setupAdmin(t *testing.T, svc *userService) domain.UserResponse {
	t.Helper()
	admin, err := svc.Setup(context.Background(), domain.SetupRequest{Username: "parthagro", Password: "secret"})
	require.NoError(t, err)
	return admin
}

func TestSetupOnlyOnce(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	admin := setupAdmin(t, svc)
	assert.Equal(t, "parthagro", admin.Username)
	assert.Equal(t, "admin", admin.Role)

	_, err := svc.Setup(ctx, domain.SetupRequest{Username: "second", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrAdminAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	setupAdmin(t, svc)

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "parthagro", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nouser", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnknownUser)

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "parthagro", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionToken)
	assert.Equal(t, "parthagro", res.User.Username)

	me, err := svc.WhoAmI(ctx, res.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, me.ID)

	require.NoError(t, svc.Logout(ctx, res.SessionToken))
	_, err = svc.WhoAmI(ctx, res.SessionToken)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionExpires(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	setupAdmin(t, svc)

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "parthagro", Password: "secret"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	_, err = svc.Authenticate(ctx, res.SessionToken)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, token := range []string{"", "abc.def.ghi"} {
		_, err := svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated, token)
	}

	forged, err := jwt.NewJWTService("other-secret").GenerateSessionToken(domain.Session{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, forged)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRenameUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	setupAdmin(t, svc)

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "parthagro", Password: "secret"})
	require.NoError(t, err)

	renamed, err := svc.RenameUser(ctx, "parthagro", "parth.admin")
	require.NoError(t, err)
	assert.Equal(t, "parth.admin", renamed.Username)

	_, err = svc.Authenticate(ctx, res.SessionToken)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "parth.admin", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.RenameUser(ctx, "parthagro", "someone")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// staleLookupRepository misses one username on lookup, as when a concurrent
// request takes it between the check and the write.
type staleLookupRepository struct {
	UserRepository
	hidden string
}

func (r staleLookupRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	if username == r.hidden {
		return nil, gorm.ErrRecordNotFound
	}
	return r.UserRepository.GetUserByUsername(ctx, username)
}

func TestUsernameUniqueAtWrite(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	setupAdmin(t, svc)

	err := svc.userRepository.CreateUser(ctx, &entities.User{Username: "parthagro", Password: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, svc.userRepository.CreateUser(ctx, &entities.User{Username: "field.office", Password: "x"}))
	svc.userRepository = staleLookupRepository{UserRepository: svc.userRepository, hidden: "field.office"}

	_, err = svc.RenameUser(ctx, "parthagro", "field.office")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	admin := setupAdmin(t, svc)

	assert.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, admin.ID), domain.ErrCannotDeleteYourself)
	assert.ErrorIs(t, svc.DeleteUser(ctx, uuid.NewString(), admin.ID), domain.ErrUserNotFound)

	other := uuid.NewString()
	require.NoError(t, svc.DeleteUser(ctx, admin.ID, other))
	_, err := svc.GetUserByID(ctx, admin.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	users, err := svc.GetUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
