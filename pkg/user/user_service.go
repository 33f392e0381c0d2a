package user

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
	"parth-agrotech/pkg/jwt"
	"parth-agrotech/pkg/session"
)

var (
	hashCost = bcrypt.DefaultCost

	dummyHashOnce sync.Once
	dummyHash     []byte
)

// dummyPasswordHash is compared against when the username is unknown so that
// a failed login costs the same whether or not the user exists.
func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("parth-agrotech-dummy"), hashCost)
	})
	return dummyHash
}

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Logout(ctx context.Context, token string) error
		// Authenticate resolves a session token to a live session.
		Authenticate(ctx context.Context, token string) (domain.Session, error)
		WhoAmI(ctx context.Context, token string) (domain.UserResponse, error)
		Setup(ctx context.Context, req domain.SetupRequest) (domain.UserResponse, error)
		RenameUser(ctx context.Context, from, to string) (domain.UserResponse, error)

		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		GetUserByID(ctx context.Context, id string) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, id, actorID string) error
	}

	userService struct {
		userRepository UserRepository
		sessions       session.SessionStore
		jwtService     jwt.JWTService
		sessionTTL     time.Duration
		now            func() time.Time
	}
)

func NewUserService(userRepository UserRepository, sessions session.SessionStore, jwtService jwt.JWTService, sessionTTL time.Duration) UserService {
	return &userService{
		userRepository: userRepository,
		sessions:       sessions,
		jwtService:     jwtService,
		sessionTTL:     sessionTTL,
		now:            time.Now,
	}
}

func toUserResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(req.Password))
		return domain.LoginResponse{}, domain.ErrUnknownUser
	}
	if err != nil {
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredential
	}

	now := s.now()
	sess := domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID.String(),
		Username:  user.Username,
		Role:      user.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	token, err := s.jwtService.GenerateSessionToken(sess)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.LoginResponse{}, err
	}

	slog.Info("admin logged in", "username", user.Username)
	return domain.LoginResponse{
		SessionToken: token,
		ExpiresAt:    sess.ExpiresAt,
		User:         toUserResponse(user),
	}, nil
}

// Logout drops the session behind token. An unknown or invalid token is not
// an error.
func (s *userService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.jwtService.ParseSessionToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

func (s *userService) Authenticate(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	claims, err := s.jwtService.ParseSessionToken(token)
	if err != nil {
		return domain.Session{}, domain.ErrUnauthenticated
	}

	sess, err := s.sessions.Get(ctx, claims.ID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	if err != nil {
		return domain.Session{}, err
	}
	if sess.UserID != claims.UserID || !sess.ExpiresAt.After(s.now()) {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	return sess, nil
}

func (s *userService) WhoAmI(ctx context.Context, token string) (domain.UserResponse, error) {
	sess, err := s.Authenticate(ctx, token)
	if err != nil {
		return domain.UserResponse{}, err
	}
	userID, err := uuid.Parse(sess.UserID)
	if err != nil {
		return domain.UserResponse{}, domain.ErrUnauthenticated
	}
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, domain.ErrUnauthenticated
	}
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// Setup creates the first admin. It is refused once any admin exists.
func (s *userService) Setup(ctx context.Context, req domain.SetupRequest) (domain.UserResponse, error) {
	admins, err := s.userRepository.CountUsersByRole(ctx, entities.RoleAdmin)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if admins > 0 {
		return domain.UserResponse{}, domain.ErrAdminAlreadyExists
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.UserResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), hashCost)
	if err != nil {
		return domain.UserResponse{}, err
	}
	user := &entities.User{
		Username: req.Username,
		Password: string(hash),
		Role:     entities.RoleAdmin,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrUsernameTaken
		}
		return domain.UserResponse{}, err
	}

	slog.Info("admin user created", "username", user.Username)
	return toUserResponse(user), nil
}

func (s *userService) RenameUser(ctx context.Context, from, to string) (domain.UserResponse, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return domain.UserResponse{}, domain.NewValidationError("to", "required", "is required")
	}

	user, err := s.userRepository.GetUserByUsername(ctx, from)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.UserResponse{}, err
	}
	if from == to {
		return toUserResponse(user), nil
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, to); err == nil {
		return domain.UserResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	if err := s.userRepository.UpdateUsername(ctx, user.ID, to); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrUsernameTaken
		}
		return domain.UserResponse{}, err
	}
	// sessions carry the old username
	if err := s.sessions.DeleteByUser(ctx, user.ID.String()); err != nil {
		slog.Warn("could not drop sessions of renamed user", "user_id", user.ID, "error", err)
	}

	user.Username = to
	slog.Info("user renamed", "from", from, "to", to)
	return toUserResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, toUserResponse(&users[i]))
	}
	return res, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (domain.UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return domain.UserResponse{}, domain.ErrUserNotFound
	}
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id, actorID string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	if userID.String() == actorID {
		return domain.ErrCannotDeleteYourself
	}
	deleted, err := s.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}
	return s.sessions.DeleteByUser(ctx, userID.String())
}
