package service

import (
	"context"
	"log/slog"

	"github.com/forgo/volunteer/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Save(user model.User) model.User
	GetUserByEmail(email string) model.User
	DeleteByEmail(email string)
}

// UserService handles registration and the login session
type UserService struct {
	userRepo UserRepository
	session  *Session
	logger   *slog.Logger
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	UserRepo UserRepository
	Session  *Session     // Shared with the other services
	Logger   *slog.Logger // Optional, defaults to slog.Default()
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	session := cfg.Session
	if session == nil {
		session = NewSession()
	}
	return &UserService{
		userRepo: cfg.UserRepo,
		session:  session,
		logger:   componentLogger(cfg.Logger, "user_service"),
	}
}

// Register stores a new volunteer or organization account
func (s *UserService) Register(ctx context.Context, user model.User) (model.User, error) {
	acct, err := accountOf(user)
	if err != nil {
		return nil, err
	}
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if existing := s.userRepo.GetUserByEmail(acct.Email); existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	saved := s.userRepo.Save(user)
	s.logger.InfoContext(ctx, "user registered",
		slog.String("email", acct.Email),
		slog.String("role", string(user.Role())),
	)
	return saved, nil
}

// Login ends any current session, then starts a new one when email and
// password match a registered user. A failed login leaves nobody logged in.
func (s *UserService) Login(ctx context.Context, email, password string) bool {
	s.Logout(ctx)

	user := s.userRepo.GetUserByEmail(email)
	if user == nil {
		s.logger.InfoContext(ctx, "login failed: unknown email", slog.String("email", email))
		return false
	}
	if !user.Base().PasswordMatches(password) {
		s.logger.InfoContext(ctx, "login failed: wrong password", slog.String("email", email))
		return false
	}

	sessionID := s.session.Start(user)
	s.logger.InfoContext(ctx, "user logged in",
		slog.String("email", email),
		slog.String("session_id", sessionID),
	)
	return true
}

// Logout clears the session
func (s *UserService) Logout(ctx context.Context) {
	if user := s.session.User(); user != nil {
		s.logger.DebugContext(ctx, "user logged out", slog.String("email", user.Base().Email))
	}
	s.session.Clear()
}

// DeleteAccount removes the logged-in user and ends the session. Without a
// session it does nothing.
func (s *UserService) DeleteAccount(ctx context.Context) {
	user := s.session.User()
	if user == nil {
		return
	}
	email := user.Base().Email
	s.userRepo.DeleteByEmail(email)
	s.session.Clear()
	s.logger.InfoContext(ctx, "account deleted", slog.String("email", email))
}

// CurrentUser returns the logged-in user, or nil
func (s *UserService) CurrentUser() model.User {
	return s.session.User()
}

// Session returns the session this service manages
func (s *UserService) Session() *Session {
	return s.session
}

// componentLogger scopes logger to a component, falling back to the default logger
func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
