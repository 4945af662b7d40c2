package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/app/repositories"
	"github.com/sicproject/backend/internal/pkg/apperrors"
)

// AuthService defines the account-facing operations.
type AuthService interface {
	// Authenticate checks the credentials and, for student accounts,
	// joins in the linked student record. A bad username and a bad
	// password are deliberately indistinguishable here.
	Authenticate(ctx context.Context, username, password string, meta RequestMeta) (*dto.LoginResponse, error)
	// Register creates a new student-role account.
	Register(ctx context.Context, username, password string, meta RequestMeta) (int64, error)
	// UsernameExists reports whether an account exists. Unlike login,
	// this answer distinguishes known from unknown usernames.
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type credentialStore interface {
	GetByCredentials(ctx context.Context, username, password string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type studentGetter interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
}

type tokenIssuer interface {
	GenerateToken(username, role, studentID string) (string, error)
}

type authServiceImpl struct {
	users    credentialStore
	students studentGetter
	tokens   tokenIssuer
	audit    AuditService
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users credentialStore, students studentGetter, tokens tokenIssuer, audit AuditService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		users:    users,
		students: students,
		tokens:   tokens,
		audit:    audit,
		logger:   logger,
	}
}

// Authenticate looks up the account by exact credential match.
func (s *authServiceImpl) Authenticate(ctx context.Context, username, password string, meta RequestMeta) (*dto.LoginResponse, error) {
	user, err := s.users.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.audit.Record(ctx, meta.ActorOr("unknown"), "login_fail", meta.Endpoint, meta.IP, "attempt:"+username)
			return nil, apperrors.ErrInvalidCredentials
		}
		s.audit.Record(ctx, meta.ActorOr("unknown"), "login_error", meta.Endpoint, meta.IP, err.Error())
		return nil, classifyStoreError(err)
	}

	var studentID string
	if user.StudentID != nil {
		studentID = *user.StudentID
	}

	token, err := s.tokens.GenerateToken(user.Username, user.Role, studentID)
	if err != nil {
		s.audit.Record(ctx, user.Username, "login_error", meta.Endpoint, meta.IP, err.Error())
		s.logger.Error().Err(err).Str("username", user.Username).Msg("Token generation failed")
		return nil, classifyStoreError(err)
	}

	resp := &dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}

	if user.Role == models.RoleStudent && studentID != "" {
		resp.StudentID = studentID
		student, err := s.students.GetByID(ctx, studentID)
		if err == nil {
			resp.StudentInfo = student
		} else if !errors.Is(err, repositories.ErrNotFound) {
			s.logger.Warn().Err(err).Str("studentID", studentID).Msg("Could not join student record into login response")
		}
	}

	s.audit.Record(ctx, user.Username, "login_success", meta.Endpoint, meta.IP, "token issued")
	return resp, nil
}

// Register inserts a new student-role account.
func (s *authServiceImpl) Register(ctx context.Context, username, password string, meta RequestMeta) (int64, error) {
	id, err := s.users.Create(ctx, &models.User{
		Username: username,
		Password: password,
		Role:     models.RoleStudent,
	})
	if err != nil {
		s.audit.Record(ctx, meta.ActorOr("unknown"), "register_error", meta.Endpoint, meta.IP, err.Error())
		return 0, classifyStoreError(err)
	}

	s.audit.Record(ctx, username, "register", meta.Endpoint, meta.IP, map[string]interface{}{"id": id})
	return id, nil
}

// UsernameExists reports account existence for the forgot-password check.
func (s *authServiceImpl) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return false, classifyStoreError(err)
	}
	return exists, nil
}
