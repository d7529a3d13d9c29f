package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/auth"
	"github.com/BruksfildServices01/barbercraft/internal/domain/user"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/models"
	"github.com/BruksfildServices01/barbercraft/internal/validators"
)

var (
	ErrCredentialsRequired = httperr.Validation("Username and password required")
	ErrPasswordTooShort    = httperr.Validation("Password must be at least 6 characters")
	ErrInvalidRole         = httperr.Validation("Invalid role")
	ErrInvalidEmail        = httperr.Validation("Invalid email address")
	ErrAdminSignupDisabled = httperr.ForbiddenErr("Admin registration is disabled")
	ErrUsernameTaken       = httperr.Validation("Username already exists")
	ErrEmailTaken          = httperr.Validation("Email already exists")
	ErrInvalidCredentials  = httperr.ErrBusiness(http.StatusUnauthorized, "Invalid credentials")
	ErrUserNotFound        = httperr.NotFoundErr("User not found")
)

type Options struct {
	AllowAdminSignup bool
}

type Service struct {
	users  user.Repository
	hasher *auth.Hasher
	tokens *auth.TokenIssuer
	audit  *audit.Dispatcher
	opts   Options
}

func NewService(
	users user.Repository,
	hasher *auth.Hasher,
	tokens *auth.TokenIssuer,
	audit *audit.Dispatcher,
	opts Options,
) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens, audit: audit, opts: opts}
}

// ======================================================
// REGISTER
// ======================================================

func (s *Service) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}
	if len(req.Password) < auth.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	switch role {
	case "":
		role = models.RoleUser
	case models.RoleUser:
	case models.RoleAdmin:
		if !s.opts.AllowAdminSignup {
			return nil, ErrAdminSignupDisabled
		}
	default:
		return nil, ErrInvalidRole
	}

	var email *string
	if e := strings.ToLower(strings.TrimSpace(req.Email)); e != "" {
		if !validators.IsEmail(e) {
			return nil, ErrInvalidEmail
		}
		email = &e
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Name:         strings.TrimSpace(req.Name),
	}

	if err := s.users.Create(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, s.duplicateReason(ctx, username)
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]string{"role": u.Role},
	})

	return s.respond(u)
}

// duplicateReason tells which unique column a failed insert hit.
func (s *Service) duplicateReason(ctx context.Context, username string) error {
	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil || taken {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

// ======================================================
// LOGIN
// ======================================================

func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if httperr.IsNotFound(err) {
			s.hasher.VerifyMissing(req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.respond(u)
}

// ======================================================
// ME
// ======================================================

func (s *Service) Me(ctx context.Context, userID uint) (*dto.MeResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &dto.MeResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Name:     u.Name,
	}, nil
}

func (s *Service) respond(u *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.TokenUser{ID: u.ID, Username: u.Username, Role: u.Role},
	}, nil
}
