package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SaiVignesh27/unified-platform/internal/apperrors"
	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/security"
	"github.com/SaiVignesh27/unified-platform/internal/store"
)

// AuthService registers and authenticates accounts. Passwords are stored as
// bcrypt hashes, never plaintext.
type AuthService struct {
	freelancers store.FreelancerStore
	recruiters  store.RecruiterStore
	tokens      *security.TokenProvider
}

func NewAuthService(freelancers store.FreelancerStore, recruiters store.RecruiterStore, tokens *security.TokenProvider) *AuthService {
	return &AuthService{freelancers: freelancers, recruiters: recruiters, tokens: tokens}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Company  string
}

// Session is the authenticated view returned by register and login.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Register creates an account in the table matching the requested role.
// The email namespace spans both tables: an address used by either role is
// taken.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role != models.RoleFreelancer && role != models.RoleRecruiter {
		return nil, apperrors.Validation("role", "must be freelancer or recruiter")
	}
	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Unhandled("hash password", err)
	}

	var id uuid.UUID
	switch role {
	case models.RoleFreelancer:
		freelancer := &models.Freelancer{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hash),
			Role:     models.RoleFreelancer,
		}
		if err := s.freelancers.Create(ctx, freelancer); err != nil {
			return nil, err
		}
		id = freelancer.ID
	case models.RoleRecruiter:
		recruiter := &models.Recruiter{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hash),
			Role:     models.RoleRecruiter,
			Company:  input.Company,
		}
		if err := s.recruiters.Create(ctx, recruiter); err != nil {
			return nil, err
		}
		id = recruiter.ID
	}
	return s.newSession(id, input.Name, input.Email, role)
}

// Login checks the freelancer table first, then the recruiter table. A bad
// email and a bad password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if freelancer, err := s.freelancers.GetByEmail(ctx, email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(freelancer.Password), []byte(password)) == nil {
			return s.newSession(freelancer.ID, freelancer.Name, freelancer.Email, models.RoleFreelancer)
		}
		return nil, apperrors.Unauthorized("invalid email or password")
	} else if !apperrors.Is(err, apperrors.KindNotFound) {
		return nil, err
	}

	recruiter, err := s.recruiters.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(recruiter.Password), []byte(password)) != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}
	return s.newSession(recruiter.ID, recruiter.Name, recruiter.Email, models.RoleRecruiter)
}

// CurrentUser resolves the principal to its full account record. Password
// fields never serialize.
func (s *AuthService) CurrentUser(ctx context.Context, id uuid.UUID, role string) (any, error) {
	switch role {
	case models.RoleFreelancer:
		return s.freelancers.GetByID(ctx, id)
	case models.RoleRecruiter:
		return s.recruiters.GetByID(ctx, id)
	default:
		return nil, apperrors.Unauthorized("unknown role")
	}
}

func (s *AuthService) ensureEmailFree(ctx context.Context, email string) error {
	if _, err := s.freelancers.GetByEmail(ctx, email); err == nil {
		return apperrors.Duplicate("email already exists")
	} else if !apperrors.Is(err, apperrors.KindNotFound) {
		return err
	}
	if _, err := s.recruiters.GetByEmail(ctx, email); err == nil {
		return apperrors.Duplicate("email already exists")
	} else if !apperrors.Is(err, apperrors.KindNotFound) {
		return err
	}
	return nil
}

func (s *AuthService) newSession(id uuid.UUID, name, email, role string) (*Session, error) {
	token, expiresAt, err := s.tokens.Generate(id, role)
	if err != nil {
		return nil, apperrors.Unhandled("issue token", err)
	}
	return &Session{ID: id, Name: name, Email: email, Role: role, Token: token, ExpiresAt: expiresAt}, nil
}
