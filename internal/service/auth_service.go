package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atulv2861/seven-healer-backend/internal/jwt"
	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminOnly          = errors.New("only active admin users can log in")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)

// SuperuserConfig is the fixed administrator identity that authenticates
// without a stored record. It never touches the database.
type SuperuserConfig struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type SignupDTO struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Role      string
}

type AuthService interface {
	Signup(ctx context.Context, dto SignupDTO) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, model.Identity, error)
	ResolveIdentity(ctx context.Context, token string) (model.Identity, error)
}

type authService struct {
	userRepo   repository.UserRepository
	superuser  SuperuserConfig
	expiresMin int
}

func NewAuthService(userRepo repository.UserRepository, superuser SuperuserConfig, expiresMin int) AuthService {
	return &authService{
		userRepo:   userRepo,
		superuser:  superuser,
		expiresMin: expiresMin,
	}
}

func (s *authService) Signup(ctx context.Context, dto SignupDTO) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := dto.Role
	if role == "" {
		role = model.RoleUser
	}

	// Accounts always start inactive; an administrator activates them.
	user := &model.User{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        dto.Phone,
		Role:         role,
		IsActive:     false,
	}

	newID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	user.ID = newID

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, model.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var identity model.Identity
	if email == strings.ToLower(s.superuser.Email) && password == s.superuser.Password {
		identity = s.superuserIdentity()
	} else {
		user, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return "", model.Identity{}, err
		}
		if user == nil {
			return "", model.Identity{}, ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return "", model.Identity{}, ErrInvalidCredentials
		}
		if user.Role != model.RoleAdmin || !user.IsActive {
			return "", model.Identity{}, ErrAdminOnly
		}
		identity = model.Identity{User: user}
	}

	token, err := jwt.GenerateToken(identity.Email(), s.expiresMin)
	if err != nil {
		return "", model.Identity{}, err
	}

	return token, identity, nil
}

func (s *authService) ResolveIdentity(ctx context.Context, token string) (model.Identity, error) {
	subject, err := jwt.SubjectFromToken(token)
	if err != nil {
		return model.Identity{}, ErrTokenInvalid
	}

	if strings.EqualFold(subject, s.superuser.Email) {
		return s.superuserIdentity(), nil
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(subject))
	if err != nil {
		return model.Identity{}, err
	}
	if user == nil {
		return model.Identity{}, ErrTokenInvalid
	}

	return model.Identity{User: user}, nil
}

func (s *authService) superuserIdentity() model.Identity {
	return model.Identity{
		Superuser: true,
		User: &model.User{
			ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(s.superuser.Email)),
			FirstName: s.superuser.FirstName,
			LastName:  s.superuser.LastName,
			Email:     s.superuser.Email,
			Role:      model.RoleAdmin,
			IsActive:  true,
		},
	}
}
