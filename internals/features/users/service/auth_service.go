package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolpay_backend/internals/configs"
	"schoolpay_backend/internals/features/users/dto"
	"schoolpay_backend/internals/features/users/model"
	"schoolpay_backend/internals/features/users/repository"
)

/* ==========================
   Errors
========================== */

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is deactivated")
	ErrInvalidRole        = errors.New("invalid role")
)

type AuthService struct {
	Users repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthService(users repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{Users: users, Cfg: cfg}
}

/* ==========================
   Register
========================== */

// Register creates a new user. Email and username are checked
// separately so the conflict message tells the caller which one is
// already in use.
func (s *AuthService) Register(req dto.RegisterRequest) (*model.UserModel, error) {
	if _, err := s.Users.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.Users.FindByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleSchoolAdmin
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	user := &model.UserModel{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
		SchoolID: req.SchoolID,
		IsActive: true,
	}
	if err := s.Users.Create(user); err != nil {
		// The pre-checks race with concurrent registrations; the unique
		// index has the final word.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

/* ==========================
   Login
========================== */

func (s *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	token, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromUserModel(user),
	}, nil
}

func (s *AuthService) signAccessToken(user *model.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.Cfg.JWTExpiry).Unix(),
	}
	if user.SchoolID != nil {
		claims["school_id"] = *user.SchoolID
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Cfg.JWTSecret))
}
