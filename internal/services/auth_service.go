package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"catalog/internal/errs"
	"catalog/internal/models"
	"catalog/internal/repositories"
)

// DefaultRole is assigned to every newly registered user.
const DefaultRole = "ROLE_USER"

// AuthService handles registration, login and token validation.
type AuthService struct {
	userRepo   repositories.UserRepository
	roleRepo   repositories.RoleRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Register creates a new account with a bcrypt-hashed password and the
// default role. A taken username yields a DuplicateError.
func (s *AuthService) Register(username, password string) error {
	taken, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return errs.Duplicate("User", "username", username)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	userRole, err := s.roleRepo.GetByName(DefaultRole)
	if err != nil {
		return fmt.Errorf("failed to load default role: %w", err)
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
		Roles:    []models.Role{*userRole},
	}
	if err := s.userRepo.Create(&user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login authenticates the credentials and returns a signed JWT on success.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"roles":    roles,
		"jti":      uuid.New().String(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenDurat).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
