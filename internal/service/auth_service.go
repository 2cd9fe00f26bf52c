package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"promptcraft/backend/internal/logger"
	"promptcraft/backend/internal/repository"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 6
)

// AuthService registers accounts and issues tokens whose subject is the owner id.
type AuthService interface {
	// Register creates the user and its Trash folder in one transaction.
	Register(ctx context.Context, username, password string) (*AuthResponse, error)
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	// ValidateToken returns the owner id carried by a valid token.
	ValidateToken(token string) (int64, error)
}

// AuthResponse is returned after a successful login or registration.
type AuthResponse struct {
	Token    string
	UserID   int64
	Username string
}

type credentials struct {
	Username string
	Password string
}

func (c *credentials) validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Username, validation.Required, validation.Length(minUsernameLength, maxUsernameLength)),
		validation.Field(&c.Password, validation.Required, validation.Length(minPasswordLength, 0)),
	)
}

type authService struct {
	tx     repository.TxManager
	users  repository.UserRepository
	trash  TrashService
	secret []byte
	ttl    time.Duration
}

func NewAuthService(tx repository.TxManager, users repository.UserRepository, trash TrashService, secret string, ttl time.Duration) AuthService {
	return &authService{tx: tx, users: users, trash: trash, secret: []byte(secret), ttl: ttl}
}

func (s *authService) Register(ctx context.Context, username, password string) (*AuthResponse, error) {
	in := credentials{Username: strings.TrimSpace(username), Password: password}
	if err := in.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var userID int64
	err = s.tx.ExecTx(ctx, func(ctx context.Context) error {
		existing, err := s.users.FindByUsername(ctx, in.Username)
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}
		if existing != nil {
			return ErrConflict
		}

		user, err := s.users.Create(ctx, in.Username, string(hash))
		if err != nil {
			if repository.IsUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := s.trash.Provision(ctx, user.ID); err != nil {
			return err
		}
		userID = user.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", "module", "service", "action", "create", "resource", "user", "result", "ok", "user_id", userID)
	return s.respond(userID, in.Username)
}

func (s *authService) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalid)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}
	return s.respond(user.ID, user.Username)
}

func (s *authService) respond(userID int64, username string) (*AuthResponse, error) {
	token, err := s.generateToken(userID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, UserID: userID, Username: username}, nil
}

func (s *authService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return 0, ErrUnauthorized
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, ErrUnauthorized
	}
	ownerID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || ownerID == 0 {
		return 0, ErrUnauthorized
	}
	return ownerID, nil
}

func (s *authService) generateToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}
