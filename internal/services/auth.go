package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/models"
)

// Error variables
var (
	ErrMissingFields        = errors.New("missing required field")
	ErrUserAlreadyExists    = errors.New("username or email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// UserReader defines read-only operations for users.
type UserReader interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// LoginLimiter throttles repeated login attempts per identifier.
type LoginLimiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
	Reset(ctx context.Context, identifier string) error
}

// AuthService handles registration and login.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	jwt     JWTGenerator
	limiter LoginLimiter
}

// NewAuthService creates a new AuthService instance. The limiter may be
// nil, in which case login throttling is disabled.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, limiter LoginLimiter) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		limiter: limiter,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns
// its public summary.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	exists, err := svc.reader.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		// A concurrent registration can slip past the existence check;
		// the unique constraint is the authority.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	summary := user.Summary()
	return &summary, nil
}

// Login authenticates a user by username or email and returns a JWT token
// plus the user's public summary. Unknown identifiers and wrong passwords
// fail identically so user existence never leaks.
func (svc *AuthService) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	if identifier == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	if svc.limiter != nil {
		allowed, err := svc.limiter.Allow(ctx, identifier)
		if err != nil {
			logger.Log.Errorw("login limiter failed", "err", err)
			return "", nil, err
		}
		if !allowed {
			logger.Log.Errorw("login throttled", "identifier", identifier)
			return "", nil, ErrTooManyLoginAttempts
		}
	}

	user, err := svc.reader.GetByIdentifier(ctx, identifier)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("login failed", "identifier", identifier)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("login failed", "identifier", identifier)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	if svc.limiter != nil {
		if err := svc.limiter.Reset(ctx, identifier); err != nil {
			logger.Log.Warnw("failed to reset login attempts", "err", err)
		}
	}

	summary := user.Summary()
	return token, &summary, nil
}
