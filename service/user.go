package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"booking-platform/apperror"
	"booking-platform/model"
)

type UserServiceConfig struct {
	JWTSecret   string
	TokenTTL    time.Duration
	AdminSecret string
	BcryptCost  int
}

type UserService struct {
	users UserStore
	cfg   UserServiceConfig
}

func NewUserService(users UserStore, cfg UserServiceConfig) *UserService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, cfg: cfg}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	return s.register(ctx, in, model.RoleUser)
}

// RegisterAdmin creates an admin account, gated by the deployment-wide admin
// secret rather than an existing admin session.
func (s *UserService) RegisterAdmin(ctx context.Context, in RegisterInput, adminSecret string) (*model.User, error) {
	if s.cfg.AdminSecret == "" || adminSecret != s.cfg.AdminSecret {
		return nil, apperror.Authorization("You are not authorized to do this action")
	}
	return s.register(ctx, in, model.RoleAdmin)
}

func (s *UserService) register(ctx context.Context, in RegisterInput, role string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &model.User{
		ID:        primitive.NewObjectID(),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  string(hash),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, apperror.Authentication("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.Authentication("Invalid email or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   user.ID.Hex(),
		"role": user.Role,
		"exp":  time.Now().Add(s.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.Find(ctx)
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, patch model.UserPatch) (*model.User, error) {
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &email
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.Password = &hashed
	}
	return s.users.Update(ctx, id, patch)
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.users.Delete(ctx, id)
}
