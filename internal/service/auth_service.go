package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/internal/service/tokens"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
)

const DefaultJWTTokenExpire = 24 * time.Hour

type UserService struct {
	userRepo       UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
	jwtTokenExpire time.Duration
}

func NewUserService(
	u uow.UOW,
	jwtTokenSecret []byte,
	jwtTokenExpire time.Duration,
	hasher PasswordHasher,
) (*UserService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if jwtTokenExpire <= 0 {
		jwtTokenExpire = DefaultJWTTokenExpire
	}
	return &UserService{
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
		jwtTokenExpire: jwtTokenExpire,
	}, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login проверяет учетные данные администратора и выдает jwt токен. Неизвестный email и
// неверный пароль одинаково дают domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(args.Email))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrPasswordMissMatch
		}
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if !s.hasher.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, err := tokens.GenerateAdminJWT(user, s.jwtTokenExpire, s.jwtTokenSecret)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	return user, token, nil
}

// SeedAdmin создает администратора, если его еще нет. Второй результат сообщает, был ли он создан.
func (s *UserService) SeedAdmin(ctx context.Context, email, password string) (*domain.User, bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) < 8 { //nolint:mnd
		return nil, false, domain.InvalidArgumentf("admin email and a password of at least 8 characters are required")
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("seeding admin: %w", err)
	}

	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, false, fmt.Errorf("seeding admin: %w", err)
	}
	user, err := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		Email:             email,
		EncryptedPassword: hash,
		Role:              domain.UserRoleAdmin,
	})
	if err != nil {
		return nil, false, fmt.Errorf("seeding admin: %w", err)
	}
	return user, true, nil
}
