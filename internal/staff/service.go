package staff

import (
	"context"
	"errors"

	"barbershop/internal/auth"
	"barbershop/internal/logger"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLastAdmin          = errors.New("cannot deactivate the last admin")
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Staff, string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *Staff, error)
	GetByID(ctx context.Context, id int) (*Staff, error)
	Create(ctx context.Context, req CreateStaffRequest) (*Staff, error)
	List(ctx context.Context) ([]Staff, error)
	Deactivate(ctx context.Context, id int) error
	SeedAdmin(ctx context.Context, email, password string) error
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Staff, string, string, error) {
	account, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		account.ID,
		account.Email,
		account.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return account, accessToken, refreshToken, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *Staff, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	account, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, ErrStaffNotFound
	}
	if !account.Active {
		return "", nil, ErrInvalidCredentials
	}

	newAccessToken, err := auth.GenerateAccessToken(account.ID, account.Email, account.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, account, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Staff, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (*Staff, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.Name, req.Email, passwordHash, req.Role)
}

func (s *service) List(ctx context.Context) ([]Staff, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrStaffNotFound
	}

	if account.Role == RoleAdmin {
		admins, err := s.repo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	return s.repo.Deactivate(ctx, id)
}

// SeedAdmin creates the bootstrap admin account on first start. A no-op when
// any account already exists or when the credentials are not configured.
func (s *service) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	account, err := s.repo.Create(ctx, "Admin", email, passwordHash, RoleAdmin)
	if err != nil {
		return err
	}

	logger.Info("seeded admin account", "email", account.Email)
	return nil
}
