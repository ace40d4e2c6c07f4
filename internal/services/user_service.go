package services

import (
	"context"

	"rently-backend/internal/auth"
	"rently-backend/internal/models"
	"rently-backend/internal/repositories"
)

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
	TOTP       *TOTPService
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager, totp *TOTPService) *UserService {
	return &UserService{
		Repo:       repo,
		JWTManager: jwtManager,
		TOTP:       totp,
	}
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

// Signup creates a new user with hashed password
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	// Validate input
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, invalidf("signup", "name, email, and password are required")
	}
	if req.Role != models.RoleLandlord && req.Role != models.RoleRenter {
		return nil, invalidf("role", "must be landlord or renter")
	}

	// Check if user already exists
	existingUser, _ := s.Repo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, invalidf("email", "user with this email already exists")
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Create user
	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Generate JWT token
	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// Login authenticates a user and returns a JWT token
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	// Validate input
	if req.Email == "" || req.Password == "" {
		return nil, invalidf("login", "email and password are required")
	}

	// Get user by email
	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, invalidf("login", "invalid email or password")
	}

	// Verify password
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, invalidf("login", "invalid email or password")
	}

	if !user.IsActive {
		return nil, ErrForbidden
	}

	// Landlords with 2FA enabled must present a current TOTP code
	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, invalidf("totp_code", "two-factor code required")
		}
		if !s.TOTP.Validate(user.TOTPSecret, req.TOTPCode) {
			return nil, invalidf("totp_code", "invalid two-factor code")
		}
	}

	// Generate JWT token
	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}
