package services

import (
	"mccare_backend/internal/auth"
	"mccare_backend/internal/logger"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetCurrentUser(userID string) (*dto.UserResponse, error)
	ListUsers() ([]dto.UserResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRoleNurse
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return s.tokenResponse(user)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

func (s *authService) GetCurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *authService) ListUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *authService) tokenResponse(user *models.User) (*dto.TokenResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(user),
	}, nil
}
