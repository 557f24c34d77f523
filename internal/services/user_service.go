package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
	"arendaBack/utils"
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	SessionRepo  *repositories.SessionRepository
	TokenManager *utils.Manager
	Storage      *utils.Storage
	SigningKey   string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

func validateRegisterRequest(req models.RegisterRequest) error {
	if req.Email == "" {
		return models.NewValidationError("email", "This field is required.")
	}
	if req.Username == "" {
		return models.NewValidationError("username", "This field is required.")
	}
	if len(req.Password) < 8 || len(req.Password) > 128 {
		return models.NewValidationError("password", "Password must be between 8 and 128 characters long.")
	}
	if req.Password != req.PasswordConfirmation {
		return models.NewValidationError("password_confirmation", "Passwords do not match.")
	}
	return nil
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := validateRegisterRequest(req); err != nil {
		return models.User{}, err
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, err
	}
	if existing.Email != "" {
		return models.User{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:      req.Email,
		Username:   req.Username,
		Phone:      req.Phone,
		AvatarPath: req.Avatar,
		Role:       "user",
		IsActive:   true,
		Password:   string(hashedPassword),
	}

	user, err = s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return models.LoginResponse{}, err
	}
	if user.Email == "" {
		return models.LoginResponse{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.LoginResponse{}, models.ErrInvalidCredentials
	}

	if !user.IsActive {
		return models.LoginResponse{}, models.ErrUserDisabled
	}

	accessToken, err := s.newAccessToken(user)
	if err != nil {
		return models.LoginResponse{}, err
	}

	refreshToken, err := s.newRefreshToken()
	if err != nil {
		return models.LoginResponse{}, err
	}

	session := models.Session{
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(s.RefreshTTL),
	}
	if err := s.SessionRepo.SetSession(ctx, refreshToken, session); err != nil {
		return models.LoginResponse{}, err
	}

	user.Password = ""
	return models.LoginResponse{
		User:    user,
		Access:  accessToken,
		Refresh: refreshToken,
	}, nil
}

func (s *UserService) newAccessToken(user models.User) (string, error) {
	if s.TokenManager != nil {
		return s.TokenManager.NewJWT(user.ID, user.Role, s.AccessTTL)
	}

	claims := &models.Claims{
		UserID: uint(user.ID),
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(s.AccessTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SigningKey))
}

func (s *UserService) newRefreshToken() (string, error) {
	// UUID fallback when no token manager is configured.
	if s.TokenManager == nil {
		return uuid.New().String(), nil
	}
	return s.TokenManager.NewRefreshToken()
}

func (s *UserService) Logout(ctx context.Context, userID int) error {
	return s.SessionRepo.DeleteSessionForUser(ctx, userID)
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if len(user.Password) < 8 || len(user.Password) > 128 {
		return models.User{}, models.NewValidationError("password", "Password must be between 8 and 128 characters long.")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = "user"
	}
	user.IsActive = true

	user, err = s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.UserRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	user, err := s.UserRepo.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// UploadAvatar stores the picture in object storage and saves the public URL
// on the user.
func (s *UserService) UploadAvatar(ctx context.Context, userID int, file []byte, fileName, contentType string) (string, error) {
	if len(file) == 0 {
		return "", models.NewValidationError("avatar", "This field is required.")
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileName))
	url, err := s.Storage.UploadFile(file, storedName, "avatars", contentType)
	if err != nil {
		return "", err
	}

	if err := s.UserRepo.UpdateAvatar(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}
