package services

import (
	"errors"

	"github.com/lastiz/calorizator/config"
	"github.com/lastiz/calorizator/models"
	"github.com/lastiz/calorizator/utils"

	"gorm.io/gorm"
)

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login checks the credentials and rotates the user's session token.
// A missing user and a wrong password produce the same error on purpose.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errNotAuthenticated()
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return "", errNotAuthenticated()
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", err
	}
	if err := config.DB.Model(&user).Update("token", token).Error; err != nil {
		return "", err
	}
	return token, nil
}

// Logout clears the stored token. Calling it for an already logged-out user
// is harmless.
func (s *AuthService) Logout(user *models.User) error {
	user.Token = nil
	return config.DB.Model(user).Update("token", nil).Error
}

// Register creates the user record. Username conflicts are reported before
// email conflicts.
func (s *AuthService) Register(username, password, email string) (*models.User, error) {
	taken, err := s.usernameExists(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errUsernameExists()
	}

	taken, err = s.emailExists(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errEmailExists()
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, Email: email, HashedPassword: hashed}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) usernameExists(username string) (bool, error) {
	var count int64
	err := config.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *AuthService) emailExists(email string) (bool, error) {
	var count int64
	err := config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
