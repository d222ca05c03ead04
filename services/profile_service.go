package services

import (
	"time"

	"github.com/lastiz/calorizator/models"
)

type ProfileService struct{}

func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Profile is the read-only projection of the authenticated user.
type Profile struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetProfile projects the already-authenticated user; no storage round trip.
func (s *ProfileService) GetProfile(user *models.User) Profile {
	return Profile{
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
