package usersapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "store-ops-backend/models/db"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	Address  string `json:"address"`
	IsAdmin  bool   `json:"is_admin"`
}

func (r RegisterRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Phone == "" {
		return errors.New("phone is required")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Phone == "" {
		return errors.New("phone is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// UpdateRequest carries optional fields; nil means "leave unchanged".
type UpdateRequest struct {
	Name    *string `json:"name,omitempty"`
	Gender  *string `json:"gender,omitempty"`
	Address *string `json:"address,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
	IsAdmin *bool   `json:"is_admin,omitempty"`
}

func (r UpdateRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Gender    string    `json:"gender"`
	Address   string    `json:"address"`
	Avatar    string    `json:"avatar"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	User        UserView `json:"user"`
}

type AvatarResponse struct {
	Avatar string   `json:"avatar"`
	User   UserView `json:"user"`
}

func UserConvert(rec dbmodels.StaffUser) UserView {
	return UserView{
		ID:        rec.ID,
		Name:      rec.Name,
		Phone:     rec.Phone,
		Gender:    rec.Gender,
		Address:   rec.Address,
		Avatar:    rec.Avatar,
		IsAdmin:   rec.IsAdmin,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
