package dbmodels

import (
	"github.com/pkg/errors"
)

type StaffUser struct {
	BaseModel
	Name     string `gorm:"type:varchar(50)" json:"name"`
	Phone    string `gorm:"type:varchar(20);uniqueIndex" json:"phone"`
	Password string `gorm:"type:varchar(100)" json:"-"`
	Gender   string `gorm:"type:varchar(10)" json:"gender"`
	Address  string `gorm:"type:varchar(200)" json:"address"`
	Avatar   string `gorm:"type:text" json:"avatar"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`
}

func (u *StaffUser) Validate() error {
	if u.Name == "" {
		return errors.New("user name is required")
	}
	if u.Phone == "" {
		return errors.New("user phone is required")
	}
	if u.Password == "" {
		return errors.New("user password is required")
	}
	return nil
}
