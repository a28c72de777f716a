package dbmodels

import (
	"github.com/pkg/errors"
)

type ProcurementCategory struct {
	BaseModel
	Name  string `gorm:"type:varchar(100)" json:"name"`
	Color string `gorm:"type:varchar(50)" json:"color"`
}

func (c *ProcurementCategory) Validate() error {
	if c.Name == "" {
		return errors.New("category name is required")
	}
	return nil
}
