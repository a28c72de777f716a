package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type Procurement struct {
	BaseModel
	CategoryID        string               `gorm:"type:varchar(36);not null;index" json:"category_id"`
	Category          *ProcurementCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ItemName          string               `gorm:"type:varchar(200)" json:"item_name"`
	Quantity          float64              `gorm:"type:decimal(10,2)" json:"quantity"`
	UnitPrice         float64              `gorm:"type:decimal(10,2)" json:"unit_price"`
	TotalPrice        float64              `gorm:"type:decimal(10,2)" json:"total_price"`
	ProcurementDate   time.Time            `gorm:"type:date;index" json:"procurement_date"`
	PaymentScreenshot string               `gorm:"type:text" json:"payment_screenshot"`
}

func (p *Procurement) Validate() error {
	if p.CategoryID == "" {
		return errors.New("procurement category reference is required")
	}
	if p.ItemName == "" {
		return errors.New("procurement item name is required")
	}
	if p.Quantity <= 0 {
		return errors.New("procurement quantity must be positive")
	}
	if p.UnitPrice < 0 {
		return errors.New("procurement unit price must not be negative")
	}
	if p.ProcurementDate.IsZero() {
		return errors.New("procurement date is required")
	}
	return nil
}
