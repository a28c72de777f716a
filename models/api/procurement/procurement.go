package procurementapimodels

import (
	"time"

	"github.com/pkg/errors"
	"store-ops-backend/lib/utils/dateutils"
	dbmodels "store-ops-backend/models/db"
)

type CategoryData struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r CategoryData) Validate() error {
	if r.Name == "" {
		return errors.New("category name is required")
	}
	return nil
}

type ProcurementData struct {
	CategoryID        string  `json:"category_id"`
	ItemName          string  `json:"item_name"`
	Quantity          float64 `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	ProcurementDate   string  `json:"procurement_date"`
	PaymentScreenshot string  `json:"payment_screenshot"`
}

func (r ProcurementData) Validate() error {
	if r.CategoryID == "" {
		return errors.New("category_id is required")
	}
	if r.ItemName == "" {
		return errors.New("item_name is required")
	}
	if r.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if r.UnitPrice < 0 {
		return errors.New("unit_price must not be negative")
	}
	if _, err := dateutils.ParseDate(r.ProcurementDate); err != nil {
		return err
	}
	return nil
}

// ProcurementUpdateData carries optional fields; nil means "leave unchanged".
type ProcurementUpdateData struct {
	CategoryID        *string  `json:"category_id,omitempty"`
	ItemName          *string  `json:"item_name,omitempty"`
	Quantity          *float64 `json:"quantity,omitempty"`
	UnitPrice         *float64 `json:"unit_price,omitempty"`
	ProcurementDate   *string  `json:"procurement_date,omitempty"`
	PaymentScreenshot *string  `json:"payment_screenshot,omitempty"`
}

func (r ProcurementUpdateData) Validate() error {
	if r.ItemName != nil && *r.ItemName == "" {
		return errors.New("item_name must not be empty")
	}
	if r.Quantity != nil && *r.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if r.UnitPrice != nil && *r.UnitPrice < 0 {
		return errors.New("unit_price must not be negative")
	}
	if r.ProcurementDate != nil {
		if _, err := dateutils.ParseDate(*r.ProcurementDate); err != nil {
			return err
		}
	}
	return nil
}

type MonthQuery struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	CategoryID string `json:"category_id"`
}

func (r MonthQuery) Validate() error {
	if r.Year < 2000 || r.Year > 2200 {
		return errors.New("year is out of range")
	}
	if r.Month < 1 || r.Month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	return nil
}

type CategoryView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProcurementView struct {
	ID                string        `json:"id"`
	CategoryID        string        `json:"category_id"`
	Category          *CategoryView `json:"category,omitempty"`
	ItemName          string        `json:"item_name"`
	Quantity          float64       `json:"quantity"`
	UnitPrice         float64       `json:"unit_price"`
	TotalPrice        float64       `json:"total_price"`
	ProcurementDate   string        `json:"procurement_date"`
	PaymentScreenshot string        `json:"payment_screenshot"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// StatisticsItem is one category's monthly roll-up, ordered by total descending.
type StatisticsItem struct {
	CategoryID    string  `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	CategoryColor string  `json:"category_color"`
	Count         int64   `json:"count"`
	TotalAmount   float64 `json:"total_amount"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

func CategoryConvert(rec dbmodels.ProcurementCategory) CategoryView {
	return CategoryView{
		ID:        rec.ID,
		Name:      rec.Name,
		Color:     rec.Color,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func ProcurementConvert(rec dbmodels.Procurement) ProcurementView {
	view := ProcurementView{
		ID:                rec.ID,
		CategoryID:        rec.CategoryID,
		ItemName:          rec.ItemName,
		Quantity:          rec.Quantity,
		UnitPrice:         rec.UnitPrice,
		TotalPrice:        rec.TotalPrice,
		ProcurementDate:   dateutils.FormatDate(rec.ProcurementDate),
		PaymentScreenshot: rec.PaymentScreenshot,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
	if rec.Category != nil {
		category := CategoryConvert(*rec.Category)
		view.Category = &category
	}
	return view
}
