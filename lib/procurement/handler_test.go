package procurementprovider

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"store-ops-backend/lib/procurement/store"
	"store-ops-backend/lib/utils/dateutils"
	procurementapimodels "store-ops-backend/models/api/procurement"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type fakeCategoryStore struct {
	recs []dbmodels.ProcurementCategory
}

func (f *fakeCategoryStore) Create(rec dbmodels.ProcurementCategory) (string, error) {
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}
func (f *fakeCategoryStore) GetByID(id string) (*dbmodels.ProcurementCategory, error) {
	for idx := range f.recs {
		if f.recs[idx].ID == id {
			rec := f.recs[idx]
			return &rec, nil
		}
	}
	return nil, nil
}
func (f *fakeCategoryStore) List() ([]dbmodels.ProcurementCategory, error)         { return f.recs, nil }
func (f *fakeCategoryStore) Count() (int64, error)                                 { return int64(len(f.recs)), nil }
func (f *fakeCategoryStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeCategoryStore) Delete(id string) error                                { return nil }

type fakeProcurementStore struct {
	recs   []dbmodels.Procurement
	nextID int
}

func (f *fakeProcurementStore) Create(rec dbmodels.Procurement) (string, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("proc-%d", f.nextID)
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeProcurementStore) GetByID(id string) (*dbmodels.Procurement, error) {
	for idx := range f.recs {
		if f.recs[idx].ID == id {
			rec := f.recs[idx]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeProcurementStore) List() ([]dbmodels.Procurement, error) { return f.recs, nil }

func (f *fakeProcurementStore) FindByRange(from, to time.Time, categoryID string) ([]dbmodels.Procurement, error) {
	list := []dbmodels.Procurement{}
	for _, rec := range f.recs {
		if rec.ProcurementDate.Before(from) || rec.ProcurementDate.After(to) {
			continue
		}
		if categoryID != "" && rec.CategoryID != categoryID {
			continue
		}
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeProcurementStore) Statistics(from, to time.Time) ([]store.StatisticsRow, error) {
	return nil, nil
}

func (f *fakeProcurementStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.recs {
		if f.recs[idx].ID != id {
			continue
		}
		if v, ok := updMap["quantity"]; ok {
			f.recs[idx].Quantity = v.(float64)
		}
		if v, ok := updMap["unit_price"]; ok {
			f.recs[idx].UnitPrice = v.(float64)
		}
		if v, ok := updMap["total_price"]; ok {
			f.recs[idx].TotalPrice = v.(float64)
		}
		if v, ok := updMap["item_name"]; ok {
			f.recs[idx].ItemName = v.(string)
		}
	}
	return nil
}

func (f *fakeProcurementStore) Delete(id string) error { return nil }

func newProcurementFixture() impl {
	return impl{
		store: &fakeProcurementStore{},
		categoryStore: &fakeCategoryStore{recs: []dbmodels.ProcurementCategory{
			{BaseModel: dbmodels.BaseModel{ID: "cat-1"}, Name: "Ingredients"},
		}},
	}
}

func TestCreateProcurement(t *testing.T) {
	t.Run(`total is quantity times unit price`, func(t *testing.T) {
		handler := newProcurementFixture()
		view, err := handler.Create(procurementapimodels.ProcurementData{
			CategoryID:      "cat-1",
			ItemName:        "Flour",
			Quantity:        2.5,
			UnitPrice:       4,
			ProcurementDate: "2024-05-10",
		})
		require.Nil(t, err)
		require.Equal(t, 10.0, view.TotalPrice)
		require.Equal(t, "2024-05-10", view.ProcurementDate)
	})

	t.Run(`unknown category`, func(t *testing.T) {
		handler := newProcurementFixture()
		_, err := handler.Create(procurementapimodels.ProcurementData{
			CategoryID:      "missing",
			ItemName:        "Flour",
			Quantity:        1,
			UnitPrice:       1,
			ProcurementDate: "2024-05-10",
		})
		require.True(t, apperrors.IsStatus(err, 404))
	})
}

func TestUpdateProcurement(t *testing.T) {
	t.Run(`changing quantity recomputes the total`, func(t *testing.T) {
		handler := newProcurementFixture()
		view, err := handler.Create(procurementapimodels.ProcurementData{
			CategoryID:      "cat-1",
			ItemName:        "Flour",
			Quantity:        2,
			UnitPrice:       5,
			ProcurementDate: "2024-05-10",
		})
		require.Nil(t, err)

		quantity := 3.0
		updated, err := handler.Update(view.ID, procurementapimodels.ProcurementUpdateData{Quantity: &quantity})
		require.Nil(t, err)
		require.Equal(t, 15.0, updated.TotalPrice)
		require.Equal(t, "Flour", updated.ItemName)
	})

	t.Run(`name-only change keeps the total`, func(t *testing.T) {
		handler := newProcurementFixture()
		view, err := handler.Create(procurementapimodels.ProcurementData{
			CategoryID:      "cat-1",
			ItemName:        "Flour",
			Quantity:        2,
			UnitPrice:       5,
			ProcurementDate: "2024-05-10",
		})
		require.Nil(t, err)

		name := "Bread flour"
		updated, err := handler.Update(view.ID, procurementapimodels.ProcurementUpdateData{ItemName: &name})
		require.Nil(t, err)
		require.Equal(t, 10.0, updated.TotalPrice)
	})
}

func TestFindByMonth(t *testing.T) {
	t.Run(`only the requested month comes back`, func(t *testing.T) {
		handler := newProcurementFixture()
		for _, date := range []string{"2024-05-10", "2024-05-31", "2024-06-01"} {
			_, err := handler.Create(procurementapimodels.ProcurementData{
				CategoryID:      "cat-1",
				ItemName:        "Item " + date,
				Quantity:        1,
				UnitPrice:       1,
				ProcurementDate: date,
			})
			require.Nil(t, err)
		}
		list, err := handler.FindByMonth(procurementapimodels.MonthQuery{Year: 2024, Month: 5})
		require.Nil(t, err)
		require.Len(t, list, 2)
		for _, view := range list {
			parsed, err := dateutils.ParseDate(view.ProcurementDate)
			require.Nil(t, err)
			require.Equal(t, time.May, parsed.Month())
		}
	})
}
