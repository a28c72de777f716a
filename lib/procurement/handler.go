package procurementprovider

import (
	log "github.com/sirupsen/logrus"
	"store-ops-backend/db"
	categorystore "store-ops-backend/lib/procurement-category/store"
	"store-ops-backend/lib/procurement/store"
	"store-ops-backend/lib/utils/dateutils"
	procurementapimodels "store-ops-backend/models/api/procurement"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type Provider interface {
	Create(request procurementapimodels.ProcurementData) (view procurementapimodels.ProcurementView, err error)
	Get(id string) (view procurementapimodels.ProcurementView, err error)
	List() (list []procurementapimodels.ProcurementView, err error)
	FindByMonth(request procurementapimodels.MonthQuery) (list []procurementapimodels.ProcurementView, err error)
	Statistics(request procurementapimodels.MonthQuery) (list []procurementapimodels.StatisticsItem, err error)
	Update(id string, request procurementapimodels.ProcurementUpdateData) (view procurementapimodels.ProcurementView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         store.NewInstance(db.DB),
		categoryStore: categorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store         store.Provider
	categoryStore categorystore.Provider
}

func (i impl) Create(request procurementapimodels.ProcurementData) (procurementapimodels.ProcurementView, error) {
	category, err := i.categoryStore.GetByID(request.CategoryID)
	if err != nil {
		return procurementapimodels.ProcurementView{}, err
	}
	if category == nil {
		return procurementapimodels.ProcurementView{}, apperrors.NewNotFound("category not found")
	}
	date, err := dateutils.ParseDate(request.ProcurementDate)
	if err != nil {
		return procurementapimodels.ProcurementView{}, apperrors.NewBadRequest(err.Error())
	}
	rec := dbmodels.Procurement{
		CategoryID:        request.CategoryID,
		ItemName:          request.ItemName,
		Quantity:          request.Quantity,
		UnitPrice:         request.UnitPrice,
		TotalPrice:        request.Quantity * request.UnitPrice,
		ProcurementDate:   date,
		PaymentScreenshot: request.PaymentScreenshot,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return procurementapimodels.ProcurementView{}, err
	}
	log.
		WithField("item_name", rec.ItemName).
		WithField("category_id", rec.CategoryID).
		WithField("rec_id", id).
		Info("procurement recorded")
	return i.Get(id)
}

func (i impl) Get(id string) (procurementapimodels.ProcurementView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return procurementapimodels.ProcurementView{}, err
	}
	if rec == nil {
		return procurementapimodels.ProcurementView{}, apperrors.NewNotFound("procurement not found")
	}
	return procurementapimodels.ProcurementConvert(*rec), nil
}

func (i impl) List() ([]procurementapimodels.ProcurementView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) FindByMonth(request procurementapimodels.MonthQuery) ([]procurementapimodels.ProcurementView, error) {
	from, to, err := dateutils.MonthRange(request.Year, request.Month)
	if err != nil {
		return nil, apperrors.NewBadRequest(err.Error())
	}
	recList, err := i.store.FindByRange(from, to, request.CategoryID)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) Statistics(request procurementapimodels.MonthQuery) ([]procurementapimodels.StatisticsItem, error) {
	from, to, err := dateutils.MonthRange(request.Year, request.Month)
	if err != nil {
		return nil, apperrors.NewBadRequest(err.Error())
	}
	rows, err := i.store.Statistics(from, to)
	if err != nil {
		return nil, err
	}
	list := make([]procurementapimodels.StatisticsItem, 0, len(rows))
	for _, row := range rows {
		list = append(list, procurementapimodels.StatisticsItem{
			CategoryID:    row.CategoryID,
			CategoryName:  row.CategoryName,
			CategoryColor: row.CategoryColor,
			Count:         row.Count,
			TotalAmount:   row.TotalAmount,
		})
	}
	return list, nil
}

// Update recomputes the stored total whenever quantity or unit price change.
func (i impl) Update(id string, request procurementapimodels.ProcurementUpdateData) (procurementapimodels.ProcurementView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return procurementapimodels.ProcurementView{}, err
	}
	if rec == nil {
		return procurementapimodels.ProcurementView{}, apperrors.NewNotFound("procurement not found")
	}

	updMap := map[string]interface{}{}
	quantity := rec.Quantity
	unitPrice := rec.UnitPrice
	if request.CategoryID != nil {
		category, err := i.categoryStore.GetByID(*request.CategoryID)
		if err != nil {
			return procurementapimodels.ProcurementView{}, err
		}
		if category == nil {
			return procurementapimodels.ProcurementView{}, apperrors.NewNotFound("category not found")
		}
		updMap["category_id"] = *request.CategoryID
	}
	if request.ItemName != nil {
		updMap["item_name"] = *request.ItemName
	}
	if request.Quantity != nil {
		quantity = *request.Quantity
		updMap["quantity"] = quantity
	}
	if request.UnitPrice != nil {
		unitPrice = *request.UnitPrice
		updMap["unit_price"] = unitPrice
	}
	if request.Quantity != nil || request.UnitPrice != nil {
		updMap["total_price"] = quantity * unitPrice
	}
	if request.ProcurementDate != nil {
		date, err := dateutils.ParseDate(*request.ProcurementDate)
		if err != nil {
			return procurementapimodels.ProcurementView{}, apperrors.NewBadRequest(err.Error())
		}
		updMap["procurement_date"] = date
	}
	if request.PaymentScreenshot != nil {
		updMap["payment_screenshot"] = *request.PaymentScreenshot
	}

	err = i.store.Update(id, updMap)
	if err != nil {
		return procurementapimodels.ProcurementView{}, err
	}
	log.WithField("rec_id", id).Info("procurement updated")
	return i.Get(id)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("procurement not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("procurement deleted")
	return nil
}

func convertList(recList []dbmodels.Procurement) []procurementapimodels.ProcurementView {
	list := make([]procurementapimodels.ProcurementView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, procurementapimodels.ProcurementConvert(rec))
	}
	return list
}
