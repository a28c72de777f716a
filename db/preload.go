package db

import (
	log "github.com/sirupsen/logrus"
	categorystore "store-ops-backend/lib/procurement-category/store"
	dbmodels "store-ops-backend/models/db"
)

var defaultCategories = []dbmodels.ProcurementCategory{
	{Name: "Ingredients", Color: "#4CAF50"},
	{Name: "Packaging", Color: "#2196F3"},
	{Name: "Cleaning supplies", Color: "#FF9800"},
	{Name: "Equipment", Color: "#9C27B0"},
	{Name: "Other", Color: "#9E9E9E"},
}

// fillProcurementCategories seeds the default spend categories on first run.
func fillProcurementCategories() {
	log.Info("preloading procurement categories")
	store := categorystore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("failed to preload procurement categories")
		return
	}
	if count > 0 {
		log.Info("procurement categories already present")
		return
	}

	for _, rec := range defaultCategories {
		_, err = store.Create(rec)
		if err != nil {
			log.
				WithError(err).
				WithField("category_name", rec.Name).
				Error("failed to add procurement category")
			return
		}
	}
	log.Info("procurement categories added")
}

func PreloadData() {
	fillProcurementCategories()
}
