package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "store-ops-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.StaffUser{}); err != nil {
		return errors.Wrap(err, "failed to migrate StaffUser")
	}
	if err := DB.AutoMigrate(&dbmodels.TaskModule{}); err != nil {
		return errors.Wrap(err, "failed to migrate TaskModule")
	}
	if err := DB.AutoMigrate(&dbmodels.Task{}); err != nil {
		return errors.Wrap(err, "failed to migrate Task")
	}
	if err := DB.AutoMigrate(&dbmodels.TaskExecution{}); err != nil {
		return errors.Wrap(err, "failed to migrate TaskExecution")
	}
	if err := DB.AutoMigrate(&dbmodels.TaskStatusLog{}); err != nil {
		return errors.Wrap(err, "failed to migrate TaskStatusLog")
	}
	if err := DB.AutoMigrate(&dbmodels.Attendance{}); err != nil {
		return errors.Wrap(err, "failed to migrate Attendance")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkSession{}); err != nil {
		return errors.Wrap(err, "failed to migrate WorkSession")
	}
	if err := DB.AutoMigrate(&dbmodels.ProcurementCategory{}); err != nil {
		return errors.Wrap(err, "failed to migrate ProcurementCategory")
	}
	if err := DB.AutoMigrate(&dbmodels.Procurement{}); err != nil {
		return errors.Wrap(err, "failed to migrate Procurement")
	}

	// AutoMigrate cannot express a partial index; at most one open session
	// per user is enforced here.
	err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uniq_open_session_per_user ON work_sessions (user_id) WHERE end_time IS NULL;").Error
	if err != nil {
		return errors.Wrap(err, "failed to create open session index")
	}
	log.Info("migrations finished")
	return nil
}
