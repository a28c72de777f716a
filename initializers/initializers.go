package initializers

import (
	"context"

	"store-ops-backend/config"
	"store-ops-backend/fiberlog"
	attendanceprovider "store-ops-backend/lib/attendance"
	pdfexport "store-ops-backend/lib/export/pdf"
	xlsexport "store-ops-backend/lib/export/xls"
	procurementprovider "store-ops-backend/lib/procurement"
	procurementcategoryprovider "store-ops-backend/lib/procurement-category"
	taskprovider "store-ops-backend/lib/task"
	taskexecutionprovider "store-ops-backend/lib/task-execution"
	taskmoduleprovider "store-ops-backend/lib/task-module"
	usershandler "store-ops-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	usershandler.NewHandler()
	taskmoduleprovider.NewHandler()
	taskprovider.NewHandler()
	taskexecutionprovider.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	attendanceprovider.NewHandler()
	procurementcategoryprovider.NewHandler()
	procurementprovider.NewHandler()
}
