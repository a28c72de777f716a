package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8888"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"store-ops" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"store-ops-secret" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	S3 struct {
		Endpoint        string `default:"localhost:9000" env:"MINIO_ENDPOINT"`
		AccessKeyID     string `default:"minioadmin" env:"MINIO_ACCESS_KEY"`
		SecretAccessKey string `default:"minioadmin" env:"MINIO_SECRET_KEY"`
		BucketName      string `default:"store-ops" env:"MINIO_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"MINIO_USE_SSL"`
		PublicURL       *bool  `default:"false" env:"MINIO_PUBLIC_URL"`
	}
	Attendance struct {
		CenterLat     float64 `default:"39.9042" env:"ATTENDANCE_CENTER_LAT"`
		CenterLon     float64 `default:"116.4074" env:"ATTENDANCE_CENTER_LON"`
		AllowedRadius float64 `default:"100" env:"ATTENDANCE_ALLOWED_RADIUS"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
