package database

import (
	"fmt"

	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/logger"
	"github.com/kamil5b/sewa-alat-berat/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("driver database tidak dikenal: %s", driver)
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

func Connect(cfg config.Config) error {
	logger.Log.Info("Connecting to database...", "driver", cfg.DBDriver)
	connection, err := Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("could not connect to the database: %w", err)
	}
	DB = connection
	if err := Migrate(DB); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Log.Info("Database ready")
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Alat{},
		&models.Blog{},
		&models.Galeri{},
		&models.Kontak{},
		&models.SuratJalan{},
		&models.SuratJalanItem{},
		&models.SuratPerjanjian{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.BukuBesar{},
		&models.Pekerja{},
		&models.Gaji{},
	)
}
