package db

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	constant "liyu1981.xyz/aquarium-service/pkg/common"
	"liyu1981.xyz/aquarium-service/pkg/models"
)

// DB owns one SQLite database. Every Open yields an independent store.
type DB struct {
	Conn *gorm.DB
}

func Open(dialector gorm.Dialector) (*DB, error) {
	logger := constant.GetLoggerWith(constant.LoggerNameDB)

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	// a single connection serializes every reader and writer
	sqlDB.SetMaxOpenConns(1)

	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable sqlite foreign key support: %w", err)
	}

	err = conn.AutoMigrate(
		&models.Aquarium{},
		&models.Measurement{},
		&models.Fish{},
		&models.User{},
		&models.Session{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	return &DB{Conn: conn}, nil
}

func MustOpen(dialector gorm.Dialector) *DB {
	instance, err := Open(dialector)
	if err != nil {
		panic(err)
	}
	return instance
}

func (d *DB) Ping() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyAquaDbPath); !found || dbPath == "" {
		dbPath = "aquarium.db"
	}
	return UseSqliteFileDialector(dbPath)
}

func UseSqliteFileDialector(dbPath string) gorm.Dialector {
	return sqlite.Open(dbPath + "?_journal_mode=WAL&_foreign_keys=on")
}

// UseMemorySqliteDialector names the database after a fresh uuid so two stores never share tables.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()))
}
