package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/DEFRA/mpdp-admin-frontend/internal/config"
	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/database"
)

var _ database.Repository = (*mysqlConnector)(nil)

type mysqlConnector struct {
	logger logging.Logger
	db     *gorm.DB
	now    func() time.Time
}

func NewMySQLConnector(conf config.DatabaseConfig, logger logging.Logger) (database.Repository, error) {
	dsn, err := buildMySQLDSN(conf.Username, conf.Password, conf.Database, conf.Parameters)
	if err != nil {
		return nil, err
	}

	gormConfig := gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "mpdp_",
		},
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	db, err := gorm.Open(mysql.Open(dsn), &gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetConnMaxLifetime(time.Minute * 10)

	return &mysqlConnector{
		logger: logger,
		db:     db,
		now:    time.Now,
	}, nil
}

func (m *mysqlConnector) Migrate() error {
	err := m.db.AutoMigrate(
		&entities.CacheEntry{},
	)
	if err != nil {
		return err
	}

	purged, err := m.purgeExpired(context.Background())
	if err != nil {
		return err
	}
	m.logger.Info("purged %d expired session store entries", purged)
	return nil
}

func (m *mysqlConnector) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (m *mysqlConnector) Get(ctx context.Context, segment string, key string) ([]byte, error) {
	var e entities.CacheEntry
	err := m.db.WithContext(ctx).
		Where(&entities.CacheEntry{Segment: segment, Key: key}).
		Where("expires_at > ?", m.now()).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrNotFound
		}
		m.logger.Error("failed to read %s entry: %s", segment, err.Error())
		return nil, err
	}
	return e.Value, nil
}

func (m *mysqlConnector) Set(ctx context.Context, segment string, key string, value []byte, ttl time.Duration) error {
	e := entities.CacheEntry{
		Segment:   segment,
		Key:       key,
		Value:     value,
		ExpiresAt: m.now().Add(ttl),
	}
	return m.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
		}).
		Create(&e).Error
}

func (m *mysqlConnector) Drop(ctx context.Context, segment string, key string) error {
	return m.db.WithContext(ctx).
		Where(&entities.CacheEntry{Segment: segment, Key: key}).
		Delete(&entities.CacheEntry{}).Error
}

// purgeExpired removes entries nobody asked for before they expired.
func (m *mysqlConnector) purgeExpired(ctx context.Context) (int64, error) {
	res := m.db.WithContext(ctx).
		Where("expires_at <= ?", m.now()).
		Delete(&entities.CacheEntry{})
	return res.RowsAffected, res.Error
}

func buildMySQLDSN(username, password, database string, parameters []string) (string, error) {
	vals := map[string]string{
		"username": username,
		"password": password,
		"database": database,
	}

	for n, v := range vals {
		err := checkValue(n, v)
		if err != nil {
			return "", err
		}
	}

	paramStr := func() string {
		if len(parameters) == 0 {
			return ""
		}

		return fmt.Sprintf("?%s", strings.Join(parameters, "&"))
	}

	return fmt.Sprintf("%s:%s@%s%s", username, password, database, paramStr()), nil
}

func checkValue(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", name)
	}

	return nil
}
