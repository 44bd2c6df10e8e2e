package infra

import (
	"fmt"

	"github.com/Alexdguimaraes/controle-faccao/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection over SQLite, runs AutoMigrate to
// create / update all tables, then seeds the rows the core depends on (the
// OP sequence counter and the default bancos).
//
// busy_timeout bounds how long a storage call may wait on the write lock:
// expiry surfaces as SQLITE_BUSY, which the services wrap as a persistence
// error instead of blocking indefinitely.
func NewDatabase(path string, busyTimeoutMS int) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_busy_timeout=%d&_journal_mode=WAL&_fk=1", path, busyTimeoutMS)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite admits a single writer; one connection serializes the counter
	// increment and the balance updates without SQLITE_BUSY churn.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Cliente{},
		&model.Remessa{},
		&model.Financeiro{},
		&model.Configuracao{},
		&model.Modelo{},
		&model.Banco{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := seed(db); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	return db, nil
}

// seed inserts the rows every fresh database needs. Idempotent: existing
// rows are never touched, so re-running on a populated DB is a no-op and the
// sequence counter survives process restarts.
func seed(db *gorm.DB) error {
	contador := model.Configuracao{Chave: model.ChaveUltimoIDRemessa, Valor: "0"}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&contador).Error; err != nil {
		return err
	}

	bancos := []model.Banco{
		{Nome: "Caixa"},
		{Nome: "Banco do Brasil"},
		{Nome: "Itaú"},
		{Nome: "Bradesco"},
		{Nome: "Nubank"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&bancos).Error
}
