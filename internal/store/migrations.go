package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/log"
	"github.com/beesaferoot/property-seed/internal/models"
)

// Migration is one versioned schema change.
type Migration struct {
	Version string
	Name    string
	Up      func(*gorm.DB) error
	Down    func(*gorm.DB) error
}

// MigrationRecord marks a migration as applied.
type MigrationRecord struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

func createTables(tables ...any) func(*gorm.DB) error {
	return func(db *gorm.DB) error {
		return db.AutoMigrate(tables...)
	}
}

func dropTables(tables ...any) func(*gorm.DB) error {
	return func(db *gorm.DB) error {
		return db.Migrator().DropTable(tables...)
	}
}

// Migrations returns the schema history, oldest first.
func Migrations() []*Migration {
	core := []any{&models.Apartment{}, &models.PropertyOwner{}, &models.PropertyRegistration{}}
	financial := []any{&models.Broker{}, &models.Brokerage{}, &models.Cheque{}}
	property := []any{&models.ApartmentFurnishing{}, &models.ApartmentAttribute{}, &models.ApartmentAmenity{}}
	operational := []any{&models.Guest{}, &models.Employee{}, &models.Payment{}, &models.WPSRecord{}, &models.RentRecord{}}

	return []*Migration{
		{Version: "0001", Name: "create_core_tables", Up: createTables(core...), Down: dropTables(core...)},
		{Version: "0002", Name: "create_financial_tables", Up: createTables(financial...), Down: dropTables(financial...)},
		{Version: "0003", Name: "create_property_tables", Up: createTables(property...), Down: dropTables(property...)},
		{Version: "0004", Name: "create_operational_tables", Up: createTables(operational...), Down: dropTables(operational...)},
	}
}

// Migrator applies and reverts migrations, recording each in
// schema_migrations.
type Migrator struct {
	db         *gorm.DB
	migrations []*Migration
}

func NewMigrator(db *gorm.DB) *Migrator {
	m := &Migrator{db: db}
	for _, mig := range Migrations() {
		m.Register(mig)
	}
	return m
}

// Register appends a migration after the built-in ones.
func (m *Migrator) Register(migration *Migration) {
	m.migrations = append(m.migrations, migration)
}

func (m *Migrator) ensureVersionTable() error {
	return m.db.AutoMigrate(&MigrationRecord{})
}

// Init creates the schema_migrations table without applying anything.
func (m *Migrator) Init() error {
	if err := m.ensureVersionTable(); err != nil {
		return errs.IO("migrate", err)
	}
	return nil
}

// Applied returns the applied migrations, oldest first.
func (m *Migrator) Applied() ([]MigrationRecord, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, errs.IO("migrate", err)
	}
	var records []MigrationRecord
	if err := m.db.Order("version").Find(&records).Error; err != nil {
		return nil, errs.IO("migrate", err)
	}
	return records, nil
}

// Pending returns the migrations not applied yet, in order.
func (m *Migrator) Pending() ([]*Migration, error) {
	records, err := m.Applied()
	if err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(records))
	for _, r := range records {
		applied[r.Version] = true
	}

	var pending []*Migration
	for _, mig := range m.migrations {
		if !applied[mig.Version] {
			pending = append(pending, mig)
		}
	}
	return pending, nil
}

// Up applies every pending migration, each in its own transaction, and
// returns the ones applied.
func (m *Migrator) Up() ([]*Migration, error) {
	pending, err := m.Pending()
	if err != nil {
		return nil, err
	}

	var done []*Migration
	for _, mig := range pending {
		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			return tx.Create(&MigrationRecord{
				Version:   mig.Version,
				Name:      mig.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return done, errs.IO("migrate", fmt.Errorf("apply %s (%s): %w", mig.Name, mig.Version, err))
		}
		log.GetLogger().WithFields(logrus.Fields{
			"Version": mig.Version,
			"Name":    mig.Name,
		}).Info("migration applied")
		done = append(done, mig)
	}
	return done, nil
}

// Down reverts the most recently applied migration.
func (m *Migrator) Down() (*Migration, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, errs.IO("migrate", err)
	}

	var last MigrationRecord
	err := m.db.Order("version DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.InvalidArgument("migrate", "no migrations to revert")
	}
	if err != nil {
		return nil, errs.IO("migrate", err)
	}

	var target *Migration
	for _, mig := range m.migrations {
		if mig.Version == last.Version {
			target = mig
			break
		}
	}
	if target == nil {
		return nil, errs.DataIntegrity("migrate", "migration %s is applied but unknown", last.Version)
	}

	err = m.db.Transaction(func(tx *gorm.DB) error {
		if err := target.Down(tx); err != nil {
			return err
		}
		return tx.Delete(&last).Error
	})
	if err != nil {
		return nil, errs.IO("migrate", fmt.Errorf("revert %s (%s): %w", target.Name, target.Version, err))
	}

	log.GetLogger().WithFields(logrus.Fields{
		"Version": target.Version,
		"Name":    target.Name,
	}).Info("migration reverted")
	return target, nil
}

// Migrate applies every pending migration.
func (s *DB) Migrate() error {
	_, err := NewMigrator(s.db).Up()
	return err
}
