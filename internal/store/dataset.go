package store

import (
	"context"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/log"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/schema"
)

const batchSize = 200

// SaveDataset inserts every table of ds in dependency order inside one
// transaction. Nothing is written if any table fails.
func (s *DB) SaveDataset(ctx context.Context, ds *models.Dataset) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range ds.Tables() {
			if t.Len() == 0 {
				continue
			}
			rows := reflect.ValueOf(t.Rows).Elem().Interface()
			if err := tx.CreateInBatches(rows, batchSize).Error; err != nil {
				return errs.IO("store", fmt.Errorf("save %s: %w", t.Name, err))
			}
			log.GetLogger().WithFields(logrus.Fields{
				"Table": t.Name,
				"Rows":  t.Len(),
			}).Info("table saved")
		}
		return nil
	})
}

// Clear deletes every row of every table, dependents first.
func (s *DB) Clear(ctx context.Context) error {
	var ds models.Dataset
	tables := ds.Tables()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := len(tables) - 1; i >= 0; i-- {
			model := reflect.New(reflect.TypeOf(tables[i].Rows).Elem().Elem()).Interface()
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return errs.IO("store", fmt.Errorf("clear %s: %w", tables[i].Name, err))
			}
		}
		return nil
	})
}

// LoadDataset reads every table back into a dataset.
func (s *DB) LoadDataset(ctx context.Context) (*models.Dataset, error) {
	ds := &models.Dataset{}
	for _, t := range ds.Tables() {
		records, err := s.SelectAll(ctx, t.Name)
		if err != nil {
			return nil, err
		}
		table, err := schema.CreateTableFromModel(t.Rows)
		if err != nil {
			return nil, err
		}
		if err := table.DecodeSlice(records, t.Rows); err != nil {
			return nil, errs.Wrap(errs.KindDataIntegrity, "store", err)
		}
	}
	return ds, nil
}
