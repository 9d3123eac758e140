package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// DefaultBatchSize keeps a multi-row INSERT of the widest table under the
// Postgres limit of 65535 bind parameters.
const DefaultBatchSize = 1000

type GormDB struct {
	DB *gorm.DB
	// BatchSize caps the rows per INSERT statement; zero means DefaultBatchSize.
	BatchSize int
}

func NewGormDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB:        db,
		BatchSize: DefaultBatchSize,
	}, nil
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Seed inserts records only when the target table is empty.
func (f *GormDB) Seed(ctx context.Context, records any) error {
	slice, err := sliceOf(records)
	if err != nil {
		return err
	}
	if slice.Len() == 0 {
		return nil
	}

	elemType := slice.Index(0).Interface()
	var count int64
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// SaveInTransaction inserts every batch inside one database transaction, at most
// BatchSize rows per statement. Each batch must be a pointer to a slice; empty
// batches are skipped.
func (f *GormDB) SaveInTransaction(ctx context.Context, batches ...any) error {
	for _, batch := range batches {
		if _, err := sliceOf(batch); err != nil {
			return err
		}
	}

	size := f.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	return f.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// already inside a transaction, no savepoint per batch
		tx = tx.Session(&gorm.Session{SkipDefaultTransaction: true})
		for _, batch := range batches {
			slice, _ := sliceOf(batch)
			if slice.Len() == 0 {
				continue
			}
			if err := tx.CreateInBatches(batch, size).Error; err != nil {
				return fmt.Errorf("insert %s: %w", slice.Type().Elem().Name(), err)
			}
		}
		return nil
	})
}

func (f *GormDB) GetOneBy(ctx context.Context, conds map[string]any, order string, entity any) error {
	err := f.query(ctx, conds, order).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %v: %w", conds, err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, conds map[string]any, order string, entity any) error {
	err := f.query(ctx, conds, order).Find(entity).Error
	if err != nil {
		return fmt.Errorf("getting records by %v: %w", conds, err)
	}
	return nil
}

func (f *GormDB) query(ctx context.Context, conds map[string]any, order string) *gorm.DB {
	q := f.DB.WithContext(ctx)
	if len(conds) > 0 {
		q = q.Where(conds)
	}
	if order != "" {
		q = q.Order(order)
	}
	return q
}

func sliceOf(records any) (reflect.Value, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("records type must be pointer to a slice: %T", records)
	}
	return v.Elem(), nil
}
