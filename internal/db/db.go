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

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// Seed inserts the given records only when the target table is still empty.
func (f *PostgresDB) Seed(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
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

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entities any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetOneWhere(ctx context.Context, entity any, query string, args ...any) error {
	err := f.DB.WithContext(ctx).Where(query, args...).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record where %q: %w", query, err)
	}
	return nil
}

// GetAllWhere retrieves all matching records; order may be empty, limit/offset
// of zero mean unbounded.
func (f *PostgresDB) GetAllWhere(ctx context.Context, entities any, order string, limit, offset int, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Where(query, args...)
	if order != "" {
		tx = tx.Order(order)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records where %q: %w", query, err)
	}
	return nil
}

// UpdateWhere patches all matching rows and reports how many were affected.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, patch map[string]any, query string, args ...any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(query, args...).Updates(patch)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records where %q: %w", query, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) DeleteWhere(ctx context.Context, model any, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Where(query, args...).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records where %q: %w", query, tx.Error)
	}
	return nil
}
