package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	Seed(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	GetOneWhere(ctx context.Context, entity any, query string, args ...any) error
	GetAllWhere(ctx context.Context, entities any, order string, limit, offset int, query string, args ...any) error
	UpdateWhere(ctx context.Context, model any, patch map[string]any, query string, args ...any) (int64, error)
	DeleteWhere(ctx context.Context, model any, query string, args ...any) error
}
