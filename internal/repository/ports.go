package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Seed(ctx context.Context, records any) error
	SaveInTransaction(ctx context.Context, batches ...any) error
	GetOneBy(ctx context.Context, conds map[string]any, order string, entity any) error
	GetAllBy(ctx context.Context, conds map[string]any, order string, entity any) error
}
