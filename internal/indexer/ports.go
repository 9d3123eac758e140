package indexer

import (
	"context"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PayloadCache . PayloadCache
type PayloadCache interface {
	Get(ctx context.Context, chainID int, wallet string) (string, bool, error)
	Set(ctx context.Context, chainID int, wallet string, payload string, ttl time.Duration) error
}
