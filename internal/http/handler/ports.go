package handler

import (
	"context"
	"net/http"
	"walletrisk/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RiskService . RiskService
type RiskService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	Authorize(token string) (string, error)
	LatestScores(ctx context.Context) (core.RunSummary, []core.WalletScore, error)
	WalletDetails(ctx context.Context, wallet string) ([]core.ScoreEvent, error)
	WalletTransactions(ctx context.Context, wallet string) ([]core.FlatTransaction, error)
	Assess(ctx context.Context, wallets []string) (core.Report, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
