package core

import (
	"context"
	"walletrisk/internal/repository"
	tokenIssuer "walletrisk/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveRun(ctx context.Context, bundle repository.RunBundle) error
	GetLatestRun(ctx context.Context) (repository.Run, error)
	GetScores(ctx context.Context, runID string) ([]repository.RiskScore, error)
	GetDetails(ctx context.Context, runID, wallet string) ([]repository.ScoreDetail, error)
	GetTransactions(ctx context.Context, runID, wallet string) ([]repository.Transaction, error)
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name PayloadSource . PayloadSource
type PayloadSource interface {
	FetchPayloads(ctx context.Context, wallets []string) ([]WalletPayload, error)
}

//counterfeiter:generate -o fake -fake-name ReportSink . ReportSink
type ReportSink interface {
	Publish(ctx context.Context, report Report) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
