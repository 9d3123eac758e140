package core

import (
	"context"
	"errors"
	"fmt"
	"time"
	"walletrisk/internal/repository"
	tokenIssuer "walletrisk/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrNoRuns error = errors.New("no assessment run recorded")
var ErrNoWallets error = errors.New("no wallets to assess")
var ErrUnauthorized error = errors.New("unauthorized")

const tokenExpirationHours = 24

// Assessor drives an assessment run through fetching, normalization, scoring and
// persistence, and serves the recorded results.
type Assessor struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	source     PayloadSource
	sinks      []ReportSink
	normalizer *Normalizer
	workers    int
	now        func() time.Time
	newID      func() string
}

func NewAssessor(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, source PayloadSource, workers int, sinks ...ReportSink) *Assessor {
	return &Assessor{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		source:     source,
		sinks:      sinks,
		normalizer: NewNormalizer(logger),
		workers:    workers,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// BuildReport scores the flat transactions and ranks the wallets.
func BuildReport(runID string, createdAt time.Time, transactions []FlatTransaction) Report {
	raw, events := Score(transactions)
	return Report{
		RunID:        runID,
		CreatedAt:    createdAt,
		Transactions: transactions,
		RawScores:    raw,
		Scores:       NormalizeScores(raw).Ranked(),
		Events:       events,
	}
}

// Assess fetches the wallets' histories and runs a full assessment over them.
func (a *Assessor) Assess(ctx context.Context, wallets []string) (Report, error) {
	if len(wallets) == 0 {
		return Report{}, ErrNoWallets
	}

	payloads, err := a.source.FetchPayloads(ctx, wallets)
	if err != nil {
		if len(payloads) == 0 {
			return Report{}, fmt.Errorf("fetch payloads: %w", err)
		}
		a.logs.Warnw("some wallets could not be fetched", "error", err)
	}

	a.logs.Infow("wallet payloads fetched", "requested", len(wallets), "fetched", len(payloads))

	return a.AssessPayloads(ctx, payloads)
}

// AssessPayloads runs an assessment over already fetched payloads.
func (a *Assessor) AssessPayloads(ctx context.Context, payloads []WalletPayload) (Report, error) {
	transactions := a.normalizer.NormalizeAll(payloads, a.workers)
	a.logs.Infow("transactions normalized", "wallets", len(payloads), "count", len(transactions))

	report := BuildReport(a.newID(), a.now().UTC(), transactions)
	a.logs.Infow("wallets scored",
		"runId", report.RunID,
		"wallets", len(report.Scores),
		"events", len(report.Events))

	if err := a.repo.SaveRun(ctx, toBundle(report)); err != nil {
		return report, fmt.Errorf("save run: %w", err)
	}

	var sinkErr error
	for _, sink := range a.sinks {
		if err := sink.Publish(ctx, report); err != nil {
			sinkErr = errors.Join(sinkErr, err)
		}
	}
	if sinkErr != nil {
		return report, fmt.Errorf("publish report: %w", sinkErr)
	}

	return report, nil
}

// LatestScores returns the ranked scores of the most recent run.
func (a *Assessor) LatestScores(ctx context.Context) (RunSummary, []WalletScore, error) {
	run, err := a.latestRun(ctx)
	if err != nil {
		return RunSummary{}, nil, err
	}

	scores, err := a.repo.GetScores(ctx, run.ID)
	if err != nil {
		return RunSummary{}, nil, fmt.Errorf("get scores: %w", err)
	}

	out := make([]WalletScore, len(scores))
	for i, s := range scores {
		out[i] = WalletScore{
			Wallet:   s.Wallet,
			RawScore: s.RawScore,
			Score:    s.Score,
		}
	}
	return toSummary(run), out, nil
}

// WalletDetails returns the wallet's scoring events from the most recent run.
func (a *Assessor) WalletDetails(ctx context.Context, wallet string) ([]ScoreEvent, error) {
	run, err := a.latestRun(ctx)
	if err != nil {
		return nil, err
	}

	details, err := a.repo.GetDetails(ctx, run.ID, wallet)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	events := make([]ScoreEvent, len(details))
	for i, d := range details {
		events[i] = ScoreEvent{
			Wallet: d.Wallet,
			TxHash: d.TxHash,
			Rule:   RuleID(d.Rule),
			Points: d.Points,
			Reason: d.Reason,
		}
	}
	return events, nil
}

// WalletTransactions returns the wallet's flat transactions from the most recent run.
func (a *Assessor) WalletTransactions(ctx context.Context, wallet string) ([]FlatTransaction, error) {
	run, err := a.latestRun(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := a.repo.GetTransactions(ctx, run.ID, wallet)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	transactions := make([]FlatTransaction, len(rows))
	for i, tx := range rows {
		transactions[i] = FlatTransaction{
			Wallet: tx.Wallet,
			TxHash: tx.TxHash,
			Method: tx.Method,
			Value:  tx.Value,
		}
	}
	return transactions, nil
}

// Authenticate checks the credentials and issues a signed API token.
func (a *Assessor) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := a.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: tokenExpirationHours,
	})
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Authorize validates an API token and returns its subject.
func (a *Assessor) Authorize(token string) (string, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w: %w", err, ErrUnauthorized)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("token has no subject: %w", ErrUnauthorized)
	}
	return subject, nil
}

func (a *Assessor) latestRun(ctx context.Context) (repository.Run, error) {
	run, err := a.repo.GetLatestRun(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			return repository.Run{}, ErrNoRuns
		}
		return repository.Run{}, fmt.Errorf("get latest run: %w", err)
	}
	return run, nil
}

func toBundle(report Report) repository.RunBundle {
	bundle := repository.RunBundle{
		Run: repository.Run{
			ID:               report.RunID,
			CreatedAt:        report.CreatedAt,
			WalletCount:      len(report.Scores),
			TransactionCount: len(report.Transactions),
		},
		Transactions: make([]repository.Transaction, 0, len(report.Transactions)),
		Scores:       make([]repository.RiskScore, 0, len(report.Scores)),
		Details:      make([]repository.ScoreDetail, 0, len(report.Events)),
	}

	for i, tx := range report.Transactions {
		bundle.Transactions = append(bundle.Transactions, repository.Transaction{
			RunID:  report.RunID,
			Seq:    i,
			Wallet: tx.Wallet,
			TxHash: tx.TxHash,
			Method: tx.Method,
			Value:  tx.Value,
		})
	}

	for i, s := range report.Scores {
		bundle.Scores = append(bundle.Scores, repository.RiskScore{
			RunID:    report.RunID,
			Rank:     i + 1,
			Wallet:   s.Wallet,
			RawScore: s.RawScore,
			Score:    s.Score,
		})
	}

	for i, e := range report.Events {
		bundle.Details = append(bundle.Details, repository.ScoreDetail{
			RunID:       report.RunID,
			Seq:         i,
			Wallet:      e.Wallet,
			TxHash:      e.TxHash,
			Rule:        int(e.Rule),
			Points:      e.Points,
			PointsLabel: e.FormattedPoints(),
			Reason:      e.Reason,
		})
	}

	return bundle
}

func toSummary(run repository.Run) RunSummary {
	return RunSummary{
		RunID:            run.ID,
		CreatedAt:        run.CreatedAt,
		WalletCount:      run.WalletCount,
		TransactionCount: run.TransactionCount,
	}
}
