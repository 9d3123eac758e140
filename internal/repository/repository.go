package repository

import (
	"context"
	"errors"
	"fmt"
	"walletrisk/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrRunNotFound error = errors.New("run not found")

type RunRepository struct {
	db Storage
}

func NewRunRepository(db Storage) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

func (r *RunRepository) MigrateAndSeed(ctx context.Context, users []User) error {
	err := r.db.MigrateModels(&Run{}, &Transaction{}, &RiskScore{}, &ScoreDetail{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	if len(users) == 0 {
		return nil
	}

	err = r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *RunRepository) SaveRun(ctx context.Context, bundle RunBundle) error {
	runs := []Run{bundle.Run}
	err := r.db.SaveInTransaction(ctx, &runs, &bundle.Transactions, &bundle.Scores, &bundle.Details)
	if err != nil {
		return fmt.Errorf("save run %s: %w", bundle.Run.ID, err)
	}

	return nil
}

func (r *RunRepository) GetLatestRun(ctx context.Context) (Run, error) {
	var run Run
	err := r.db.GetOneBy(ctx, nil, "created_at desc", &run)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Run{}, ErrRunNotFound
		}
		return Run{}, fmt.Errorf("get latest run: %w", err)
	}

	return run, nil
}

func (r *RunRepository) GetScores(ctx context.Context, runID string) ([]RiskScore, error) {
	scores := []RiskScore{}
	err := r.db.GetAllBy(ctx, map[string]any{"run_id": runID}, "rank asc", &scores)
	if err != nil {
		return scores, fmt.Errorf("get scores: %w", err)
	}

	return scores, nil
}

func (r *RunRepository) GetDetails(ctx context.Context, runID, wallet string) ([]ScoreDetail, error) {
	details := []ScoreDetail{}
	err := r.db.GetAllBy(ctx, map[string]any{"run_id": runID, "wallet": wallet}, "seq asc", &details)
	if err != nil {
		return details, fmt.Errorf("get score details: %w", err)
	}

	return details, nil
}

func (r *RunRepository) GetTransactions(ctx context.Context, runID, wallet string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllBy(ctx, map[string]any{"run_id": runID, "wallet": wallet}, "seq asc", &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get transactions: %w", err)
	}

	return transactions, nil
}

func (r *RunRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, map[string]any{"username": username}, "", &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
