package repository

import (
	"context"
	"sync"
)

// MemoryRepository keeps runs in process memory. It serves runs without a
// configured database and behaves like RunRepository.
type MemoryRepository struct {
	mu     sync.RWMutex
	runs   []RunBundle
	users  map[string]User
	latest int
}

func NewMemoryRepository(users ...User) *MemoryRepository {
	m := &MemoryRepository{
		users:  make(map[string]User, len(users)),
		latest: -1,
	}
	for _, u := range users {
		m.users[u.Username] = u
	}
	return m
}

func (m *MemoryRepository) SaveRun(_ context.Context, bundle RunBundle) error {
	stored := RunBundle{
		Run:          bundle.Run,
		Transactions: append([]Transaction(nil), bundle.Transactions...),
		Scores:       append([]RiskScore(nil), bundle.Scores...),
		Details:      append([]ScoreDetail(nil), bundle.Details...),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs = append(m.runs, stored)
	if m.latest < 0 || !stored.Run.CreatedAt.Before(m.runs[m.latest].Run.CreatedAt) {
		m.latest = len(m.runs) - 1
	}
	return nil
}

func (m *MemoryRepository) GetLatestRun(_ context.Context) (Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.latest < 0 {
		return Run{}, ErrRunNotFound
	}
	return m.runs[m.latest].Run, nil
}

func (m *MemoryRepository) GetScores(_ context.Context, runID string) ([]RiskScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bundle, ok := m.find(runID)
	if !ok {
		return []RiskScore{}, nil
	}
	return append([]RiskScore{}, bundle.Scores...), nil
}

func (m *MemoryRepository) GetDetails(_ context.Context, runID, wallet string) ([]ScoreDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	details := []ScoreDetail{}
	bundle, ok := m.find(runID)
	if !ok {
		return details, nil
	}
	for _, d := range bundle.Details {
		if d.Wallet == wallet {
			details = append(details, d)
		}
	}
	return details, nil
}

func (m *MemoryRepository) GetTransactions(_ context.Context, runID, wallet string) ([]Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	transactions := []Transaction{}
	bundle, ok := m.find(runID)
	if !ok {
		return transactions, nil
	}
	for _, tx := range bundle.Transactions {
		if tx.Wallet == wallet {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

func (m *MemoryRepository) GetUserFromDB(_ context.Context, username string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (m *MemoryRepository) find(runID string) (RunBundle, bool) {
	for _, b := range m.runs {
		if b.Run.ID == runID {
			return b, true
		}
	}
	return RunBundle{}, false
}
