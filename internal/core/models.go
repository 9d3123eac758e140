package core

import (
	"fmt"
	"time"
)

// RawPayload is one wallet's transaction history as returned upstream: a decoded
// JSON value (object, array, scalar) or the undecoded text/bytes.
type RawPayload any

// WalletPayload pairs a wallet with its raw payload.
type WalletPayload struct {
	Wallet  string
	Payload RawPayload
}

type FlatTransaction struct {
	Wallet string  `json:"wallet"`
	TxHash string  `json:"tx_hash"`
	Method string  `json:"method"`
	Value  float64 `json:"value"`
}

// RuleID identifies the scoring rule that produced an event.
type RuleID int

const (
	RuleBaseActivity RuleID = iota + 1
	RuleHighValue
	RuleSuspiciousMethod
	RuleValueContribution
)

type ScoreEvent struct {
	Wallet string  `json:"wallet"`
	TxHash string  `json:"tx_hash"`
	Rule   RuleID  `json:"-"`
	Points float64 `json:"points"`
	Reason string  `json:"reason"`
}

// FormattedPoints renders the signed points; fractional rules always carry two decimals.
func (e ScoreEvent) FormattedPoints() string {
	if e.Rule == RuleValueContribution {
		return fmt.Sprintf("%+.2f", e.Points)
	}
	return fmt.Sprintf("%+g", e.Points)
}

type WalletRawScore struct {
	Wallet string
	Score  float64
}

// RawScoreTable maps wallets to accumulated raw points and remembers the order in
// which wallets were first seen.
type RawScoreTable struct {
	wallets []string
	scores  map[string]float64
}

// NewRawScoreTable builds a table from entries; repeated wallets are summed.
func NewRawScoreTable(entries ...WalletRawScore) RawScoreTable {
	t := RawScoreTable{scores: make(map[string]float64, len(entries))}
	for _, e := range entries {
		t.add(e.Wallet, e.Score)
	}
	return t
}

func (t *RawScoreTable) add(wallet string, points float64) {
	if t.scores == nil {
		t.scores = make(map[string]float64)
	}
	if _, ok := t.scores[wallet]; !ok {
		t.wallets = append(t.wallets, wallet)
	}
	t.scores[wallet] += points
}

func (t RawScoreTable) Get(wallet string) (float64, bool) {
	score, ok := t.scores[wallet]
	return score, ok
}

func (t RawScoreTable) Len() int {
	return len(t.wallets)
}

// Wallets returns the wallets in insertion order.
func (t RawScoreTable) Wallets() []string {
	out := make([]string, len(t.wallets))
	copy(out, t.wallets)
	return out
}

// Entries returns the table in insertion order.
func (t RawScoreTable) Entries() []WalletRawScore {
	out := make([]WalletRawScore, 0, len(t.wallets))
	for _, w := range t.wallets {
		out = append(out, WalletRawScore{Wallet: w, Score: t.scores[w]})
	}
	return out
}

func (t RawScoreTable) max() float64 {
	var maxRaw float64
	for i, w := range t.wallets {
		if i == 0 || t.scores[w] > maxRaw {
			maxRaw = t.scores[w]
		}
	}
	return maxRaw
}

type WalletScore struct {
	Wallet   string  `json:"wallet"`
	RawScore float64 `json:"raw_score"`
	Score    float64 `json:"risk_score"`
}

// Report is the full output of one assessment run.
type Report struct {
	RunID        string
	CreatedAt    time.Time
	Transactions []FlatTransaction
	RawScores    RawScoreTable
	Scores       []WalletScore
	Events       []ScoreEvent
}

type RunSummary struct {
	RunID            string    `json:"run_id"`
	CreatedAt        time.Time `json:"created_at"`
	WalletCount      int       `json:"wallet_count"`
	TransactionCount int       `json:"transaction_count"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
