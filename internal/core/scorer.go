package core

import (
	"fmt"
	"strconv"
	"strings"
)

// NativeSymbol is the unit shown in score reasons.
const NativeSymbol = "ETH"

const (
	baseActivityPoints     = 2.0
	highValuePoints        = 10.0
	suspiciousMethodPoints = 5.0
	highValueThreshold     = 1.0
	valueContributionRate  = 0.5
)

var suspiciousMethods = map[string]struct{}{
	"":         {},
	"unknown":  {},
	"fallback": {},
}

// IsSuspiciousMethod reports whether a decoded method name counts as suspicious.
// An undecoded method and the literal names "unknown" and "fallback" are treated alike.
func IsSuspiciousMethod(method string) bool {
	_, ok := suspiciousMethods[method]
	return ok
}

type rule struct {
	id    RuleID
	apply func(tx FlatTransaction) (points float64, reason string, ok bool)
}

// rules run in this order for every transaction.
var rules = []rule{
	{
		id: RuleBaseActivity,
		apply: func(FlatTransaction) (float64, string, bool) {
			return baseActivityPoints, "Transaction recorded", true
		},
	},
	{
		id: RuleHighValue,
		apply: func(tx FlatTransaction) (float64, string, bool) {
			if tx.Value <= highValueThreshold {
				return 0, "", false
			}
			return highValuePoints, fmt.Sprintf("High-value transfer (%s %s)", FormatAmount(tx.Value), NativeSymbol), true
		},
	},
	{
		id: RuleSuspiciousMethod,
		apply: func(tx FlatTransaction) (float64, string, bool) {
			if !IsSuspiciousMethod(tx.Method) {
				return 0, "", false
			}
			return suspiciousMethodPoints, fmt.Sprintf("Suspicious or unknown method '%s'", tx.Method), true
		},
	},
	{
		id: RuleValueContribution,
		apply: func(tx FlatTransaction) (float64, string, bool) {
			if tx.Value <= 0 {
				return 0, "", false
			}
			return valueContributionRate * tx.Value, fmt.Sprintf("Value contribution (%s %s)", FormatAmount(tx.Value), NativeSymbol), true
		},
	},
}

// Score folds the transactions into per-wallet raw scores and the ordered audit log.
func Score(transactions []FlatTransaction) (RawScoreTable, []ScoreEvent) {
	table := NewRawScoreTable()
	events := make([]ScoreEvent, 0, len(transactions)*2)

	for _, tx := range transactions {
		for _, r := range rules {
			points, reason, ok := r.apply(tx)
			if !ok {
				continue
			}
			table.add(tx.Wallet, points)
			events = append(events, ScoreEvent{
				Wallet: tx.Wallet,
				TxHash: tx.TxHash,
				Rule:   r.id,
				Points: points,
				Reason: reason,
			})
		}
	}

	return table, events
}

// FormatAmount renders a float with at least one decimal place ("2.0", "0.625").
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
