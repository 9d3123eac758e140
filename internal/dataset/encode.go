package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"walletrisk/internal/core"
)

const (
	TransactionsFile = "processed_data.csv"
	ScoresFile       = "risk_scores.csv"
	DetailsFile      = "risk_score_details.csv"
	SnapshotFile     = "raw_transactions.json"
)

// ReportFile pairs an output file name with the encoder that renders it.
type ReportFile struct {
	Name   string
	Encode func(w io.Writer, report core.Report) error
}

// ReportFiles lists the files every published report consists of.
func ReportFiles() []ReportFile {
	return []ReportFile{
		{Name: TransactionsFile, Encode: func(w io.Writer, r core.Report) error { return EncodeTransactions(w, r.Transactions) }},
		{Name: ScoresFile, Encode: func(w io.Writer, r core.Report) error { return EncodeScores(w, r.Scores) }},
		{Name: DetailsFile, Encode: func(w io.Writer, r core.Report) error { return EncodeDetails(w, r.Events) }},
	}
}

func EncodeTransactions(w io.Writer, transactions []core.FlatTransaction) error {
	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, []string{tx.Wallet, tx.TxHash, tx.Method, core.FormatAmount(tx.Value)})
	}
	return writeCSV(w, []string{"wallet", "tx_hash", "method", "value"}, rows)
}

// EncodeScores expects the scores already ranked.
func EncodeScores(w io.Writer, scores []core.WalletScore) error {
	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, []string{s.Wallet, core.FormatAmount(s.Score)})
	}
	return writeCSV(w, []string{"wallet", "risk_score"}, rows)
}

func EncodeDetails(w io.Writer, events []core.ScoreEvent) error {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{e.Wallet, e.TxHash, e.FormattedPoints(), e.Reason})
	}
	return writeCSV(w, []string{"wallet", "tx_hash", "points", "reason"}, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
