package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMissingWalletColumn error = errors.New("wallet_id column not found")

const walletColumn = "wallet_id"

// LoadWallets reads the wallet_id column of a CSV file. Blank cells are skipped
// and repeated wallets keep their first position.
func LoadWallets(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingWalletColumn
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	column := -1
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		if name == walletColumn {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, ErrMissingWalletColumn
	}

	seen := make(map[string]struct{})
	wallets := []string{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		if column >= len(record) {
			continue
		}

		wallet := strings.TrimSpace(record[column])
		if wallet == "" {
			continue
		}
		if _, ok := seen[wallet]; ok {
			continue
		}
		seen[wallet] = struct{}{}
		wallets = append(wallets, wallet)
	}

	return wallets, nil
}
