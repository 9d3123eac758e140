package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var errTrailingData = errors.New("unexpected data after top-level value")

type payloadShape int

const (
	shapeUnrecognized payloadShape = iota
	shapeItems
	shapeNestedItems
	shapeList
)

func (s payloadShape) String() string {
	switch s {
	case shapeItems:
		return "items"
	case shapeNestedItems:
		return "data.items"
	case shapeList:
		return "list"
	default:
		return "unrecognized"
	}
}

// Normalizer flattens raw wallet payloads into transaction rows.
type Normalizer struct {
	logs *zap.SugaredLogger
}

func NewNormalizer(logger *zap.SugaredLogger) *Normalizer {
	return &Normalizer{
		logs: logger,
	}
}

// Normalize returns the wallet's transactions in upstream order. Payloads that
// cannot be parsed or whose shape is not recognized yield an empty slice.
func (n *Normalizer) Normalize(wallet string, payload RawPayload) []FlatTransaction {
	if text, ok := payloadText(payload); ok {
		decoded, err := decodeText(text)
		if err != nil {
			n.logs.Warnw("skipping wallet, payload is not valid json",
				"wallet", wallet,
				"error", err)
			return []FlatTransaction{}
		}
		payload = decoded
	}

	shape, entries := resolveShape(payload)
	if shape == shapeUnrecognized {
		n.logs.Warnw("skipping wallet, unexpected payload structure",
			"wallet", wallet,
			"structure", describe(payload))
		return []FlatTransaction{}
	}

	transactions := make([]FlatTransaction, 0, len(entries))
	for _, entry := range entries {
		tx, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		transactions = append(transactions, flatten(wallet, tx))
	}

	n.logs.Debugw("wallet payload normalized",
		"wallet", wallet,
		"shape", shape.String(),
		"count", len(transactions))

	return transactions
}

// NormalizeAll normalizes every payload, up to workers at a time, and concatenates
// the results in input order.
func (n *Normalizer) NormalizeAll(payloads []WalletPayload, workers int) []FlatTransaction {
	perWallet := make([][]FlatTransaction, len(payloads))

	// Normalize never fails; the group only bounds concurrency.
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, p := range payloads {
		g.Go(func() error {
			perWallet[i] = n.Normalize(p.Wallet, p.Payload)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, txs := range perWallet {
		total += len(txs)
	}

	transactions := make([]FlatTransaction, 0, total)
	for _, txs := range perWallet {
		transactions = append(transactions, txs...)
	}
	return transactions
}

func payloadText(payload RawPayload) ([]byte, bool) {
	switch p := payload.(type) {
	case string:
		return []byte(p), true
	case []byte:
		return p, true
	case json.RawMessage:
		return p, true
	}
	return nil, false
}

func decodeText(text []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(text))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return decoded, nil
}

func resolveShape(payload RawPayload) (payloadShape, []any) {
	switch p := payload.(type) {
	case map[string]any:
		if items, ok := p["items"].([]any); ok {
			return shapeItems, items
		}
		if data, ok := p["data"].(map[string]any); ok {
			if items, ok := data["items"].([]any); ok {
				return shapeNestedItems, items
			}
		}
	case []any:
		return shapeList, p
	case []map[string]any:
		entries := make([]any, len(p))
		for i, tx := range p {
			entries[i] = tx
		}
		return shapeList, entries
	}
	return shapeUnrecognized, nil
}

func describe(payload RawPayload) string {
	m, ok := payload.(map[string]any)
	if !ok {
		return fmt.Sprintf("%T", payload)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("keys %v", keys)
}

func flatten(wallet string, tx map[string]any) FlatTransaction {
	txHash := stringField(tx, "tx_hash")
	if txHash == "" {
		txHash = stringField(tx, "hash")
	}

	var method string
	if decoded, ok := tx["decoded"].(map[string]any); ok {
		method = strings.ToLower(stringField(decoded, "name"))
	}

	return FlatTransaction{
		Wallet: wallet,
		TxHash: txHash,
		Method: method,
		Value:  ParseNativeValue(tx["value"]),
	}
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}
