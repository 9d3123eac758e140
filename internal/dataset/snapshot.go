package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"walletrisk/internal/core"
)

var ErrInvalidSnapshot error = errors.New("snapshot is not a json object")

// WriteSnapshot writes the payloads as one JSON object keyed by wallet, in
// input order. Payload text that holds valid JSON is embedded as JSON; any other
// text is written as a string.
func WriteSnapshot(w io.Writer, payloads []core.WalletPayload) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("{"); err != nil {
		return err
	}
	for i, p := range payloads {
		if i > 0 {
			bw.WriteString(",")
		}

		key, err := json.Marshal(p.Wallet)
		if err != nil {
			return fmt.Errorf("encode wallet %q: %w", p.Wallet, err)
		}
		value, err := json.MarshalIndent(snapshotValue(p.Payload), "  ", "  ")
		if err != nil {
			return fmt.Errorf("encode payload of %q: %w", p.Wallet, err)
		}

		bw.WriteString("\n  ")
		bw.Write(key)
		bw.WriteString(": ")
		bw.Write(value)
	}
	if len(payloads) > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// ReadSnapshot reads a snapshot written by WriteSnapshot, keeping the key order.
// Numbers are kept as json.Number.
func ReadSnapshot(r io.Reader) ([]core.WalletPayload, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	tok, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrInvalidSnapshot
	}

	payloads := []core.WalletPayload{}
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("reading wallet key: %w", err)
		}
		wallet, ok := tok.(string)
		if !ok {
			return nil, ErrInvalidSnapshot
		}

		var payload any
		if err := decoder.Decode(&payload); err != nil {
			return nil, fmt.Errorf("decoding payload of %q: %w", wallet, err)
		}
		payloads = append(payloads, core.WalletPayload{Wallet: wallet, Payload: payload})
	}

	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	return payloads, nil
}

func snapshotValue(payload core.RawPayload) any {
	switch p := payload.(type) {
	case json.RawMessage:
		if json.Valid(p) {
			return p
		}
		return string(p)
	case []byte:
		if json.Valid(p) {
			return json.RawMessage(p)
		}
		return string(p)
	case string:
		if json.Valid([]byte(p)) {
			return json.RawMessage(p)
		}
		return p
	default:
		return p
	}
}
