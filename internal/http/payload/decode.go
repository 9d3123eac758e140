package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const maxPayloadBytes = 1 << 20

func DecodePayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxPayloadBytes))
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
