package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxRequestBodyBytes bounds request bodies; every write payload here is a
// few short fields.
const maxRequestBodyBytes = 1 << 16

// DecodeAndValidateRequest decodes the JSON body into dst and runs the
// shared validator over it. Unknown fields are rejected.
func DecodeAndValidateRequest(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	if err := GetValidator().Struct(dst); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}
