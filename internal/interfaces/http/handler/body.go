package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

func init() {
	binding.EnableDecoderUseNumber = true
}

// decodeBody reads a flat JSON object through gin's JSON binding. Numbers
// stay exact: integers become int64 and everything else decimal.Decimal.
// Nested objects and arrays are rejected.
func decodeBody(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, shared.ErrBodyTooLarge
		}
		return nil, shared.ErrInvalidInput.Wrap(fmt.Errorf("read body: %w", err))
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, shared.ErrInvalidInput.Wrap(errors.New("request body is required"))
	}

	var body map[string]any
	if err := binding.JSON.BindBody(raw, &body); err != nil {
		return nil, shared.ErrInvalidInput.Wrap(fmt.Errorf("malformed JSON body: %w", err))
	}
	if body == nil {
		return nil, shared.ErrInvalidInput.Wrap(errors.New("request body must be a JSON object"))
	}
	// BindBody stops after the first value
	if !json.Valid(raw) {
		return nil, shared.ErrInvalidInput.Wrap(errors.New("request body must contain a single JSON object"))
	}

	for k, v := range body {
		switch t := v.(type) {
		case json.Number:
			n, err := number(t)
			if err != nil {
				return nil, shared.ErrInvalidInput.Wrap(fmt.Errorf("%s: %w", k, err))
			}
			body[k] = n
		case map[string]any, []any:
			return nil, shared.ErrInvalidInput.Wrap(fmt.Errorf("%s must be a scalar value", k))
		}
	}
	return body, nil
}

func number(n json.Number) (any, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", n.String())
	}
	return d, nil
}
