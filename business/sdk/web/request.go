package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Decoder defines behavior for a data model to decode a byte slice
// into itself.
type Decoder interface {
	Decode(data []byte) error
}

type validator interface {
	Validate() error
}

// Param returns the web call parameters from the request.
func Param(r *http.Request, key string) string {
	return r.PathValue(key)
}

// Decode reads the body of an HTTP request looking for a JSON document. The
// body is decoded into the provided value. If the value implements a
// Validate method it is executed.
func Decode(r *http.Request, v Decoder) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("request: unable to read payload: %w", err)
	}

	if len(data) == 0 {
		return errors.New("request: empty body")
	}

	if err := v.Decode(data); err != nil {
		return fmt.Errorf("request: unable to decode payload: %w", err)
	}

	if v, ok := any(v).(validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}
