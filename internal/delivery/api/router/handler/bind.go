package handler

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errEmptyBody = errors.New("request body is empty")

// bindList decodes either a bare JSON array or an object holding the array
// under key, e.g. {"openingHours": [...]}.
func bindList[T any](c echo.Context, key string) ([]T, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request body")
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errEmptyBody
	}

	if raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, errors.Wrap(err, "failed to decode array body")
		}

		return items, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, errors.Wrap(err, "failed to decode object body")
	}

	items := []T{}
	if inner, ok := wrapped[key]; ok && !bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
		if err := json.Unmarshal(inner, &items); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", key)
		}
	}

	return items, nil
}
