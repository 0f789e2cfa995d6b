package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
)

// ParseQueryInt reads an optional integer query parameter, returning the
// fallback when the parameter is absent.
func ParseQueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid query parameter").WithDetails(map[string]string{name: "must be an integer"})
	}
	return value, nil
}

// ParseQueryBool reads an optional boolean query parameter. A nil result
// means the parameter was not supplied.
func ParseQueryBool(r *http.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid query parameter").WithDetails(map[string]string{name: "must be true or false"})
	}
	return &value, nil
}
