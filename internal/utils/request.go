package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// GetVar extracts a non-empty path variable from mux.Vars.
func GetVar(w http.ResponseWriter, r *http.Request, paramName string) (string, error) {
	value := strings.TrimSpace(mux.Vars(r)[paramName])
	if value == "" {
		SendJSONError(w, "Missing "+paramName+" parameter", http.StatusBadRequest)
		return "", errors.New("missing " + paramName + " parameter")
	}
	return value, nil
}
