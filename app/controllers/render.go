package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"boardhub/app/apperr"
	"boardhub/global"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// writeError maps the error taxonomy to a status. Internal causes are logged
// here and never reach the response body.
func writeError(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		global.Logger.Error().Err(err).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}
	writeJSON(w, apperr.Status(err), errorBody{Error: err.Error(), Reason: apperr.ReasonOf(err)})
}

func pathUint(r *http.Request, name string) (uint, bool) {
	v, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg, Reason: apperr.ReasonInvalidInput})
}
