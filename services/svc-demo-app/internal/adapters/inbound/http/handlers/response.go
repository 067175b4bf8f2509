package handlers

import (
	"encoding/json"
	"net/http"
)

const (
	ContentTypeHeader = "Content-Type"
	ApplicationJSON   = "application/json"
)

// WriteJSON writes body with status. Encoding errors are dropped: the header is already out.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(ContentTypeHeader, ApplicationJSON)
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
