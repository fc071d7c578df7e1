package types

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the only error shape the relay itself produces.
type ErrorBody struct {
	Error string `json:"error"`
}

// Relay error messages surfaced to clients.
const (
	MsgMissingCredential = "%s não configurada"
	MsgUnknownProvider   = "provedor desconhecido: %s"
	MsgInvalidBody       = "corpo JSON inválido"
	MsgUpstreamFailure   = "falha ao contatar %s: %v"
	MsgInvalidUpstream   = "resposta inválida de %s"
)

// WriteError writes {"error": message} with the given status.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorBody{Error: message})
}

// WriteRaw writes an already-encoded JSON document unchanged.
func WriteRaw(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
