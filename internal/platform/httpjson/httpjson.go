// Package httpjson concentra la escritura de respuestas JSON y el cuerpo de
// error uniforme de la API. Antes cada handler duplicaba su writeJSON; con
// cuatro módulos ya conviene el helper común.
package httpjson

import (
	"encoding/json"
	"net/http"
	"time"

	"microvetcare/internal/platform/apierr"
)

type errorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError serializa un error de dominio con el cuerpo uniforme.
// Errores no tipados => 500 con mensaje genérico, sin filtrar detalle interno.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apierr.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Ocurrió un error inesperado."
	}
	WriteStatusError(w, r, status, msg)
}

func WriteStatusError(w http.ResponseWriter, r *http.Request, status int, message string) {
	Write(w, status, errorBody{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	})
}
