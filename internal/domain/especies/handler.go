package especies

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"microvetcare/internal/middleware"
	"microvetcare/internal/platform/httpjson"
	"microvetcare/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	read := middleware.RequireRoles(auth.RoleAdmin, auth.RoleVeterinario, auth.RoleAsistente)
	write := middleware.RequireRoles(auth.RoleAdmin, auth.RoleAsistente)

	r.Route("/api/especies", func(er chi.Router) {
		er.With(read).Get("/", listEspeciesHandler(svc))
		er.With(read).Get("/{id}", getEspecieHandler(svc))
		er.With(read).Get("/nombre/{nombre}", getEspecieByNombreHandler(svc))
		er.With(write).Post("/create", createEspecieHandler(svc))
		er.With(write).Put("/{id}", updateEspecieHandler(svc))
		er.With(write).Delete("/{id}", deleteEspecieHandler(svc))
	})
}

type especieCreateRequest struct {
	ID            *int64 `json:"id"`
	NombreEspecie string `json:"nombreEspecie"`
	Nombre        string `json:"nombre"`
	Estado        int    `json:"estado"`
}

type especieUpdateRequest struct {
	NombreEspecie *string `json:"nombreEspecie"`
	Nombre        *string `json:"nombre"`
	Estado        *int    `json:"estado"`
}

type especieResponse struct {
	ID            int64  `json:"id"`
	NombreEspecie string `json:"nombreEspecie"`
	Nombre        string `json:"nombre"`
	Estado        int    `json:"estado"`
}

func toEspecieResponse(e Especie) especieResponse {
	return especieResponse{
		ID:            e.ID,
		NombreEspecie: e.NombreEspecie,
		Nombre:        e.Nombre,
		Estado:        e.Estado,
	}
}

func listEspeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		out := make([]especieResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEspecieResponse(e))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getEspecieHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toEspecieResponse(e))
	}
}

func getEspecieByNombreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetByNombre(r.Context(), chi.URLParam(r, "nombre"))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toEspecieResponse(e))
	}
}

func createEspecieHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req especieCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "JSON inválido.")
			return
		}
		e, err := svc.Create(r.Context(), CreateInput{
			ID:            req.ID,
			NombreEspecie: req.NombreEspecie,
			Nombre:        req.Nombre,
			Estado:        req.Estado,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toEspecieResponse(e))
	}
}

func updateEspecieHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req especieUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "JSON inválido.")
			return
		}
		e, err := svc.Update(r.Context(), id, UpdateInput{
			NombreEspecie: req.NombreEspecie,
			Nombre:        req.Nombre,
			Estado:        req.Estado,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toEspecieResponse(e))
	}
}

func deleteEspecieHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpjson.WriteStatusError(w, r, http.StatusBadRequest, "El ID debe ser numérico.")
		return 0, false
	}
	return id, true
}
