package razas

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
	write := middleware.RequireRoles(auth.RoleAdmin)

	r.Route("/api/razas", func(rr chi.Router) {
		rr.With(read).Get("/", listRazasHandler(svc))
		rr.With(read).Get("/{id}", getRazaHandler(svc))
		rr.With(read).Get("/nombre/{nombre}", getRazaByNombreHandler(svc))
		rr.With(read).Get("/especie/{especieId}", listRazasByEspecieHandler(svc))
		rr.With(write).Post("/create", createRazaHandler(svc))
		rr.With(write).Put("/{id}", updateRazaHandler(svc))
		rr.With(write).Delete("/{id}", deleteRazaHandler(svc))
	})
}

type razaCreateRequest struct {
	ID     *int64 `json:"id"`
	Nombre string `json:"nombre"`
	Estado string `json:"estado"`
}

type razaUpdateRequest struct {
	Nombre    string `json:"nombre"`
	Estado    string `json:"estado"`
	EspecieID *int64 `json:"especieId"`
}

type razaResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Estado    string `json:"estado"`
	EspecieID int64  `json:"especieId"`
}

func toRazaResponse(rz Raza) razaResponse {
	return razaResponse{
		ID:        rz.ID,
		Nombre:    rz.Nombre,
		Estado:    rz.Estado,
		EspecieID: rz.EspecieID,
	}
}

func toRazaResponses(items []Raza) []razaResponse {
	out := make([]razaResponse, 0, len(items))
	for _, rz := range items {
		out = append(out, toRazaResponse(rz))
	}
	return out
}

func listRazasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toRazaResponses(items))
	}
}

func getRazaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		rz, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toRazaResponse(rz))
	}
}

func getRazaByNombreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rz, err := svc.GetByNombre(r.Context(), chi.URLParam(r, "nombre"))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toRazaResponse(rz))
	}
}

func listRazasByEspecieHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		especieID, err := strconv.ParseInt(chi.URLParam(r, "especieId"), 10, 64)
		if err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "El ID de especie debe ser numérico.")
			return
		}
		items, err := svc.ListByEspecieID(r.Context(), especieID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toRazaResponses(items))
	}
}

func createRazaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req razaCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "JSON inválido.")
			return
		}
		especieID, ok, err := queryID(r, "especieId")
		if err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "El parámetro especieId debe ser numérico.")
			return
		}
		var especieIDPtr *int64
		if ok {
			especieIDPtr = &especieID
		}
		rz, err := svc.Create(r.Context(), CreateInput{
			ID:     req.ID,
			Nombre: req.Nombre,
			Estado: req.Estado,
		}, especieIDPtr)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toRazaResponse(rz))
	}
}

func updateRazaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req razaUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "JSON inválido.")
			return
		}
		rz, err := svc.Update(r.Context(), id, UpdateInput{
			Nombre:    req.Nombre,
			Estado:    req.Estado,
			EspecieID: req.EspecieID,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toRazaResponse(rz))
	}
}

func deleteRazaHandler(svc *Service) http.HandlerFunc {
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

// queryID lee un query param numérico opcional.
func queryID(r *http.Request, name string) (int64, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}
