package duenos

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
	create := middleware.RequireRoles(auth.RoleAdmin, auth.RoleAsistente)
	admin := middleware.RequireRoles(auth.RoleAdmin)

	r.Route("/api/duenos", func(dr chi.Router) {
		dr.With(read).Get("/", listDuenosHandler(svc))
		dr.With(read).Get("/{id}", getDuenoHandler(svc))
		dr.With(read).Get("/rut/{rut}", getDuenoByRutHandler(svc))
		dr.With(read).Get("/email/{email}", getDuenoByEmailHandler(svc))
		dr.With(create).Post("/create", createDuenoHandler(svc))
		dr.With(admin).Put("/{id}", updateDuenoHandler(svc))
		dr.With(admin).Delete("/{id}", deleteDuenoHandler(svc))
	})
}

type duenoCreateRequest struct {
	ID        *int64 `json:"id"`
	Rut       string `json:"rut"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Estado    bool   `json:"estado"`
}

type duenoUpdateRequest struct {
	Rut       *string `json:"rut"`
	Nombre    *string `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Estado    *bool   `json:"estado"`
}

type duenoResponse struct {
	ID         int64   `json:"id"`
	Rut        string  `json:"rut"`
	Nombre     string  `json:"nombre"`
	Apellido   string  `json:"apellido"`
	Direccion  string  `json:"direccion"`
	Telefono   string  `json:"telefono"`
	Email      string  `json:"email"`
	Estado     bool    `json:"estado"`
	MascotaIDs []int64 `json:"mascotaIds"`
}

func toDuenoResponse(d Dueno, mascotaIDs []int64) duenoResponse {
	if mascotaIDs == nil {
		mascotaIDs = []int64{}
	}
	return duenoResponse{
		ID:         d.ID,
		Rut:        d.Rut,
		Nombre:     d.Nombre,
		Apellido:   d.Apellido,
		Direccion:  d.Direccion,
		Telefono:   d.Telefono,
		Email:      d.Email,
		Estado:     d.Estado,
		MascotaIDs: mascotaIDs,
	}
}

func respondDueno(w http.ResponseWriter, r *http.Request, svc *Service, d Dueno, status int) {
	ids, err := svc.MascotaIDs(r.Context(), d.ID)
	if err != nil {
		httpjson.WriteError(w, r, err)
		return
	}
	httpjson.Write(w, status, toDuenoResponse(d, ids))
}

func listDuenosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		out := make([]duenoResponse, 0, len(items))
		for _, d := range items {
			ids, err := svc.MascotaIDs(r.Context(), d.ID)
			if err != nil {
				httpjson.WriteError(w, r, err)
				return
			}
			out = append(out, toDuenoResponse(d, ids))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getDuenoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		respondDueno(w, r, svc, d, http.StatusOK)
	}
}

func getDuenoByRutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByRut(r.Context(), chi.URLParam(r, "rut"))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		respondDueno(w, r, svc, d, http.StatusOK)
	}
}

func getDuenoByEmailHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByEmail(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		respondDueno(w, r, svc, d, http.StatusOK)
	}
}

func createDuenoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req duenoCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "JSON inválido.")
			return
		}
		d, err := svc.Create(r.Context(), CreateInput{
			ID:        req.ID,
			Rut:       req.Rut,
			Nombre:    req.Nombre,
			Apellido:  req.Apellido,
			Direccion: req.Direccion,
			Telefono:  req.Telefono,
			Email:     req.Email,
			Estado:    req.Estado,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		// recién creado: no puede tener mascotas
		httpjson.Write(w, http.StatusCreated, toDuenoResponse(d, nil))
	}
}

func updateDuenoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req duenoUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "JSON inválido.")
			return
		}
		d, err := svc.Update(r.Context(), id, UpdateInput{
			Rut:       req.Rut,
			Nombre:    req.Nombre,
			Apellido:  req.Apellido,
			Direccion: req.Direccion,
			Telefono:  req.Telefono,
			Email:     req.Email,
			Estado:    req.Estado,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		respondDueno(w, r, svc, d, http.StatusOK)
	}
}

func deleteDuenoHandler(svc *Service) http.HandlerFunc {
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
