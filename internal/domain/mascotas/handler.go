package mascotas

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"microvetcare/internal/middleware"
	"microvetcare/internal/platform/httpjson"
	"microvetcare/internal/ports/auth"
)

const fechaLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	read := middleware.RequireRoles(auth.RoleAdmin, auth.RoleVeterinario, auth.RoleAsistente)
	write := middleware.RequireRoles(auth.RoleAdmin, auth.RoleAsistente)
	admin := middleware.RequireRoles(auth.RoleAdmin)

	r.Route("/api/mascotas", func(mr chi.Router) {
		mr.With(read).Get("/", listMascotasHandler(svc))
		mr.With(read).Get("/{id}", getMascotaHandler(svc))
		mr.With(read).Get("/nombre/{nombre}", listByNombreHandler(svc))
		mr.With(read).Get("/dueno/{duenoId}", listByDuenoHandler(svc))
		mr.With(read).Get("/raza/{razaId}", listByRazaHandler(svc))
		mr.With(read).Get("/sexo/{genero}", listByGeneroHandler(svc))
		mr.With(read).Get("/nacidas-despues/{fecha}", listBornAfterHandler(svc))
		mr.With(read).Get("/nacidas-antes/{fecha}", listBornBeforeHandler(svc))
		mr.With(write).Post("/create", createMascotaHandler(svc))
		mr.With(write).Put("/{id}", updateMascotaHandler(svc))
		mr.With(admin).Delete("/{id}", deleteMascotaHandler(svc))
	})
}

type mascotaRequest struct {
	ID              *int64 `json:"id"`
	Nombre          string `json:"nombre"`
	Chip            string `json:"chip"`
	Genero          string `json:"genero"`
	Estado          int    `json:"estado"`
	FechaNacimiento string `json:"fechaNacimiento"` // YYYY-MM-DD

	// Los ids embebidos se aceptan pero no se usan: mandan los query
	// params duenoId/razaId.
	IDDueno *int64 `json:"idDueno"`
	IDRaza  *int64 `json:"idRaza"`
}

type mascotaResponse struct {
	ID              int64  `json:"id"`
	Nombre          string `json:"nombre"`
	Chip            string `json:"chip"`
	Genero          string `json:"genero"`
	Estado          int    `json:"estado"`
	FechaNacimiento string `json:"fechaNacimiento"`
	IDDueno         int64  `json:"idDueno"`
	IDRaza          int64  `json:"idRaza"`
	NombreDueno     string `json:"nombreDueno"`
	NombreRaza      string `json:"nombreRaza"`
}

func toMascotaResponse(v MascotaView) mascotaResponse {
	return mascotaResponse{
		ID:              v.ID,
		Nombre:          v.Nombre,
		Chip:            v.Chip,
		Genero:          v.Genero,
		Estado:          v.Estado,
		FechaNacimiento: v.FechaNacimiento.Format(fechaLayout),
		IDDueno:         v.DuenoID,
		IDRaza:          v.RazaID,
		NombreDueno:     v.NombreDueno,
		NombreRaza:      v.NombreRaza,
	}
}

func toMascotaResponses(items []MascotaView) []mascotaResponse {
	out := make([]mascotaResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toMascotaResponse(v))
	}
	return out
}

func listMascotasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMascotaResponses(items))
	}
}

func getMascotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		v, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMascotaResponse(v))
	}
}

func createMascotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, fecha, ok := decodeMascota(w, r)
		if !ok {
			return
		}
		duenoID, razaID, ok := relParams(w, r)
		if !ok {
			return
		}
		v, err := svc.Create(r.Context(), CreateInput{
			ID:              req.ID,
			Nombre:          req.Nombre,
			FechaNacimiento: fecha,
			Estado:          req.Estado,
			Chip:            req.Chip,
			Genero:          req.Genero,
		}, duenoID, razaID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toMascotaResponse(v))
	}
}

func updateMascotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		req, fecha, ok := decodeMascota(w, r)
		if !ok {
			return
		}
		duenoID, razaID, ok := relParams(w, r)
		if !ok {
			return
		}
		v, err := svc.Update(r.Context(), id, UpdateInput{
			Nombre:          req.Nombre,
			FechaNacimiento: fecha,
			Estado:          req.Estado,
			Chip:            req.Chip,
			Genero:          req.Genero,
		}, duenoID, razaID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMascotaResponse(v))
	}
}

func deleteMascotaHandler(svc *Service) http.HandlerFunc {
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

func listByNombreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByNombre(r.Context(), chi.URLParam(r, "nombre"))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMascotaResponses(items))
	}
}

func listByDuenoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		duenoID, err := strconv.ParseInt(chi.URLParam(r, "duenoId"), 10, 64)
		if err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "El ID de dueño debe ser numérico.")
			return
		}
		items, err := svc.ListByDuenoID(r.Context(), duenoID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMascotaResponses(items))
	}
}

func listByRazaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		razaID, err := strconv.ParseInt(chi.URLParam(r, "razaId"), 10, 64)
		if err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "El ID de raza debe ser numérico.")
			return
		}
		items, err := svc.ListByRazaID(r.Context(), razaID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMascotaResponses(items))
	}
}

func listByGeneroHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByGenero(r.Context(), chi.URLParam(r, "genero"))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMascotaResponses(items))
	}
}

func listBornAfterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fecha, ok := pathFecha(w, r)
		if !ok {
			return
		}
		items, err := svc.ListBornAfter(r.Context(), fecha)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMascotaResponses(items))
	}
}

func listBornBeforeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fecha, ok := pathFecha(w, r)
		if !ok {
			return
		}
		items, err := svc.ListBornBefore(r.Context(), fecha)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMascotaResponses(items))
	}
}

func decodeMascota(w http.ResponseWriter, r *http.Request) (mascotaRequest, time.Time, bool) {
	var req mascotaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteStatusError(w, r, http.StatusBadRequest, "JSON inválido.")
		return mascotaRequest{}, time.Time{}, false
	}
	fecha, err := time.Parse(fechaLayout, req.FechaNacimiento)
	if err != nil {
		httpjson.WriteStatusError(w, r, http.StatusBadRequest, "La fechaNacimiento debe tener formato YYYY-MM-DD.")
		return mascotaRequest{}, time.Time{}, false
	}
	return req, fecha, true
}

// relParams lee los query params duenoId/razaId; faltantes quedan en nil y
// el service decide el error.
func relParams(w http.ResponseWriter, r *http.Request) (*int64, *int64, bool) {
	parse := func(name string) (*int64, bool) {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return nil, true
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpjson.WriteStatusError(w, r, http.StatusBadRequest, "El parámetro "+name+" debe ser numérico.")
			return nil, false
		}
		return &id, true
	}

	duenoID, ok := parse("duenoId")
	if !ok {
		return nil, nil, false
	}
	razaID, ok := parse("razaId")
	if !ok {
		return nil, nil, false
	}
	return duenoID, razaID, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpjson.WriteStatusError(w, r, http.StatusBadRequest, "El ID debe ser numérico.")
		return 0, false
	}
	return id, true
}

func pathFecha(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	fecha, err := time.Parse(fechaLayout, chi.URLParam(r, "fecha"))
	if err != nil {
		httpjson.WriteStatusError(w, r, http.StatusBadRequest, "La fecha debe tener formato YYYY-MM-DD.")
		return time.Time{}, false
	}
	return fecha, true
}
