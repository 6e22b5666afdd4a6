package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"microvetcare/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_RegistroCompleto(t *testing.T) {
	ts := newTestServer(t)

	// 1) Admin crea especie
	especieID := createJSON(t, ts.URL, "/api/especies/create", "ADMIN", map[string]any{
		"nombreEspecie": "Canis familiaris",
		"nombre":        "Perro",
		"estado":        1,
	})

	// 2) Admin crea raza asociada a la especie
	razaID := createJSON(t, ts.URL, "/api/razas/create?especieId="+itoa(especieID), "ADMIN", map[string]any{
		"nombre": "Labrador",
		"estado": "A",
	})

	// 3) Asistente registra dueño
	duenoID := createJSON(t, ts.URL, "/api/duenos/create", "ASISTENTE", map[string]any{
		"rut":      "12345678-9",
		"nombre":   "María",
		"apellido": "Pérez",
		"telefono": "56912345678",
		"email":    "maria@example.com",
		"estado":   true,
	})

	// 4) Dueño sin mascotas => lista vacía, no 404
	{
		st, body := doReq(t, ts.URL, "GET", "/api/mascotas/dueno/"+itoa(duenoID), "VETERINARIO", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list mascotas by dueno, got %d body=%s", st, string(body))
		}
		if strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty array, got %s", string(body))
		}
	}

	// 5) Asistente registra mascota
	mascotaID := createJSON(t, ts.URL,
		"/api/mascotas/create?duenoId="+itoa(duenoID)+"&razaId="+itoa(razaID),
		"ASISTENTE", map[string]any{
			"nombre":          "Firulais",
			"chip":            "CHIP-001",
			"genero":          "Macho",
			"estado":          1,
			"fechaNacimiento": "2020-05-10",
		})

	// 6) La proyección resuelve nombre de dueño y raza
	{
		st, body := doReq(t, ts.URL, "GET", "/api/mascotas/"+itoa(mascotaID), "VETERINARIO", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get mascota, got %d body=%s", st, string(body))
		}
		var resp struct {
			NombreDueno string `json:"nombreDueno"`
			NombreRaza  string `json:"nombreRaza"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.NombreDueno != "María Pérez" || resp.NombreRaza != "Labrador" {
			t.Fatalf("unexpected projection: %s", string(body))
		}
	}

	// 7) El dueño expone la back-reference con los ids de sus mascotas
	{
		st, body := doReq(t, ts.URL, "GET", "/api/duenos/"+itoa(duenoID), "VETERINARIO", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get dueno, got %d body=%s", st, string(body))
		}
		var resp struct {
			MascotaIDs []int64 `json:"mascotaIds"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.MascotaIDs) != 1 || resp.MascotaIDs[0] != mascotaID {
			t.Fatalf("expected mascotaIds=[%d], got %s", mascotaID, string(body))
		}
	}

	// 8) Borrar raza con mascotas queda bloqueado
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/razas/"+itoa(razaID), "ADMIN", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 delete raza en uso, got %d body=%s", st, string(body))
		}
	}

	// 9) Borrar dueño arrastra sus mascotas
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/duenos/"+itoa(duenoID), "ADMIN", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete dueno, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/mascotas/"+itoa(mascotaID), "ADMIN", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 mascota after dueno delete, got %d", st)
		}
	}

	// 10) Sin mascotas, borrar especie arrastra sus razas
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/especies/"+itoa(especieID), "ADMIN", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete especie, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/razas/"+itoa(razaID), "ADMIN", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 raza after especie delete, got %d", st)
		}
	}
}

func TestHTTP_RolesYAutenticacion(t *testing.T) {
	ts := newTestServer(t)

	// sin credenciales => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/especies/", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without roles, got %d", st)
		}
	}

	// veterinario puede leer pero no escribir especies
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/especies/", "VETERINARIO", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list especies as veterinario, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/api/especies/create", "VETERINARIO", map[string]any{
			"nombreEspecie": "Felis catus",
			"nombre":        "Gato",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create especie as veterinario, got %d", st)
		}
	}

	// asistente no puede crear razas (solo admin)
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/razas/create?especieId=1", "ASISTENTE", map[string]any{
			"nombre": "Siames",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create raza as asistente, got %d", st)
		}
	}

	// asistente no puede borrar dueños (solo admin)
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/duenos/1", "ASISTENTE", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 delete dueno as asistente, got %d", st)
		}
	}

	// health y metrics quedan fuera del gate de roles
	{
		st, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 health, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/metrics", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
	}
}

func TestHTTP_RutDuplicado(t *testing.T) {
	ts := newTestServer(t)

	rut := "12345678-9"
	createJSON(t, ts.URL, "/api/duenos/create", "ADMIN", map[string]any{
		"rut":      rut,
		"nombre":   "Ana",
		"apellido": "Soto",
	})

	st, body := doReq(t, ts.URL, "POST", "/api/duenos/create", "ADMIN", map[string]any{
		"rut":      rut,
		"nombre":   "Otra",
		"apellido": "Persona",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 duplicate rut, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), rut) {
		t.Fatalf("expected error message to contain rut, got %s", string(body))
	}
}

func TestHTTP_MascotaConDuenoInexistente(t *testing.T) {
	ts := newTestServer(t)

	especieID := createJSON(t, ts.URL, "/api/especies/create", "ADMIN", map[string]any{
		"nombreEspecie": "Canis familiaris",
		"nombre":        "Perro",
	})
	razaID := createJSON(t, ts.URL, "/api/razas/create?especieId="+itoa(especieID), "ADMIN", map[string]any{
		"nombre": "Pudú", // nombre da igual, importa el id
	})

	st, body := doReq(t, ts.URL,
		"POST", "/api/mascotas/create?duenoId=999&razaId="+itoa(razaID),
		"ADMIN", map[string]any{
			"nombre":          "Firulais",
			"chip":            "CHIP-002",
			"genero":          "Macho",
			"fechaNacimiento": "2021-01-01",
		})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 create mascota with unknown dueno, got %d body=%s", st, string(body))
	}

	// nada quedó persistido
	st, body = doReq(t, ts.URL, "GET", "/api/mascotas/", "ADMIN", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list mascotas, got %d", st)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected no mascotas persisted, got %s", string(body))
	}
}

func TestHTTP_BusquedasSecundarias(t *testing.T) {
	ts := newTestServer(t)

	createJSON(t, ts.URL, "/api/duenos/create", "ADMIN", map[string]any{
		"rut":      "11111111-1",
		"nombre":   "Pedro",
		"apellido": "Rojas",
		"email":    "pedro@example.com",
	})

	{
		st, body := doReq(t, ts.URL, "GET", "/api/duenos/rut/11111111-1", "ASISTENTE", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get by rut, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/duenos/email/pedro@example.com", "ASISTENTE", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get by email, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/duenos/rut/99999999-9", "ASISTENTE", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown rut, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), "99999999-9") {
			t.Fatalf("expected message with rut, got %s", string(body))
		}
	}
}

func createJSON(t *testing.T, baseURL, path, roles string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, roles, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugRoles string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugRoles != "" {
		req.Header.Set("X-Debug-Roles", debugRoles)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
