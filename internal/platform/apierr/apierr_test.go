package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"microvetcare/internal/platform/apierr"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apierr.NotFound("Dueño no encontrado con ID: %d", 5), http.StatusNotFound},
		{apierr.Invalid("El RUT no es válido"), http.StatusBadRequest},
		{errors.New("falla interna"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := apierr.Status(c.err); got != c.want {
			t.Fatalf("Status(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestKindOf_Envuelto(t *testing.T) {
	err := fmt.Errorf("contexto: %w", apierr.Invalid("El nombre es obligatorio."))
	if apierr.KindOf(err) != apierr.KindInvalid {
		t.Fatalf("expected KindInvalid through wrapping, got %v", apierr.KindOf(err))
	}
}

func TestMensaje(t *testing.T) {
	err := apierr.NotFound("Especie no encontrada con ID: %d", 3)
	if err.Error() != "Especie no encontrada con ID: 3" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
