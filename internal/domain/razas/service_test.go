package razas_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"microvetcare/internal/adapters/storage/memory"
	"microvetcare/internal/domain/duenos"
	"microvetcare/internal/domain/especies"
	"microvetcare/internal/domain/mascotas"
	"microvetcare/internal/domain/razas"
	"microvetcare/internal/platform/apierr"
)

type fixture struct {
	store *memory.Store
	svc   *razas.Service

	especieID int64
}

func setup(t *testing.T) fixture {
	t.Helper()
	store := memory.NewStore()
	especieRepo := memory.NewEspecieRepo(store)

	e, err := especieRepo.Create(context.Background(), especies.Especie{
		NombreEspecie: "Canis familiaris",
		Nombre:        "Perro",
		Estado:        especies.EstadoActiva,
	})
	require.NoError(t, err)

	return fixture{
		store:     store,
		svc:       razas.NewService(memory.NewRazaRepo(store), especieRepo),
		especieID: e.ID,
	}
}

func TestRazas_Create(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	rz, err := f.svc.Create(ctx, razas.CreateInput{Nombre: "Labrador"}, &f.especieID)
	require.NoError(t, err)
	require.NotZero(t, rz.ID)
	require.Equal(t, razas.EstadoActiva, rz.Estado) // default cuando no viene
	require.Equal(t, f.especieID, rz.EspecieID)
}

func TestRazas_Create_SinEspecieID(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.Create(ctx, razas.CreateInput{Nombre: "Labrador"}, nil)
	require.Error(t, err)
	require.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
	require.Contains(t, err.Error(), "El parámetro especieId es obligatorio.")
}

func TestRazas_Create_EspecieInexistente(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	otra := int64(999)
	_, err := f.svc.Create(ctx, razas.CreateInput{Nombre: "Labrador"}, &otra)
	require.Error(t, err)
	require.Equal(t, apierr.KindNotFound, apierr.KindOf(err))
	require.Contains(t, err.Error(), "Especie no encontrada con ID: 999")
}

func TestRazas_Create_NombreDuplicado(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.Create(ctx, razas.CreateInput{Nombre: "Labrador"}, &f.especieID)
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, razas.CreateInput{Nombre: "Labrador"}, &f.especieID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Ya existe una raza con el nombre: Labrador")
}

func TestRazas_Update(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	rz, err := f.svc.Create(ctx, razas.CreateInput{Nombre: "Labrador"}, &f.especieID)
	require.NoError(t, err)

	// estado vacío conserva el almacenado; nombre se pisa siempre
	updated, err := f.svc.Update(ctx, rz.ID, razas.UpdateInput{Nombre: "Labrador Retriever"})
	require.NoError(t, err)
	require.Equal(t, "Labrador Retriever", updated.Nombre)
	require.Equal(t, razas.EstadoActiva, updated.Estado)

	updated, err = f.svc.Update(ctx, rz.ID, razas.UpdateInput{Nombre: "Labrador Retriever", Estado: razas.EstadoInactiva})
	require.NoError(t, err)
	require.Equal(t, razas.EstadoInactiva, updated.Estado)
}

func TestRazas_Update_NombreTomado(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.Create(ctx, razas.CreateInput{Nombre: "Labrador"}, &f.especieID)
	require.NoError(t, err)
	pudu, err := f.svc.Create(ctx, razas.CreateInput{Nombre: "Pudú"}, &f.especieID)
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, pudu.ID, razas.UpdateInput{Nombre: "Labrador"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "El nombre 'Labrador' ya está registrado para otra raza.")
}

func TestRazas_Delete_ConMascotas(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	rz, err := f.svc.Create(ctx, razas.CreateInput{Nombre: "Labrador"}, &f.especieID)
	require.NoError(t, err)

	duenoRepo := memory.NewDuenoRepo(f.store)
	mascotaRepo := memory.NewMascotaRepo(f.store)
	d, err := duenoRepo.Create(ctx, duenos.Dueno{Rut: "12345678-9", Nombre: "María", Apellido: "Pérez"})
	require.NoError(t, err)
	m, err := mascotaRepo.Create(ctx, mascotas.Mascota{
		Nombre:          "Firulais",
		FechaNacimiento: time.Date(2020, 5, 10, 0, 0, 0, 0, time.UTC),
		Chip:            "CHIP-001",
		Genero:          "Macho",
		DuenoID:         d.ID,
		RazaID:          rz.ID,
	})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, rz.ID)
	require.Error(t, err)
	require.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
	require.Contains(t, err.Error(), "tiene mascotas asociadas")

	require.NoError(t, mascotaRepo.Delete(ctx, m.ID))
	require.NoError(t, f.svc.Delete(ctx, rz.ID))
}
