package especies_test

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

func razaFixture(especieID int64) razas.Raza {
	return razas.Raza{Nombre: "Labrador", Estado: razas.EstadoActiva, EspecieID: especieID}
}

func duenoFixture() duenos.Dueno {
	return duenos.Dueno{Rut: "12345678-9", Nombre: "María", Apellido: "Pérez", Estado: true}
}

func mascotaFixture(duenoID, razaID int64) mascotas.Mascota {
	return mascotas.Mascota{
		Nombre:          "Firulais",
		FechaNacimiento: time.Date(2020, 5, 10, 0, 0, 0, 0, time.UTC),
		Estado:          1,
		Chip:            "CHIP-001",
		Genero:          "Macho",
		DuenoID:         duenoID,
		RazaID:          razaID,
	}
}

func newService() (*especies.Service, *memory.Store) {
	store := memory.NewStore()
	return especies.NewService(memory.NewEspecieRepo(store)), store
}

func TestEspecies_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	e, err := svc.Create(ctx, especies.CreateInput{
		NombreEspecie: "Canis familiaris",
		Nombre:        "Perro",
		Estado:        especies.EstadoActiva,
	})
	require.NoError(t, err)
	require.NotZero(t, e.ID)
	require.Equal(t, "Perro", e.Nombre)
}

func TestEspecies_Create_NombreDuplicado(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Create(ctx, especies.CreateInput{NombreEspecie: "Canis familiaris", Nombre: "Perro"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, especies.CreateInput{NombreEspecie: "Canis lupus", Nombre: "Perro"})
	require.Error(t, err)
	require.Equal(t, apierr.KindInvalid, apierr.KindOf(err))
	require.Contains(t, err.Error(), "Ya existe una especie con el nombre: Perro")
}

func TestEspecies_Create_IDNoNulo(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	id := int64(7)
	_, err := svc.Create(ctx, especies.CreateInput{
		ID:            &id,
		NombreEspecie: "Canis familiaris",
		Nombre:        "Perro",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "El ID debe ser nulo para una nueva especie.")
}

func TestEspecies_Update_Parcial(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	e, err := svc.Create(ctx, especies.CreateInput{
		NombreEspecie: "Canis familiaris",
		Nombre:        "Perro",
		Estado:        especies.EstadoActiva,
	})
	require.NoError(t, err)

	// solo estado: los nombres quedan intactos
	estado := especies.EstadoInactiva
	updated, err := svc.Update(ctx, e.ID, especies.UpdateInput{Estado: &estado})
	require.NoError(t, err)
	require.Equal(t, "Perro", updated.Nombre)
	require.Equal(t, "Canis familiaris", updated.NombreEspecie)
	require.Equal(t, especies.EstadoInactiva, updated.Estado)
}

func TestEspecies_Update_NombreTomado(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Create(ctx, especies.CreateInput{NombreEspecie: "Canis familiaris", Nombre: "Perro"})
	require.NoError(t, err)
	gato, err := svc.Create(ctx, especies.CreateInput{NombreEspecie: "Felis catus", Nombre: "Gato"})
	require.NoError(t, err)

	nombre := "Perro"
	_, err = svc.Update(ctx, gato.ID, especies.UpdateInput{Nombre: &nombre})
	require.Error(t, err)
	require.Contains(t, err.Error(), "El nombre 'Perro' ya está registrado para otra especie.")

	// re-enviar el propio nombre no cuenta como colisión
	propio := "Gato"
	_, err = svc.Update(ctx, gato.ID, especies.UpdateInput{Nombre: &propio})
	require.NoError(t, err)
}

func TestEspecies_Delete_CascadaYRestriccion(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := especies.NewService(memory.NewEspecieRepo(store))
	razaRepo := memory.NewRazaRepo(store)
	duenoRepo := memory.NewDuenoRepo(store)
	mascotaRepo := memory.NewMascotaRepo(store)

	e, err := svc.Create(ctx, especies.CreateInput{NombreEspecie: "Canis familiaris", Nombre: "Perro"})
	require.NoError(t, err)

	rz, err := razaRepo.Create(ctx, razaFixture(e.ID))
	require.NoError(t, err)
	d, err := duenoRepo.Create(ctx, duenoFixture())
	require.NoError(t, err)
	m, err := mascotaRepo.Create(ctx, mascotaFixture(d.ID, rz.ID))
	require.NoError(t, err)

	// con mascotas colgando de la raza, la especie no se puede borrar
	err = svc.Delete(ctx, e.ID)
	require.Error(t, err)
	require.Equal(t, apierr.KindInvalid, apierr.KindOf(err))

	require.NoError(t, mascotaRepo.Delete(ctx, m.ID))

	// sin mascotas, el borrado arrastra la raza
	require.NoError(t, svc.Delete(ctx, e.ID))
	_, err = razaRepo.GetByID(ctx, rz.ID)
	require.Error(t, err)
}

func TestEspecies_GetByID_NoExiste(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.GetByID(ctx, 42)
	require.Error(t, err)
	require.Equal(t, apierr.KindNotFound, apierr.KindOf(err))
	require.Contains(t, err.Error(), "Especie no encontrada con ID: 42")
}
