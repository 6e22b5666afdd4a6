package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	mem "microvetcare/internal/adapters/storage/memory"
	pg "microvetcare/internal/adapters/storage/postgres"
	"microvetcare/internal/domain/duenos"
	"microvetcare/internal/domain/especies"
	"microvetcare/internal/domain/mascotas"
	"microvetcare/internal/domain/razas"
	"microvetcare/internal/middleware"
	"microvetcare/internal/platform/logger"
	"microvetcare/internal/platform/metrics"
	"microvetcare/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log logger.Logger

	// Orígenes permitidos para CORS; vacío usa el front local.
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:4200"}
	}

	m := metrics.New()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	r.Use(middleware.RequestLog(log, m))
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	var (
		especieRepo especies.Repository
		razaRepo    razas.Repository
		duenoRepo   duenos.Repository
		mascotaRepo mascotas.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("no se pudo abrir Postgres, usando memoria", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		if err := pg.ApplyMigrations(context.Background(), db); err != nil {
			log.Error("aplicar migraciones", map[string]any{"error": err.Error()})
		}
		especieRepo = pg.NewEspecieRepo(db)
		razaRepo = pg.NewRazaRepo(db)
		duenoRepo = pg.NewDuenoRepo(db)
		mascotaRepo = pg.NewMascotaRepo(db)
	} else {
		store := mem.NewStore()
		especieRepo = mem.NewEspecieRepo(store)
		razaRepo = mem.NewRazaRepo(store)
		duenoRepo = mem.NewDuenoRepo(store)
		mascotaRepo = mem.NewMascotaRepo(store)
	}

	// Services por módulo
	especiesSvc := especies.NewService(especieRepo)
	razasSvc := razas.NewService(razaRepo, especieRepo)
	duenosSvc := duenos.NewService(duenoRepo)
	mascotasSvc := mascotas.NewService(mascotaRepo, duenoRepo, razaRepo)

	// Rutas por módulo
	especies.RegisterRoutes(r, especiesSvc)
	razas.RegisterRoutes(r, razasSvc)
	duenos.RegisterRoutes(r, duenosSvc)
	mascotas.RegisterRoutes(r, mascotasSvc)

	return r
}
