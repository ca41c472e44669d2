package router

import (
	"database/sql"
	"net/http"

	mem "petcare-api/internal/adapters/storage/memory"
	"petcare-api/internal/adapters/storage/sqlstore"
	_ "petcare-api/internal/docs"
	"petcare-api/internal/domain/clients"
	"petcare-api/internal/domain/contracts"
	"petcare-api/internal/domain/pets"
	"petcare-api/internal/domain/services"
	"petcare-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa SQL con Dialect. Si no, in-memory.
	DB      *sql.DB
	Dialect sqlstore.Dialect

	// nil = sin logs.
	Logger *zerolog.Logger

	// Vacío = "*".
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log)...)
	r.Use(middleware.Recover)
	r.Use(chimw.StripSlashes)
	r.Use(cors.Handler(corsOptions(opts.AllowedOrigins)))

	r.Get("/health", healthHandler(opts.DB))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		clientRepo   clients.Repository
		petRepo      pets.Repository
		serviceRepo  services.Repository
		contractRepo contracts.Repository
	)

	if opts.DB != nil {
		clientRepo = sqlstore.NewClientsRepo(opts.DB, opts.Dialect)
		petRepo = sqlstore.NewPetsRepo(opts.DB, opts.Dialect)
		serviceRepo = sqlstore.NewServicesRepo(opts.DB, opts.Dialect)
		contractRepo = sqlstore.NewContractsRepo(opts.DB, opts.Dialect)
	} else {
		clientRepo = mem.NewClientRepo()
		petRepo = mem.NewPetRepo()
		serviceRepo = mem.NewServiceRepo()
		contractRepo = mem.NewContractRepo()
	}

	// Rutas por módulo
	clients.RegisterRoutes(r, clients.NewService(clientRepo))
	pets.RegisterRoutes(r, pets.NewService(petRepo))
	services.RegisterRoutes(r, services.NewCatalog(serviceRepo))
	contracts.RegisterRoutes(r, contracts.NewService(contractRepo))

	// Al final, para que el sitemap vea todas las rutas.
	r.Get("/", sitemapHandler(r))

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				http.Error(w, "db unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
