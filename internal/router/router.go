package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "petcare-marketplace/internal/adapters/storage/memory"
	pg "petcare-marketplace/internal/adapters/storage/postgres"
	"petcare-marketplace/internal/domain/bookings"
	"petcare-marketplace/internal/domain/caregivers"
	"petcare-marketplace/internal/domain/expiry"
	"petcare-marketplace/internal/domain/healthrecords"
	"petcare-marketplace/internal/domain/pets"
	"petcare-marketplace/internal/domain/reviews"
	"petcare-marketplace/internal/domain/users"
	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/logger"
	"petcare-marketplace/internal/platform/metrics"
	"petcare-marketplace/internal/ports/auth"

	_ "petcare-marketplace/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // nil => /login responde 409

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// Registry donde se registran las métricas y que expone /metrics.
	// nil => uno nuevo por App (evita registros duplicados en tests).
	Registry *prometheus.Registry

	SweepInterval time.Duration
}

// App es el router ya armado más el reconciliador que comparte sus repos.
type App struct {
	Handler    http.Handler
	Reconciler *expiry.Reconciler
}

func NewRouter(opts Options) http.Handler {
	return NewApp(opts).Handler
}

func NewApp(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	repos := newRepos(opts.DB)

	// Services por módulo
	usersSvc := users.NewService(repos.users, opts.TokenIssuer)
	petsSvc := pets.NewService(repos.pets, usersSvc, repos.ownerTx, m)
	caregiversSvc := caregivers.NewService(repos.caregivers)
	bookingsSvc := bookings.NewService(repos.bookings, caregiversSvc, petsSvc, m)
	reviewsSvc := reviews.NewService(repos.reviews, caregiversSvc)
	healthSvc := healthrecords.NewService(repos.healthRecords, petsSvc)

	rec := expiry.NewReconciler(repos.caregivers, repos.bookings, log.With(map[string]any{"component": "expiry"}), m, opts.SweepInterval)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc)
	healthrecords.RegisterRoutes(r, healthSvc)
	caregivers.RegisterRoutes(r, caregiversSvc)
	reviews.RegisterRoutes(r, reviewsSvc)
	bookings.RegisterRoutes(r, bookingsSvc)
	expiry.RegisterRoutes(r, rec)

	return &App{Handler: r, Reconciler: rec}
}

type repoSet struct {
	users         users.Repository
	pets          pets.Repository
	ownerTx       pets.OwnerTx
	caregivers    caregivers.Repository
	bookings      bookings.Repository
	reviews       reviews.Repository
	healthRecords healthrecords.Repository
}

func newRepos(db *sql.DB) repoSet {
	if db != nil {
		s := pg.NewStore(db)
		return repoSet{
			users:         s.Users,
			pets:          s.Pets,
			ownerTx:       s.OwnerTx,
			caregivers:    s.Caregivers,
			bookings:      s.Bookings,
			reviews:       s.Reviews,
			healthRecords: s.HealthRecords,
		}
	}

	// Repos in-memory
	s := mem.NewStore()
	return repoSet{
		users:         s.Users,
		pets:          s.Pets,
		ownerTx:       s.OwnerTx,
		caregivers:    s.Caregivers,
		bookings:      s.Bookings,
		reviews:       s.Reviews,
		healthRecords: s.HealthRecords,
	}
}
