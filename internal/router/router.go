package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	mem "pet-care-hub/internal/adapters/storage/memory"
	pg "pet-care-hub/internal/adapters/storage/postgres"
	"pet-care-hub/internal/domain/addresses"
	"pet-care-hub/internal/domain/appointments"
	"pet-care-hub/internal/domain/cart"
	"pet-care-hub/internal/domain/clinics"
	"pet-care-hub/internal/domain/concierge"
	"pet-care-hub/internal/domain/notices"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/prescriptions"
	"pet-care-hub/internal/domain/shop"
	"pet-care-hub/internal/domain/views"
	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/logger"
	"pet-care-hub/internal/ports/assistant"
	"pet-care-hub/internal/seed"
)

type Options struct {
	// Assistant es el backend del concierge. Puede ser nil: el módulo queda
	// registrado igual y la sesión responde que el servicio no está configurado.
	Assistant assistant.ChatService

	// Opcional: si viene, las citas van a Postgres. Si no, in-memory.
	// El catálogo (pets, clinics, shop, prescriptions) es seed y siempre
	// vive in-memory.
	DB *sql.DB

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Repos
	petRepo := mem.NewPetsRepo()
	clinicRepo := mem.NewClinicsRepo()
	shopRepo := mem.NewShopRepo()
	rxRepo := mem.NewPrescriptionsRepo()
	addrRepo := mem.NewAddressesRepo()
	cartRepo := mem.NewCartRepo()

	var apptRepo appointments.Repository

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		apptRepo = pg.NewAppointmentsRepo(db)
	} else {
		apptRepo = mem.NewAppointmentsRepo()
	}

	ctx := context.Background()
	_ = seed.Apply(ctx, seed.Stores{
		Pets:          petRepo,
		Clinics:       clinicRepo,
		Appointments:  apptRepo,
		Prescriptions: rxRepo,
		Shop:          shopRepo,
		Addresses:     addrRepo,
	})

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	clinicsSvc := clinics.NewService(clinicRepo)
	shopSvc := shop.NewService(shopRepo)
	rxSvc := prescriptions.NewService(rxRepo)
	apptSvc := appointments.NewService(apptRepo, clinicsSvc, petsSvc)
	cartSvc := cart.NewService(cartRepo, shopSvc)
	addrSvc := addresses.NewService(addrRepo)
	noticesSvc := notices.NewService()
	viewsSvc := views.NewService(apptSvc)
	conciergeSvc := concierge.NewService(opts.Assistant)

	_ = addrSvc.Select(ctx, seed.DefaultAddressID)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	clinics.RegisterRoutes(r, clinicsSvc)
	shop.RegisterRoutes(r, shopSvc)
	prescriptions.RegisterRoutes(r, rxSvc)
	appointments.RegisterRoutes(r, apptSvc, clinicsSvc, noticesSvc)
	cart.RegisterRoutes(r, cartSvc, shopSvc, noticesSvc)
	addresses.RegisterRoutes(r, addrSvc)
	concierge.RegisterRoutes(r, conciergeSvc)
	views.RegisterRoutes(r, viewsSvc)
	notices.RegisterRoutes(r, noticesSvc)

	return r
}
