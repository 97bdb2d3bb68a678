// Package app opens the storage backends selected by configuration and
// assembles the services shared by the server and the admin CLI.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
	"github.com/99minutos/storefront-system/internal/core/service"
	"github.com/99minutos/storefront-system/internal/infrastructure/db/jsonfile"
	mongostore "github.com/99minutos/storefront-system/internal/infrastructure/db/mongo"
	redisstore "github.com/99minutos/storefront-system/internal/infrastructure/db/redis"
	"github.com/99minutos/storefront-system/internal/infrastructure/http/handlers"
	"github.com/99minutos/storefront-system/internal/infrastructure/records"
	"github.com/99minutos/storefront-system/internal/infrastructure/session"
	"github.com/99minutos/storefront-system/internal/pkg/config"
	"github.com/99minutos/storefront-system/internal/pkg/validation"
	"github.com/99minutos/storefront-system/pkg/logger"
)

const disconnectTimeout = 10 * time.Second

// Storage is an opened record backend and the typed collections on top of it.
type Storage struct {
	Backend ports.RecordBackend
	Health  handlers.Dependency

	Users    *records.Collection[domain.User]
	Products *records.Collection[domain.Product]
	Orders   *records.Collection[domain.Order]

	close func()
}

// Close releases the backend connection.
func (s *Storage) Close() { s.close() }

// OpenStorage opens the record backend named by cfg.Store.Backend.
func OpenStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Storage, error) {
	s := &Storage{close: func() {}}

	switch cfg.Store.Backend {
	case config.StoreBackendMongo:
		client, db, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

		store := mongostore.NewRecordStore(db)
		s.Backend = store
		s.Health = handlers.Dependency{Name: "mongodb", Pinger: store}
		s.close = func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				log.Warn().Err(err).Msg("mongodb disconnect failed")
			}
		}

	default:
		store := jsonfile.NewStore(cfg.Store.DataDir)
		log.Info().Str("dir", cfg.Store.DataDir).Msg("using json file store")
		s.Backend = store
		s.Health = handlers.Dependency{Name: "records", Pinger: store}
	}

	validate := validation.New()
	storeLog := logger.Component(log, "records")
	s.Users = records.NewCollection[domain.User](records.Users, s.Backend, validate, storeLog)
	s.Products = records.NewCollection[domain.Product](records.Products, s.Backend, validate, storeLog)
	s.Orders = records.NewCollection[domain.Order](records.Orders, s.Backend, validate, storeLog)
	return s, nil
}

// Sessions is an opened session store.
type Sessions struct {
	Store  ports.SessionStore
	Health handlers.Dependency

	close func()
}

// Close releases the session store connection.
func (s *Sessions) Close() { s.close() }

// OpenSessions opens the session store named by cfg.Session.Backend.
func OpenSessions(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Sessions, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := redisstore.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

		store := redisstore.NewSessionStore(client)
		return &Sessions{
			Store:  store,
			Health: handlers.Dependency{Name: "redis", Pinger: store},
			close: func() {
				if err := client.Close(); err != nil {
					log.Warn().Err(err).Msg("redis close failed")
				}
			},
		}, nil

	default:
		store := session.NewMemoryStore()
		return &Sessions{
			Store:  store,
			Health: handlers.Dependency{Name: "sessions", Pinger: store},
			close:  func() {},
		}, nil
	}
}

// Services are the domain services built on one Storage.
type Services struct {
	Auth     *service.AuthService
	Catalog  *service.CatalogService
	Checkout *service.CheckoutService
}

// NewServices wires the domain services onto storage.
func NewServices(storage *Storage, log zerolog.Logger) Services {
	return Services{
		Auth:     service.NewAuthService(storage.Users, logger.Component(log, "auth")),
		Catalog:  service.NewCatalogService(storage.Products, logger.Component(log, "catalog")),
		Checkout: service.NewCheckoutService(storage.Products, storage.Orders, logger.Component(log, "checkout")),
	}
}
