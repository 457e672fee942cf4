// Command predictive-disease-detection serves the disease prediction web app.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"predictive-disease-detection/internal/account"
	"predictive-disease-detection/internal/config"
	"predictive-disease-detection/internal/database"
	"predictive-disease-detection/internal/feedback"
	"predictive-disease-detection/internal/portal"
	"predictive-disease-detection/internal/predict"
	"predictive-disease-detection/internal/session"
	"predictive-disease-detection/internal/web"
)

func main() {
	log.SetPrefix("[WEB] ")
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	creds, err := account.CredentialsFor(cfg.PasswordScheme, cfg.BcryptCost)
	if err != nil {
		return err
	}
	if cfg.PasswordScheme == "plaintext" {
		log.Println("warning: passwords are stored in plaintext; set PDD_PASSWORD_SCHEME=bcrypt")
	}

	accounts, notes, closeStore, err := openStores(ctx, cfg, creds)
	if err != nil {
		return err
	}
	defer closeStore()

	models, err := loadModels(cfg)
	if err != nil {
		return err
	}

	codec, err := session.NewCookieCodec(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)
	if err != nil {
		return err
	}
	sessions := session.NewManager(session.NewRegistry(cfg.SessionTTL), codec)
	p := portal.New(accounts, predict.NewService(models), notes)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: web.NewServer(p, sessions).RegisterRoutes(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Println("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStores picks the account and feedback backends. Both durable backends
// share one database handle.
func openStores(ctx context.Context, cfg config.Config, creds account.Credentials) (account.Store, feedback.Store, func(), error) {
	var (
		db  *database.DB
		err error
	)
	switch cfg.AccountBackend {
	case config.BackendMemory:
		log.Println("using in-memory accounts; they are lost on restart")
		return account.NewMemoryStore(creds), feedback.NewMemoryStore(), func() {}, nil
	case config.BackendSQLite:
		db, err = database.OpenSQLite(ctx, cfg.SQLitePath)
	case config.BackendPostgres:
		db, err = database.OpenPostgres(ctx, cfg.DatabaseURI)
	default:
		err = fmt.Errorf("unknown account backend %q", cfg.AccountBackend)
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connection to database failed: %w", err)
	}
	log.Printf("using %s accounts", db.Dialect())
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Printf("close database: %v", err)
		}
	}
	return account.NewSQLStore(db, creds), feedback.NewSQLStore(db), closeDB, nil
}

func loadModels(cfg config.Config) (map[predict.Kind]predict.Model, error) {
	if cfg.ModelURL != "" {
		log.Printf("using model service at %s", cfg.ModelURL)
		return predict.NewRemoteModels(cfg.ModelURL, cfg.ModelTimeout), nil
	}
	models, err := predict.LoadModelDir(cfg.ModelDir)
	if err != nil {
		return nil, fmt.Errorf("load models: %w", err)
	}
	log.Printf("loaded %d models from %s", len(models), cfg.ModelDir)
	return models, nil
}
