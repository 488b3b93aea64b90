package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Samirun-Shuvo/inventory-ewmgl/config"
	"github.com/Samirun-Shuvo/inventory-ewmgl/database"
	"github.com/Samirun-Shuvo/inventory-ewmgl/handlers"
	"github.com/Samirun-Shuvo/inventory-ewmgl/logger"
	"github.com/Samirun-Shuvo/inventory-ewmgl/middleware"
	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/routes"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store/memstore"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store/mongostore"
	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
	"github.com/Samirun-Shuvo/inventory-ewmgl/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	config.LoadConfig()

	if err := logger.Init(os.Getenv("DEBUG") != ""); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var (
		st     store.Store
		client *mongo.Client
	)
	switch config.StoreDriver {
	case config.StoreDriverMemory:
		st = memstore.New()
		logger.Log.Infow("using in-memory store")
	default:
		var err error
		client, err = database.Connect(ctx, config.MongoURI)
		if err != nil {
			logger.Log.Fatalw("mongo connect failed", "error", err)
		}
		ms := mongostore.New(client, config.MongoDB)
		if err := ms.EnsureIndexes(ctx); err != nil {
			logger.Log.Fatalw("ensure indexes failed", "error", err)
		}
		st = ms
	}

	if err := seedAdmin(ctx, st); err != nil {
		logger.Log.Fatalw("admin seed failed", "error", err)
	}

	hub := ws.NewHub()
	handler := handlers.New(st, hub, logger.Log)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, handler, hub)

	router.Use(middleware.Logging)
	router.Use(middleware.Recovery)
	router.Use(middleware.CORS)

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Infow("server listening", "port", config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("server shutdown", "error", err)
	}
	database.Disconnect(client)
}

// seedAdmin creates the first operator account when the authusers collection
// is empty and ADMIN_EMAIL/ADMIN_PASSWORD are configured.
func seedAdmin(ctx context.Context, st store.Store) error {
	if config.AdminEmail == "" || config.AdminPassword == "" {
		return nil
	}
	count, err := st.AuthUsers().Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(config.AdminPassword)
	if err != nil {
		return err
	}
	_, err = st.AuthUsers().Insert(ctx, models.AuthUser{
		Name:         "Administrator",
		Email:        config.AdminEmail,
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	logger.Log.Infow("seeded admin user", "email", config.AdminEmail)
	return nil
}
