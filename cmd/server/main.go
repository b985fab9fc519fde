package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canonforces/internal/api"
	"canonforces/internal/app/service"
	"canonforces/internal/app/worker"
	"canonforces/internal/codeforces"
	"canonforces/internal/common/security"
	"canonforces/internal/domain/repository"
	"canonforces/internal/identity"
	"canonforces/internal/leetcode"
	"canonforces/internal/platform/cache"
	"canonforces/internal/platform/config"
	"canonforces/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Document Store
	database.Connect()
	defer database.Close()
	fmt.Println("Document store connected.")

	// 4. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories & Clients
	userRepo := repository.NewMongoUserRecordRepository(database.DB)
	cacheStore := cache.NewStore(cache.RDB)
	cfClient := codeforces.New(config.AppConfig.CodeforcesAPIURL)
	lcClient := leetcode.New(config.AppConfig.LeetcodeAPIURL)

	var provider identity.Provider
	switch config.AppConfig.IdentityBackend {
	case "google":
		provider = identity.NewGoogleProvider(
			config.AppConfig.IdentityEndpoint,
			config.AppConfig.TokenEndpoint,
			config.AppConfig.IdentityAPIKey,
		)
	default:
		log.Println("Using in-memory identity backend; accounts do not survive restarts")
		provider = identity.NewLocalProvider()
	}

	// 6. Initialize Services
	registryService := service.NewRegistryService(cfClient, userRepo, cacheStore, config.AppConfig.RegistryCacheTTL)
	signupService := service.NewSignupService(provider, userRepo, registryService)
	contestService := service.NewContestService(
		[]service.ContestSource{cfClient, lcClient},
		cacheStore,
		config.AppConfig.ContestCacheTTL,
	)

	// 7. Initialize Refresh Worker (as a goroutine)
	refreshWorker := worker.NewRefreshWorker(contestService, config.AppConfig.ContestRefreshInterval)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go refreshWorker.Start(workerCtx)
	fmt.Println("Contest refresh worker started.")

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(signupService, contestService, userRepo)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")
	workerCancel() // Signal worker to stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server and worker stopped gracefully.")
}
