package main

import (
	"ClinicDesk/config"
	"ClinicDesk/database"
	"ClinicDesk/logger"
	"ClinicDesk/routes"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").WithError(err).Fatal("failed to load configuration")
	}

	log := logger.New(cfg.LogLevel)
	startup := log.WithComponent("main")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.InitDB(ctx, cfg.DBURL, cfg.IsDevelopment())
	if err != nil {
		startup.WithError(err).Fatal("failed to initialize database")
	}
	startup.Info("Database initialized successfully")

	redisClient, err := database.NewRedisClient(ctx, database.LoadRedisConfig(cfg.RedisAddress, startup))
	if err != nil {
		startup.WithError(err).Fatal("failed to initialize Redis client")
	}
	database.LogPoolStats(redisClient, startup)

	svc, err := routes.NewServices(ctx, cfg, log, db, redisClient)
	cancel()
	if err != nil {
		startup.WithError(err).Fatal("failed to initialize services")
	}

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        routes.SetupRoutes(cfg, log, svc),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		startup.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			startup.WithError(err).Fatal("listenAndServe failed")
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	startup.Info("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		startup.WithError(err).Error("server shutdown failed")
	}

	wg.Wait()
	svc.Appointments.Wait()

	if err := redisClient.Close(); err != nil {
		startup.WithError(err).Warn("failed to close Redis client")
	}
	if err := database.Close(db); err != nil {
		startup.WithError(err).Warn("failed to close database")
	}
	startup.Info("Server exited gracefully")
}
