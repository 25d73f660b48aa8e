// Package main is the entry point for the CreditGo profile engine server.
//
// Startup order: configuration, logging, the app-state database and its
// repository, metrics, the profile service, background jobs, then the HTTP
// server. Shutdown runs in reverse.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creditgo/creditgo/internal/appstate"
	"github.com/creditgo/creditgo/internal/config"
	"github.com/creditgo/creditgo/internal/database"
	"github.com/creditgo/creditgo/internal/modules/profile"
	"github.com/creditgo/creditgo/internal/scheduler"
	"github.com/creditgo/creditgo/internal/server"
	"github.com/creditgo/creditgo/pkg/logger"
	"github.com/creditgo/creditgo/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("data_dir", cfg.DataDir).
		Str("namespace", cfg.StorageNamespace).
		Msg("Starting CreditGo")

	appStateDB, err := database.New(database.Config{
		Path:    cfg.DatabasePath(),
		Profile: database.ProfileStandard,
		Name:    database.NameAppState,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open app state database")
	}
	defer appStateDB.Close()

	if err := appStateDB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate app state database")
	}

	collector := metrics.NewCollector()
	repo := appstate.NewRepository(appStateDB.Conn(), cfg.StorageNamespace, log)

	builder := profile.NewBuilder(nil)
	profileService := profile.NewService(repo, builder, collector, profile.ServiceConfig{
		StateTTL:     cfg.StateTTL,
		DemoStateTTL: appstate.DemoStateTTL,
	}, log)

	sched := scheduler.New(log)

	cleanupJob := appstate.NewCleanupJob(repo, log)
	cleanupJob.SetRecorder(collector)
	if err := sched.AddJob(cfg.CleanupSchedule, cleanupJob); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.CleanupSchedule).Msg("Failed to schedule cleanup job")
	}

	// Hourly, on the half hour so it never overlaps the nightly cleanup
	if err := sched.AddJob("0 30 * * * *", scheduler.NewWALCheckpointJob(appStateDB, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule WAL checkpoint job")
	}

	// Purge anything that expired while the server was down
	if err := sched.RunNow(cleanupJob); err != nil {
		log.Warn().Err(err).Msg("Initial cleanup failed")
	}

	sched.Start()

	srv := server.New(server.Config{
		Log:            log,
		AppStateDB:     appStateDB,
		Metrics:        collector,
		ProfileService: profileService,
		Builder:        builder,
		Jobs:           sched,
		Port:           cfg.Port,
		DevMode:        cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	sched.Stop()

	if err := appStateDB.WALCheckpoint("TRUNCATE"); err != nil {
		log.Warn().Err(err).Msg("Final WAL checkpoint failed")
	}

	log.Info().Msg("Server stopped")
}
