package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpin "github.com/byturco/ambulatory/internal/adapters/in/http"
	"github.com/byturco/ambulatory/internal/adapters/in/rabbitmq"
	"github.com/byturco/ambulatory/internal/adapters/out/cache"
	"github.com/byturco/ambulatory/internal/adapters/out/logger"
	"github.com/byturco/ambulatory/internal/adapters/out/postgres"
	"github.com/byturco/ambulatory/internal/config"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/byturco/ambulatory/internal/core/services"
)

func main() {
	// .env is optional, real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg, mainLogger)
	if err != nil {
		log.Error("app.postgres.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer pool.Close()

	scheduleStore := postgres.NewScheduleStore(pool, mainLogger)
	doctorStore := postgres.NewDoctorStore(pool, mainLogger)
	bookingStore := postgres.NewBookingStore(pool, mainLogger)
	facilityStore := postgres.NewHealthFacilityStore(pool, mainLogger)
	specializationStore := postgres.NewSpecializationStore(pool, mainLogger)
	invitationStore := postgres.NewInvitationStore(pool, mainLogger)

	var cachePort out.CachePort
	if cfg.Cache.Enabled {
		cacheAdapter, err := cache.NewSlotsCacheAdapter(cfg, mainLogger)
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cachePort = cacheAdapter
	}

	availabilityService := services.NewAvailabilityService(scheduleStore, doctorStore, cachePort, cfg, mainLogger)
	scheduleService := services.NewScheduleService(scheduleStore, doctorStore, cachePort, mainLogger)
	bookingService := services.NewBookingService(scheduleStore, bookingStore, availabilityService, mainLogger)
	registryService := services.NewRegistryService(doctorStore, facilityStore, specializationStore, cachePort, mainLogger)
	invitationService := services.NewInvitationService(invitationStore, mainLogger)

	router := httpin.NewRouter(cfg,
		httpin.NewBookingController(availabilityService, bookingService),
		httpin.NewScheduleController(scheduleService),
		httpin.NewRegistryController(registryService),
		httpin.NewInvitationController(invitationService),
	)

	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewCacheInvalidationListener(availabilityService, cfg, mainLogger)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
