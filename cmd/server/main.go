package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"

	"swimtrack/training-tracker/internal/api"
	"swimtrack/training-tracker/internal/config"
	"swimtrack/training-tracker/internal/importer"
	"swimtrack/training-tracker/internal/repository"
	"swimtrack/training-tracker/internal/repository/localmirror"
	mongorepo "swimtrack/training-tracker/internal/repository/mongo"
	"swimtrack/training-tracker/internal/repository/selector"
	"swimtrack/training-tracker/internal/service"
	"swimtrack/training-tracker/internal/storage"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.WithField("component", "server")
	log.Info("starting training tracker server")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	// Local mirror always comes up; the remote backend is optional and the
	// app degrades to local-only mode when it is absent or unreachable.
	store, err := localmirror.NewStore(cfg.Mirror.Dir)
	if err != nil {
		log.Fatalf("could not open local mirror at %q: %s", cfg.Mirror.Dir, err)
	}
	localProvider := localmirror.NewProvider(store)

	var remoteProvider repository.Provider
	remoteConfigured := cfg.Remote.Configured()
	if remoteConfigured {
		dbClient, err := mongorepo.ConnectDB(cfg.Remote.URI)
		if err != nil {
			log.Warnf("remote backend unreachable, running local-only: %s", err)
			remoteConfigured = false
		} else {
			defer func() {
				if err := mongorepo.DisconnectDB(dbClient); err != nil {
					log.Errorf("disconnect remote backend: %s", err)
				}
			}()
			remoteProvider = mongorepo.NewProvider(dbClient.Database(cfg.Remote.Database))
			log.Info("remote backend connected")
		}
	} else {
		log.Info("no remote backend configured, running local-only")
	}

	sel := selector.New(remoteProvider, localProvider, remoteConfigured, nil)
	errLog := service.NewErrorLog()

	var fileStorage storage.FileStorage
	if cfg.S3.Configured() {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("could not initialize file storage: %s", err)
		}
	} else {
		log.Info("no illustration bucket configured")
	}

	recordsService := service.NewRecordsService(sel, errLog)
	notificationService := service.NewNotificationService(sel, errLog)

	var importClient *importer.Client
	if cfg.Importer.BaseURL != "" {
		importClient = importer.New(cfg.Importer.BaseURL, cfg.Importer.Timeout, sel, recordsService)
	}

	svcs := api.Services{
		Auth:         service.NewAuthService(sel, errLog, cfg.JWT.Secret, cfg.JWT.Expiration),
		Sessions:     service.NewSessionService(sel, errLog),
		Exercises:    service.NewExerciseService(sel, fileStorage, errLog),
		Strength:     service.NewStrengthService(sel, errLog),
		Catalog:      service.NewCatalogService(sel, errLog),
		Assignments:  service.NewAssignmentService(sel, errLog),
		Notification: notificationService,
		Records:      recordsService,
		Timesheet:    service.NewTimesheetService(sel, errLog),
		Importer:     importClient,
		Selector:     sel,
	}

	// birthday wishes go out every morning at 08:00
	scheduler := cron.New()
	if err := scheduler.AddFunc("0 0 8 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		sent, err := notificationService.SendBirthdayWishes(ctx, time.Now())
		if err != nil {
			log.Errorf("birthday job: %s", err)
			return
		}
		if sent > 0 {
			log.Infof("birthday job sent %d wishes", sent)
		}
	}); err != nil {
		log.Fatalf("could not schedule birthday job: %s", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, svcs)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("forced shutdown: %s", err)
	}
	log.Info("server exited")
}
