package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"hotpath-analytics/internal/aggregators"
	"hotpath-analytics/internal/events"
	"hotpath-analytics/internal/eventtime"
	internalhttp "hotpath-analytics/internal/http"
	"hotpath-analytics/internal/ingestors"
	"hotpath-analytics/internal/parsers"
	"hotpath-analytics/internal/rankers"
	"hotpath-analytics/internal/shared/configs"
	"hotpath-analytics/internal/shared/filestorages"
	"hotpath-analytics/internal/shared/loggers"
	"hotpath-analytics/internal/sinks"
	"hotpath-analytics/internal/sources"
	"hotpath-analytics/internal/stores"
	"hotpath-analytics/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	recordQueue    *streams.PartitionedQueue[events.AccessEvent]
	countQueue     *streams.PartitionedQueue[events.WindowCountEvent]
	recordProducer streams.AccessEventProducer
	recordConsumer streams.AccessEventConsumer
	countConsumer  streams.WindowCountConsumer
	fileSource     *sources.FileSource

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
	sourceCancel     context.CancelFunc
	sourceDone       chan struct{}
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "hotpath-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize event-time tracking and the two stream queues
	allowedLateness := time.Duration(config.Pipeline.AllowedLatenessSeconds) * time.Second
	assigner := eventtime.NewAssigner(allowedLateness)
	recordQueue := streams.NewPartitionedQueue[events.AccessEvent](config.Pipeline.Partitions, config.Pipeline.QueueBuffer)
	countQueue := streams.NewPartitionedQueue[events.WindowCountEvent](config.Pipeline.Partitions, config.Pipeline.QueueBuffer)

	// Initialize windowing stage
	windowLength := time.Duration(config.Pipeline.WindowLengthSeconds) * time.Second
	countProducer := streams.NewWindowCountProducer(countQueue)
	recordConsumer := streams.NewAccessEventConsumer(
		recordQueue,
		func(int) aggregators.WindowService { return aggregators.NewWindowService(windowLength) },
		countProducer,
		loggers.WithComponent(appLogger, "record_consumer"),
	)

	// Initialize ranking stage
	reportZone, err := time.LoadLocation(config.Pipeline.ReportTimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load report time zone %q: %w", config.Pipeline.ReportTimeZone, err)
	}
	renderer := rankers.NewReportRenderer(reportZone)
	reportStore := stores.NewReportStore(fileStorage, time.Duration(config.Reports.CacheTTLMinutes)*time.Minute)
	reportSinks := []rankers.ReportSink{
		sinks.NewConsoleSink(os.Stdout, renderer),
		sinks.NewArchiveSink(reportStore),
	}
	countConsumer := streams.NewWindowCountConsumer(
		countQueue,
		recordQueue.PartitionCount(),
		func(int) rankers.TopNSelector { return rankers.NewTopNSelector(config.Pipeline.TopSize, reportSinks) },
		loggers.WithComponent(appLogger, "count_consumer"),
	)

	// Initialize ingestionService
	parser, err := parsers.NewCombinedLogParser()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize access log parser: %w", err)
	}
	lineChunkStore := stores.NewLineChunkStore(fileStorage)
	recordProducer := streams.NewAccessEventProducer(recordQueue, assigner)
	ingestionService := ingestors.NewIngestionService(parser, lineChunkStore, recordProducer)

	// Initialize http router
	router := internalhttp.NewRouter(ingestionService, reportStore, renderer, assigner,
		loggers.WithComponent(appLogger, "http"))

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	// Optional file source alongside the HTTP ingest endpoint
	var fileSource *sources.FileSource
	if config.Source.File.Enabled {
		sourceID := config.Source.File.SourceID
		if sourceID == "" {
			sourceID = "file"
		}
		fileSource = sources.NewFileSource(
			config.Source.File.Path,
			sourceID,
			config.Source.File.Follow,
			ingestionService,
			recordProducer,
			loggers.WithComponent(appLogger, "file_source"),
		)
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		recordQueue:    recordQueue,
		countQueue:     countQueue,
		recordProducer: recordProducer,
		recordConsumer: recordConsumer,
		countConsumer:  countConsumer,
		fileSource:     fileSource,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting hotpath-analytics service on port %d (log_level=%s, file_storage_root_dir=%s, partitions=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.recordQueue.PartitionCount())

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.recordConsumer.Start(app.backgroundCtx)
	app.countConsumer.Start(app.backgroundCtx)

	// start optional file source
	if app.fileSource != nil {
		var sourceCtx context.Context
		sourceCtx, app.sourceCancel = context.WithCancel(context.Background())
		app.sourceDone = make(chan struct{})
		go func() {
			defer close(app.sourceDone)
			if err := app.fileSource.Run(sourceCtx); err != nil {
				app.appLogger.Error().Err(err).Msg("file source stopped with error")
			}
		}()
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server so no request can publish to the streams anymore
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop the file source for the same reason
	if app.sourceCancel != nil {
		app.sourceCancel()
	}
	if app.sourceDone != nil {
		<-app.sourceDone
		app.appLogger.Info().Msg("File source stopped")
	}

	// 3) Flush or discard whatever the streams still hold
	if app.config.Pipeline.DrainOnShutdown {
		app.drain(ctx)
	}

	// 4) Cancel and wait for background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.recordConsumer.Wait()
	app.countConsumer.Wait()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}

// drain seals the record stream and runs both consumers to completion, so
// every window still open reports before the process exits. No publisher may
// be active: the server and the file source are already stopped.
func (app *App) drain(ctx context.Context) {
	app.appLogger.Info().Msg("Draining pipeline...")

	app.recordProducer.Seal(ctx)
	app.recordQueue.Close()
	app.recordConsumer.Wait()

	app.countQueue.Close()
	app.countConsumer.Wait()

	app.appLogger.Info().Msg("Pipeline drained")
}
