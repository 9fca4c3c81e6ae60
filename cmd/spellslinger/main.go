// Package main is the entry point for the Spellslinger rune capture tool.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"spellslinger-go/application/capture"
	appledger "spellslinger-go/application/ledger"
	"spellslinger-go/core/eventbus"
	domainlabel "spellslinger-go/domain/label"
	domainledger "spellslinger-go/domain/ledger"
	"spellslinger-go/infrastructure/classifier"
	"spellslinger-go/infrastructure/config"
	"spellslinger-go/infrastructure/dataset"
	"spellslinger-go/infrastructure/logging"
	"spellslinger-go/infrastructure/repository"
	"spellslinger-go/presentation"
	"spellslinger-go/resources"

	"fyne.io/fyne/v2/app"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("Failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	runID := uuid.NewString()

	// Initialize logging (dev: console only, prod: rotating file)
	logCfg := cfg.LoggingConfig()
	logCfg.RunID = runID
	logger, closeLog, err := logging.Setup(logCfg)
	if err != nil {
		// Fallback to stderr if logging setup fails
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("Starting Spellslinger")

	ctx := context.Background()

	// Load labels
	labelRegistry := domainlabel.NewRegistry()
	if err := loadLabels(labelRegistry, cfg.Labels.File); err != nil {
		logger.Error("Failed to load labels", "error", err)
		os.Exit(1)
	}
	logger.Info("Labels loaded", "count", labelRegistry.Count())

	// Initialize stores
	store := dataset.NewStore(cfg.Dataset.Dir, logger)
	logger.Info("Dataset store ready", "root", store.Root())
	classifierClient := classifier.Open(cfg.ClassifierConfig(), logger)

	var ledgerRepo domainledger.Repository = domainledger.NopRepository{}
	if cfg.Ledger.Enabled {
		mongoDB, err := repository.NewMongoDB(ctx, cfg.MongoDBConfig(), logger)
		if err != nil {
			// The ledger is optional; the dataset directories stay authoritative.
			logger.Warn("Contribution ledger disabled", "error", err)
		} else {
			defer mongoDB.Close(ctx)
			if err := mongoDB.EnsureIndexes(ctx); err != nil {
				logger.Warn("Ledger indexes not created", "error", err)
			}
			ledgerRepo = repository.NewMongoLedgerRepository(mongoDB, logger)
		}
	}

	// Initialize event bus
	eventBus := eventbus.New(100, logger)

	// Initialize capture session
	session := capture.New(&capture.Config{
		RunID:      runID,
		Labels:     labelRegistry,
		Samples:    store,
		Classifier: classifierClient,
		Stroke:     cfg.StrokeConfig(),
		EventBus:   eventBus,
		Logger:     logger,
	})

	recorder := appledger.NewRecorder(&appledger.RecorderConfig{
		Repository: ledgerRepo,
		RunID:      session.RunID(),
		Logger:     logger,
	})
	recorder.Start(eventBus)
	defer func() {
		// Deliver queued events before the recorder drains its own queue.
		eventBus.Close()
		recorder.Stop()
	}()

	// Initialize UI event bridge
	bridge := presentation.NewUIEventBridge(&presentation.BridgeConfig{
		Session:  session,
		Labels:   labelRegistry,
		EventBus: eventBus,
		Logger:   logger,
	})
	defer bridge.Close()

	// Initialize Fyne app
	fyneApp := app.New()
	fyneApp.SetIcon(resources.GetAppIcon())

	mainWindow := presentation.NewMainWindow(&presentation.MainWindowConfig{
		App:         fyneApp,
		Bridge:      bridge,
		Logger:      logger,
		CanvasSize:  cfg.Canvas.Size,
		PreviewSize: cfg.Canvas.PreviewSize,
	})
	defer mainWindow.Cleanup()

	// Show and run
	mainWindow.Show()
	fyneApp.Run()

	// Start shutdown timeout - deferred cleanup (ledger drain, MongoDB
	// disconnect) runs after this point; force exit if it hangs
	go func() {
		time.Sleep(10 * time.Second)
		logger.Warn("Shutdown timeout, forcing exit")
		os.Exit(0)
	}()

	logger.Info("Application shutdown complete")
}

// loadLabels reads the label enumeration from file, or from the embedded
// defaults when file is empty.
func loadLabels(registry *domainlabel.Registry, file string) error {
	loader := domainlabel.NewLoader(registry)
	if file == "" {
		return loader.LoadFromFS(resources.LabelFiles, resources.LabelsDir)
	}
	return loader.LoadFile(os.DirFS(filepath.Dir(file)), filepath.Base(file))
}
