package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/quizdesk/internal/config"
	"github.com/ytget/quizdesk/internal/logging"
	"github.com/ytget/quizdesk/internal/store"
	"github.com/ytget/quizdesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.quizdesk"
)

var (
	dbPath   string
	seedFile string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "quizdesk",
	Short: "Manage quiz alternatives",
	Long: `Opens the quiz alternatives window.

The database path and log level default to the values stored in the
application preferences. A seed file is only applied to an empty database.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file")
	rootCmd.Flags().StringVar(&seedFile, "seed", "", "YAML file with initial questions")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	if logLevel == "" {
		logLevel = settings.GetLogLevel()
	}
	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("QuizDesk starting", zap.String("version", version))

	if dbPath == "" {
		dbPath = settings.GetDatabasePath()
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()
	logger.Info("Database opened", zap.String("path", db.Path()))

	ctx := context.Background()
	if seedFile != "" {
		seed, err := store.LoadSeed(seedFile)
		if err != nil {
			return err
		}
		applied, err := db.Apply(ctx, seed)
		if err != nil {
			return err
		}
		logger.Info("Seed processed", zap.String("file", seedFile), zap.Bool("applied", applied))
	}

	myWindow := myApp.NewWindow("QuizDesk")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(ctx, myWindow, settings, ui.Services{
		Alternatives: db.Alternatives(),
		Questions:    db.Questions(),
	}, logger)

	myWindow.ShowAndRun()
	return nil
}
