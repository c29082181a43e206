package cli

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"quizo/internal/config"
	"quizo/internal/highscore"
	"quizo/internal/infra/localdir"
	"quizo/internal/logging"
	"quizo/internal/opentdb"
	"quizo/internal/profile"
)

// app bundles the wired collaborators shared by the subcommands.
type app struct {
	cfg        config.Config
	logger     *zap.Logger
	client     *opentdb.Client
	categories *opentdb.CategoryCache
	scores     highscore.Store
	profile    *profile.Manager
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	stateDir := cfg.StateDir
	if stateDir == "" {
		stateDir = localdir.DefaultDir()
	}
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = filepath.Join(stateDir, "quizo.log")
	}
	logger := logging.New(logFile, cfg.Log.Level)

	store := localdir.New(stateDir)
	client := opentdb.NewClient(cfg.Endpoint, cfg.CategoriesEndpoint, nil, nil, logger)
	ttl := config.TTLDuration(cfg.CategoryCacheTTL, 10*time.Minute)

	return &app{
		cfg:        cfg,
		logger:     logger,
		client:     client,
		categories: opentdb.NewCategoryCache(client, ttl),
		scores:     highscore.NewLocalStore(store, logger),
		profile:    profile.NewManager(store, logger),
	}, nil
}
