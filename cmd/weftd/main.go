package main

import (
	"context"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"weft/internal/appearance"
	"weft/internal/assetcache"
	"weft/internal/baking"
	"weft/internal/config"
	"weft/internal/logging"
	"weft/internal/simloop"
	"weft/internal/wire"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("ensure directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	lock := flock.New(filepath.Join(cfg.LogDir, "weftd.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("acquire daemon lock: %v", err)
	}
	if !locked {
		log.Fatalf("another weftd instance holds %s", lock.Path())
	}
	defer lock.Unlock() //nolint:errcheck

	if !cfg.Loopback.Enabled {
		log.Fatalf("no live transport is available in this build; enable [loopback] in the config")
	}

	var store *assetcache.Store
	if cfg.AssetCache.Enabled {
		store, err = assetcache.Open(cfg)
		if err != nil {
			log.Fatalf("open asset cache: %v", err)
		}
		defer store.Close()
	}

	agentID, sessionID := identity(cfg)

	dispatcher := wire.NewDispatcher()
	sim := simloop.New(simloop.Options{Logger: logger, CacheHits: cfg.Loopback.CacheHits})
	sim.Attach(dispatcher)
	dressLoopback(sim)

	manager := appearance.New(appearance.Options{
		Config:    cfg,
		Logger:    logger,
		Sender:    sim,
		Assets:    sim,
		Textures:  sim,
		Uploader:  sim,
		Baker:     baking.New(logger),
		Cache:     store,
		AgentID:   agentID,
		SessionID: sessionID,
	})
	manager.Bind(dispatcher)
	defer manager.Close()

	logger.Info("weftd started",
		logging.Args(logging.String("agent_id", agentID.String()))...)
	sim.TriggerRegion(uuid.New())

	<-ctx.Done()
	logger.Info("weftd shutting down")
}

// identity resolves the configured agent and session ids, generating fresh
// ones in loopback mode when the config leaves them blank.
func identity(cfg *config.Config) (agentID, sessionID uuid.UUID) {
	agentID, err := uuid.Parse(cfg.AgentID)
	if err != nil {
		agentID = uuid.New()
	}
	sessionID, err = uuid.Parse(cfg.SessionID)
	if err != nil {
		sessionID = uuid.New()
	}
	return agentID, sessionID
}
