// hostilesim runs hostile NPC controllers in a headless scripted scene.
//
// Usage:
//
//	go run ./cmd/hostilesim
//	HOSTILE_CONFIG=config/hostilesim.yaml go run ./cmd/hostilesim
//	go run ./cmd/hostilesim -seed   # store config profiles in hostile_profiles
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/hostile/internal/ai"
	"github.com/udisondev/hostile/internal/config"
	"github.com/udisondev/hostile/internal/db"
	"github.com/udisondev/hostile/internal/model"
	"github.com/udisondev/hostile/internal/sim"
)

const ConfigPath = "config/hostilesim.yaml"

func main() {
	seed := flag.Bool("seed", false, "write configured profiles to the database before running")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *seed); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, seed bool) error {
	cfgPath := ConfigPath
	if p := os.Getenv("HOSTILE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := config.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("hostile simulator starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"tick_interval", cfg.TickInterval)

	templates, err := loadTemplates(ctx, cfg, seed)
	if err != nil {
		return err
	}

	scene, err := sim.NewScene(cfg.Scene, templates)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	mgr := ai.NewTickManager(cfg.TickInterval, cfg.Workers)
	scene.Register(mgr)
	defer func() {
		for i := range scene.Actors() {
			mgr.Unregister(uint32(i + 1))
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := mgr.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("AI tick manager: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		defer mgr.Stop()
		slog.Info("starting scene", "duration", cfg.Scene.Duration, "hostiles", len(scene.Actors()))
		return scene.Run(gctx, cfg.TickInterval)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	for _, a := range scene.Actors() {
		slog.Info("hostile final state",
			"npc", a.Name,
			"state", a.AI.State(),
			"health", a.AI.Health(),
			"dead", a.AI.IsDead(),
			"frozen", a.AI.Frozen(),
			"lastAttack", a.AI.LastAttackOutcome())
	}
	slog.Info("hostile simulator stopped", "kills", scene.Kills(), "ticks", mgr.Ticks())
	return nil
}

// loadTemplates builds the profile table from config and, when the database
// is enabled, overrides it with stored profiles.
func loadTemplates(ctx context.Context, cfg config.Simulator, seed bool) (map[string]model.HostileTemplate, error) {
	templates := make(map[string]model.HostileTemplate, len(cfg.Profiles))
	for name, p := range cfg.Profiles {
		templates[name] = p.Template(name)
	}

	if !cfg.Database.Enabled {
		if seed {
			return nil, errors.New("-seed requires database.enabled")
		}
		return templates, nil
	}

	dsn := cfg.Database.DSN()
	if err := db.RunMigrations(ctx, dsn); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	repo := db.NewProfileRepository(database.Pool())

	if seed {
		for _, t := range templates {
			if err := repo.UpsertTemplate(ctx, t); err != nil {
				return nil, err
			}
		}
		slog.Info("profiles seeded", "count", len(templates))
	}

	stored, err := repo.LoadAllTemplates(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range stored {
		if err := config.FromTemplate(t).Validate(); err != nil {
			return nil, fmt.Errorf("stored profile %q: %w", t.Name, err)
		}
		templates[t.Name] = t
	}
	slog.Info("profiles loaded from database", "count", len(stored))

	return templates, nil
}
