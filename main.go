package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"auction-engine/db/migrations"
	"auction-engine/internal/autobid"
	"auction-engine/internal/config"
	"auction-engine/internal/engine"
	"auction-engine/internal/events"
	"auction-engine/internal/repository"
	"auction-engine/internal/scheduler"
	"auction-engine/internal/server"
	"auction-engine/internal/settlement"
	"auction-engine/internal/wallet"
	"auction-engine/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, cleanup := buildRepo(cfg)
	defer cleanup()

	bus := events.NewInProcBus()
	walletSvc := wallet.NewMemoryWallet()

	eng := engine.NewEngine(repo, walletSvc, bus).WithLockTimeout(cfg.LockTimeout)

	agent := autobid.NewAgent(repo, eng, bus)
	bus.Subscribe(agent.Handle)

	notifier := settlement.NewNotifier(repo, walletSvc, bus, cfg.SettlementBackoff)
	bus.Subscribe(notifier.Handle)

	if cfg.AMQPURL != "" {
		mirror, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			utils.Fatal("failed to connect event mirror", map[string]any{"error": err.Error()})
		}
		defer mirror.Close()
		bus.Subscribe(mirror.Handler())
	}

	sched := scheduler.NewScheduler(repo, bus, cfg.SweepInterval)
	go sched.Run(ctx)

	router := server.SetupRouter(eng)

	utils.Info("starting auction server", map[string]any{"addr": cfg.HTTPAddr})
	if err := router.Run(cfg.HTTPAddr); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// buildRepo selects the Postgres store when a connection string is
// configured, the in-memory store otherwise.
func buildRepo(cfg config.App) (repository.AuctionDB, func()) {
	if cfg.PostgresConn == "" {
		utils.Info("using in-memory auction store", nil)
		return repository.NewMemoryRepo(), func() {}
	}

	dbConn, err := sqlx.Connect("postgres", cfg.PostgresConn)
	if err != nil {
		utils.Fatal("cannot connect to database", map[string]any{"error": err.Error()})
	}
	if err := migrations.Run(dbConn.DB); err != nil {
		utils.Fatal("cannot run migrations", map[string]any{"error": err.Error()})
	}
	return repository.NewPostgresRepo(dbConn), func() { _ = dbConn.Close() }
}
