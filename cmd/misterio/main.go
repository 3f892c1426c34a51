package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/misteriogame/misterio-client/internal/api"
	"github.com/misteriogame/misterio-client/internal/config"
	"github.com/misteriogame/misterio-client/internal/conn"
	"github.com/misteriogame/misterio-client/internal/debugapi"
	"github.com/misteriogame/misterio-client/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config", zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		zap.NewExample().Fatal("logger", zap.Error(err))
	}
	defer logger.Sync()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("exit", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// The store outlives the signal context: Disconnect still needs to
	// dispatch ConnectionLost during shutdown.
	st := store.New(context.Background(), logger.Named("store"))
	defer st.Close()
	client := api.New(cfg.ServerURL, logger.Named("api"))
	manager := conn.NewManager(cfg.WSURL, st, logger.Named("conn"))

	playerID := cfg.PlayerID
	if playerID == 0 {
		// No identity yet: join the room first.
		resp, err := client.JoinRoom(ctx, cfg.RoomID, api.JoinRequest{
			Name:   cfg.PlayerName,
			Avatar: cfg.Avatar,
		})
		if err != nil {
			return err
		}
		for _, p := range resp.Players {
			if p.Name == cfg.PlayerName {
				playerID = p.ID
			}
		}
		logger.Info("joined room", zap.String("room", resp.Room), zap.Int("player", playerID))
	}

	if err := manager.Connect(ctx, cfg.RoomID, playerID); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.DebugAddr,
		Handler: debugapi.SetupRoutes(st),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("debug endpoint listening", zap.String("addr", cfg.DebugAddr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		manager.Disconnect()
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
