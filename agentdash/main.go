package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agentdash/agentdash/chat"
	"agentdash/agentdash/config"
	"agentdash/agentdash/controllers"
	"agentdash/agentdash/mcp"
	"agentdash/agentdash/routes"
	"agentdash/agentdash/services/responder"
	"agentdash/agentdash/sources/psql"
	"agentdash/agentdash/sources/psql/dao"
	"agentdash/agentdash/sources/storage"
	"agentdash/agentdash/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	slotDAO := dao.NewSlotDAO(db.DB)

	// Restore chat state from the storage slot; bad payloads fall back to a
	// fresh state.
	restored := chat.LoadState(ctx, slotDAO)
	store := chat.NewStore(restored, responder.New(cfg.AgentAPI), chat.Saver(slotDAO))

	mcpStore := mcp.NewStore(mcp.Saver(slotDAO))
	mcpStore.Restore(ctx, slotDAO)

	healthCtrl := controllers.NewHealthController()
	agentsCtrl := controllers.NewAgentsController()
	chatCtrl := controllers.NewChatController(store)
	mcpCtrl := controllers.NewMCPController(mcpStore)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/agents", routes.AgentRoutes(agentsCtrl, chatCtrl))
	r.Mount("/chat", routes.ChatRoutes(chatCtrl))
	r.Mount("/mcp", routes.MCPRoutes(mcpCtrl))

	// Snapshot archive is wired only when object storage is configured.
	if cfg.MinIOEndpoint != "" {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			os.Exit(1)
		}
		snapshotCtrl := controllers.NewSnapshotController(store, minioClient)
		r.Mount("/snapshots", routes.SnapshotRoutes(snapshotCtrl))
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
