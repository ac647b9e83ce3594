package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"socialfeed/internal/common"
	"socialfeed/internal/config"
	"socialfeed/internal/moderation"
	"socialfeed/internal/wire"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	log.Println("Starting Feed Service...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app, cleanup, err := wire.InitializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      newRouter(app),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(common.LoggingUnaryInterceptor, common.ErrorUnaryInterceptor),
	)
	moderation.RegisterModerationServer(grpcServer, app.ModerationGRPC)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(moderation.ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("🌐 HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.Server.Host, cfg.Server.GRPCPort))
		if err != nil {
			return err
		}
		log.Printf("🔌 gRPC server listening on %s", lis.Addr())
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down Feed Service...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP shutdown error: %v", err)
		}
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("Feed Service stopped with error: %v", err)
		return
	}
	log.Println("Feed Service stopped")
}

func newRouter(app *wire.Application) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if sqlDB, err := app.DB.DB(); err != nil || sqlDB.PingContext(r.Context()) != nil {
			status = "database unavailable"
			code = http.StatusServiceUnavailable
		}
		common.WriteJSON(w, code, map[string]interface{}{
			"status":  status,
			"service": "feed-svc",
			"time":    time.Now().UTC(),
		})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(common.Authenticate(app.TokenManager, false))

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(common.RequireAdmin)

	app.FeedHandler.RegisterRoutes(api, admin, app.RateLimits)
	app.SocialHandler.RegisterRoutes(api, app.RateLimits)
	app.AlertHandler.RegisterRoutes(admin)

	var h http.Handler = r
	h = common.CORSMiddleware(h)
	h = common.LoggingMiddleware(h)
	h = chimw.Recoverer(h)
	h = chimw.RealIP(h)
	h = chimw.RequestID(h)
	return h
}
