package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/godex/internal/config"
	"github.com/KirkDiggler/godex/internal/handlers/godex/v1alpha1"
)

var (
	grpcPort   int
	catalogDir string
)

var serverCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC server",
	Long:  `Start the godex gRPC server with the dex and gym services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides server.port)")
	serverCmd.Flags().StringVar(&catalogDir, "catalog-dir", "", "catalog directory (overrides catalog.dir)")
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.ResolvePath(configPath))
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}
	if cmd.Flags().Changed("catalog-dir") {
		cfg.Catalog.Dir = catalogDir
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newServices(cfg)
	if err != nil {
		return err
	}

	dexHandler, err := v1alpha1.NewDexHandler(&v1alpha1.DexHandlerConfig{
		DexService: svc.Dex,
	})
	if err != nil {
		return fmt.Errorf("failed to create dex handler: %w", err)
	}
	gymHandler, err := v1alpha1.NewGymHandler(&v1alpha1.GymHandlerConfig{
		GymService: svc.Gym,
	})
	if err != nil {
		return fmt.Errorf("failed to create gym handler: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.Server.Address())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterDexServiceServer(srv, dexHandler)
	v1alpha1.RegisterGymServiceServer(srv, gymHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.DexServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.GymServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server starting", "address", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down gRPC server", "timeout", cfg.Server.ShutdownTimeout)
		healthServer.Shutdown()
		gracefulStop(srv, cfg)
		return nil
	})

	return g.Wait()
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	interceptorLogger := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
	recoveryHandler := grpc_recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger),
			grpc_recovery.UnaryServerInterceptor(recoveryHandler),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger),
			grpc_recovery.StreamServerInterceptor(recoveryHandler),
		),
	)
}

// gracefulStop drains in-flight calls, forcing a stop once the configured
// timeout passes.
func gracefulStop(srv *grpc.Server, cfg config.Config) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}
