package grpc

import (
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health-check name of the web application
const ServiceName = "mesa.Web"

// HealthServer exposes the standard gRPC health service for orchestrators
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	logger *slog.Logger
}

// NewHealthServer creates a gRPC server with health and reflection registered.
// Both the overall and the named service start as NOT_SERVING.
func NewHealthServer(logger *slog.Logger) *HealthServer {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    30 * time.Second,
			Timeout: 10 * time.Second,
		}),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	return &HealthServer{
		server: server,
		health: healthServer,
		logger: logger,
	}
}

// Serve blocks accepting connections on lis
func (s *HealthServer) Serve(lis net.Listener) error {
	s.logger.Info("🔌 [gRPC] Health server running...", "addr", lis.Addr().String())
	return s.server.Serve(lis)
}

// SetServing flips the reported status of the application
func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Stop reports NOT_SERVING and drains open connections
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
	s.logger.Info("🛑 [gRPC] Health server stopped")
}
