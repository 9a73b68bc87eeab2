package grpc

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/peer"
	"google.golang.org/protobuf/proto"

	"liyu1981.xyz/aquarium-service/pkg/aqua"
	"liyu1981.xyz/aquarium-service/pkg/common"
)

// ServiceNameStore is the health service name reporting on the record store.
const ServiceNameStore = "aquarium.Store"

type AquaServer struct {
	Aqua             *aqua.Aqua
	RateLimiterStore *aqua.RateLimiterStore
	health           *health.Server
}

func NewAquaServer(aquaCore *aqua.Aqua, limiterStore *aqua.RateLimiterStore) *AquaServer {
	return &AquaServer{
		Aqua:             aquaCore,
		RateLimiterStore: limiterStore,
		health:           health.NewServer(),
	}
}

func (s *AquaServer) logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameGrpcServer)
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func (s *AquaServer) CheckPeerLimiter(ctx context.Context) bool {
	return s.RateLimiterStore.Allow(peerKey(ctx))
}

// RefreshHealth probes the store and publishes the result for both the
// overall server and ServiceNameStore.
func (s *AquaServer) RefreshHealth() healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.Aqua.Db.Ping(); err != nil {
		s.logger().Warn("Store ping failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceNameStore, status)
	return status
}

// WatchHealth refreshes the published status every interval until ctx is done.
// The returned channel is closed once the loop has exited.
func (s *AquaServer) WatchHealth(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	s.RefreshHealth()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RefreshHealth()
			}
		}
	}()

	return done
}

// NewServer builds a grpc.Server with the health service registered behind the
// logging and rate limit interceptors.
func (s *AquaServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		s.CreateLoggingInterceptor(),
		s.CreateRateLimitInterceptor([]proto.Message{
			&healthpb.HealthCheckRequest{},
		}),
	))

	server := grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(server, s.health)
	s.RefreshHealth()
	return server
}

// Shutdown flips every service to NOT_SERVING so watchers see the server leaving.
func (s *AquaServer) Shutdown() {
	s.health.Shutdown()
}
