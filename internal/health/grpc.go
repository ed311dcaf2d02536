package health

import (
	"context"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/techlinker/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported alongside the overall "" status.
const ServiceName = "techlinker.api"

// CheckFunc probes one dependency. A nil error means healthy.
type CheckFunc func(ctx context.Context) error

// Server exposes the standard gRPC health service, refreshed from checks.
type Server struct {
	grpc     *grpc.Server
	health   *health.Server
	checks   map[string]CheckFunc
	interval time.Duration
	timeout  time.Duration

	mu      sync.RWMutex
	failing map[string]error
}

type Option func(*Server)

func WithCheck(name string, fn CheckFunc) Option {
	return func(s *Server) {
		s.checks[name] = fn
	}
}

// WithInterval sets how often checks run. Defaults to 10s.
func WithInterval(d time.Duration) Option {
	return func(s *Server) {
		s.interval = d
	}
}

func New(opts ...Option) *Server {
	s := &Server{
		grpc:     grpc.NewServer(),
		health:   health.NewServer(),
		checks:   map[string]CheckFunc{},
		interval: 10 * time.Second,
		timeout:  2 * time.Second,
		failing:  map[string]error{},
	}
	for _, opt := range opts {
		opt(s)
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

func (s *Server) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Check runs every check once and publishes the combined status.
func (s *Server) Check(ctx context.Context) error {
	failing := map[string]error{}
	for name, fn := range s.checks {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := fn(cctx)
		cancel()
		if err != nil {
			failing[name] = err
			logger.Log.Warnw("health check failed", "check", name, "error", err)
		}
	}

	s.mu.Lock()
	s.failing = failing
	s.mu.Unlock()

	if len(failing) > 0 {
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return firstError(failing)
	}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Failing returns the names of the checks that failed on the last run.
func (s *Server) Failing() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.failing))
	for name := range s.failing {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run refreshes the status until ctx is done.
func (s *Server) Run(ctx context.Context) {
	_ = s.Check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Check(ctx)
		}
	}
}

// Serve accepts gRPC connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop marks the service as not serving and stops the gRPC server gracefully.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func firstError(errs map[string]error) error {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)
	return errs[names[0]]
}
