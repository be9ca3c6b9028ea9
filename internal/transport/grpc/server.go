package grpc

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/clippy-oss/whatsapp-bridged/internal/metrics"
	"github.com/clippy-oss/whatsapp-bridged/internal/service"
	pb "github.com/clippy-oss/whatsapp-bridged/pkg/pb"
)

type ServerConfig struct {
	Address string
}

type Server struct {
	server  *grpc.Server
	handler *Handler
	config  ServerConfig
	lis     net.Listener
}

func NewServer(
	waSvc *service.WhatsAppService,
	msgSvc *service.MessageService,
	config ServerConfig,
	metricsReg *metrics.Registry,
) *Server {
	handler := NewHandler(waSvc, msgSvc)

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(metricsReg),
			RecoveryInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			StreamLoggingInterceptor(),
			StreamRecoveryInterceptor(),
		),
	)

	pb.RegisterWhatsAppServiceServer(server, handler)
	reflection.Register(server)

	return &Server{
		server:  server,
		handler: handler,
		config:  config,
	}
}

// Listen binds the TCP socket without serving. Callers must call
// Listen before Serve so a ready signal can be raised only once the
// address is actually bound, not once goroutines happen to schedule.
func (s *Server) Listen() error {
	lis, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	s.lis = lis
	return nil
}

// Serve blocks accepting connections on the listener bound by Listen.
func (s *Server) Serve() error {
	return s.server.Serve(s.lis)
}

// Start is a convenience wrapper for callers that don't need the
// split readiness handshake (e.g. tests).
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

func (s *Server) Stop() {
	s.server.GracefulStop()
}
