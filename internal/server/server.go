package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/akhmadiev/storefront/internal/config"
	myHTTP "github.com/akhmadiev/storefront/internal/handler/http"
	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/workers"
)

type server struct {
	httpServer *httpServer
	sweeper    *workers.ResetTokenSweeper
	logger     *logger.Logger
}

// NewServer assembles the transport server and the background sweeper.
// The sweeper may be nil when background jobs are not wanted (tests).
func NewServer(handler *myHTTP.Handler, sweeper *workers.ResetTokenSweeper, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handler.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.sweeper = sweeper
	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v", err)
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errNoServersAreCreated
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	// background jobs share the signal context, so cancellation stops them
	// together with the transport
	if s.sweeper != nil {
		go s.sweeper.Run(ctx)
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
