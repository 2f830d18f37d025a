package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/addchain/collator/module/component"
	"github.com/addchain/collator/module/irrecoverable"
)

// Server is the http server that will be serving the /metrics request for prometheus
type Server struct {
	*component.ComponentManager
	server *http.Server
	log    zerolog.Logger
}

// NewServer creates a new server that will start on the specified port,
// and responds to only the `/metrics` endpoint
func NewServer(log zerolog.Logger, port uint, gatherer prometheus.Gatherer) *Server {
	addr := ":" + strconv.Itoa(int(port))

	mux := http.NewServeMux()
	endpoint := "/metrics"
	mux.Handle(endpoint, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	m := &Server{
		server: &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second},
		log:    log.With().Str("component", "metrics_server").Logger(),
	}

	m.ComponentManager = component.NewComponentManagerBuilder().
		AddWorker(m.serve).
		Build()

	return m
}

func (m *Server) serve(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
	listener, err := net.Listen("tcp", m.server.Addr)
	if err != nil {
		ctx.Throw(fmt.Errorf("could not listen for metrics requests: %w", err))
	}
	m.log.Info().Str("address", listener.Addr().String()).Msg("metrics server started")
	ready()

	go func() {
		err := m.server.Serve(listener)
		// http.ErrServerClosed is returned when Close or Shutdown is called
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.log.Err(err).Msg("error serving metrics")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = m.server.Shutdown(shutdownCtx)
	if err != nil {
		m.log.Err(err).Msg("error shutting down metrics server")
		return
	}
	m.log.Debug().Msg("metrics server shutdown")
}
