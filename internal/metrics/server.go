package metrics

import (
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// StartServer serves the active backend under /metrics on addr. It returns
// the scrape URL and a func that shuts the server down.
func StartServer(addr string) (string, func(), error) {
	h := HTTPHandler()
	if h == nil {
		return "", nil, errors.New("metrics backend has no handler; call InitializePrometheusMetrics first")
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen metrics addr [%v]", addr)
	}

	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(h)

	srv := &http.Server{
		Handler:           handlers.CompressHandler(router),
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
	}
	var g errgroup.Group
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	return "http://" + listener.Addr().String() + "/metrics", func() {
		_ = srv.Close()
		_ = g.Wait()
	}, nil
}
