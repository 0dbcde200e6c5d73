// Command seqmatch-server provides a REST API for sequence matching.
//
// Usage:
//
//	seqmatch-server [options]
//
// Options:
//
//	--config     Config file (default: ./seqmatch.yaml if present)
//	--host       Host to bind to (default: localhost)
//	--port       Port to listen on (default: 8080)
//	--log-level  debug, info, warn or fatal (default: info)
//
// Every setting may also come from a SEQMATCH_ environment variable,
// e.g. SEQMATCH_SERVER_PORT=9000.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/aria-lang/seqmatch-go/api"
	"github.com/aria-lang/seqmatch-go/internal/config"
	"github.com/aria-lang/seqmatch-go/pkg/logger"
	"github.com/aria-lang/seqmatch-go/pkg/seqmatch"
)

func main() {
	fs := flag.NewFlagSet("seqmatch-server", flag.ExitOnError)
	cfgFile := fs.String("config", "", "config file")
	fs.String("host", "localhost", "host to bind to")
	fs.Int("port", 8080, "port to listen on")
	fs.String("log-level", "info", "log level")
	fs.Parse(os.Args[1:])

	v, err := config.NewViper(*cfgFile)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	v.BindPFlag("server.host", fs.Lookup("host"))
	v.BindPFlag("server.port", fs.Lookup("port"))
	v.BindPFlag("log-level", fs.Lookup("log-level"))

	cfg, err := config.Load(v)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	log := logger.Default()
	if level, ok := logger.ParseLevel(cfg.LogLevel); ok {
		log.SetLevel(level)
	} else {
		log.Warnf("unknown log level %q, using INFO", cfg.LogLevel)
	}

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(cfg, log.With("http")),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Infof("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("could not gracefully shutdown: %v", err)
		}
		close(done)
	}()

	log.Infof("%s API server starting on http://%s", seqmatch.Info(), addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("could not listen on %s: %v", addr, err)
	}

	<-done
	log.Infof("server stopped")
}
