package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/a-h/urlsummary/auth"
	"github.com/a-h/urlsummary/handlers/page"
	summarizepost "github.com/a-h/urlsummary/handlers/summarize/post"
	"github.com/rs/cors"
)

type ServeCommand struct {
	Pipeline    PipelineFlags `embed:""`
	ListenAddr  string        `help:"The address to listen on." env:"LISTEN_ADDR" default:"localhost:9020"`
	TLSCertFile string        `help:"The TLS certificate file." env:"TLS_CERT_FILE" default:""`
	TLSKeyFile  string        `help:"The TLS key file." env:"TLS_KEY_FILE" default:""`
	LogLevel    string        `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c ServeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	log.Info("creating pipeline", slog.String("provider", c.Pipeline.Provider), slog.String("model", c.Pipeline.Model))
	p := c.Pipeline.newPipeline(log)

	mux := http.NewServeMux()
	mux.Handle("POST /summarize", summarizepost.New(log, p))
	mux.Handle("/{$}", page.New(log, p))

	withCORSAuthenticatedMux := cors.AllowAll().Handler(auth.New(mux))

	log.Info("Listening", slog.String("addr", c.ListenAddr))
	s := &http.Server{
		Addr:    c.ListenAddr,
		Handler: withCORSAuthenticatedMux,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
	if c.TLSCertFile != "" && c.TLSKeyFile != "" {
		log.Info("Enabling TLS mode")
		var cert tls.Certificate
		cert, err = tls.LoadX509KeyPair(c.TLSCertFile, c.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load cert: %w", err)
		}
		s.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}
		return s.ListenAndServeTLS(c.TLSCertFile, c.TLSKeyFile)
	}
	return s.ListenAndServe()
}
