package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/gyeh/carebalance/internal/config"
	"github.com/gyeh/carebalance/internal/exitcode"
	"github.com/gyeh/carebalance/internal/logging"
	"github.com/gyeh/carebalance/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the balance engine over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides CAREBALANCE_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	sc, err := config.LoadServe()
	if err != nil {
		log := logging.Setup(cfg.LogFormat)
		log.Error().Err(err).Msg("failed to load serve config")
		os.Exit(exitcode.UsageError)
	}
	if serveAddr != "" {
		sc.Addr = serveAddr
	}
	log := logging.SetupLevel(sc.LogFormat, sc.LogLevel)

	reg := prometheus.NewRegistry()
	e := server.New(log, reg)

	srv := &http.Server{
		Addr:         sc.Addr,
		Handler:      e,
		ReadTimeout:  sc.ReadTimeout,
		WriteTimeout: sc.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", sc.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server failed")
			os.Exit(exitcode.ServeError)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		return err
	}
	return nil
}
