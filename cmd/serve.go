package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/shouni/go-asset-kit/internal/builder"
	"github.com/shouni/go-asset-kit/internal/server"
)

// serveCmd は、HTTP API とメトリクスを公開するのだ。
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API サーバーを起動するのだ。",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		m, err := builder.BuildManager(ctx, cfg, reg)
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           server.New(m, server.Options{Gatherer: reg, CORSOrigins: cfg.CORSOrigins, TaskTTL: cfg.BatchTTL}).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("サーバーを起動したのだ！", "addr", cfg.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := m.SaveGallery(); err != nil {
			return err
		}
		slog.Info("サーバーを停止したのだ")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "待ち受けアドレスなのだ。")
}
