package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/itfweb/recruit-site/internal/platform/config"
)

// RouterDeps はルーティングに必要なハンドラ群
type RouterDeps struct {
	Posting     *PostingHandler
	NewsPage    *NewsPageHandler
	IndexWidget *IndexWidgetHandler
	NewsFeed    *NewsFeedHandler
	Logger      *slog.Logger
}

// NewRouter はルーティングとミドルウェアを組み立てたハンドラを返す
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/saiyou", deps.Posting)
	mux.Handle("/news", deps.NewsPage)
	mux.Handle("/widgets/news", deps.IndexWidget)
	mux.Handle("/api/news", deps.NewsFeed)

	return RequestID(AccessLog(deps.Logger)(mux))
}

// Server はHTTPサーバを表す
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer は新しいServerを作成します
func NewServer(cfg config.HTTPConfig, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Run はサーバを起動し、コンテキストのキャンセルで安全に停止する
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTPサーバを起動", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info("HTTPサーバを停止")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.httpServer.WriteTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		return nil
	}
}
