package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"bookhub/internal/announce"
	"bookhub/internal/catalog"
	"bookhub/internal/prefs"
	"bookhub/internal/recommend"
	"bookhub/internal/scrape"
	"bookhub/internal/stats"
	"bookhub/pkg/config"
	"bookhub/pkg/dataset"
	"bookhub/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("info")
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	log := logging.New(cfg.Log.Level)

	ds := dataset.MustLoad(dataset.Config{
		BooksPath:        cfg.Dataset.BooksPath,
		RecordsPath:      cfg.Dataset.RecordsPath,
		AnnouncementPath: cfg.Dataset.AnnouncementPath,
	}, log)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(logging.RequestLogger(log), gin.Recovery())
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "books": len(ds.Books)})
	})

	// Catalog (books + genres)
	store := catalog.NewStore(ds.Books, log)
	catalog.NewHandler(store).RegisterRoutes(router)

	// Recommendations
	tracker := prefs.NewTracker()
	engine := recommend.NewEngine(store, tracker, log)
	recommend.NewHandler(engine).RegisterRoutes(router)

	// Borrow-history aggregations
	history := stats.NewHistoryStore(ds.Records)
	stats.NewHandler(stats.NewEngine(history)).RegisterRoutes(router)

	// Announcement pass-through
	announce.NewHandler(ds.Announcement).RegisterRoutes(router)

	// Metadata scraping (external collaborator)
	scraper := scrape.New(scrape.Config{
		BaseURL:     cfg.Scrape.BaseURL,
		Timeout:     cfg.Scrape.Timeout,
		MaxBrowsers: cfg.Scrape.MaxBrowsers,
		Headless:    cfg.Scrape.Headless,
	}, log)
	scrape.NewHandler(scraper, log).RegisterRoutes(router)

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("HTTP API server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown error")
	}
	log.Info().Msg("server stopped")
}
