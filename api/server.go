package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickkart/backend/config"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/services/auth"
	"github.com/quickkart/backend/services/cart"
	"github.com/quickkart/backend/services/payment"
	"github.com/quickkart/backend/services/scraper"
	"github.com/quickkart/backend/services/search"
	"github.com/quickkart/backend/store"
	"github.com/quickkart/backend/validation"
)

type server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	search     *search.Service
	auth       *auth.Service
	cart       *cart.Service
	payment    *payment.Service
	validator  *validation.Validator
	logger     logger.Logger
}

func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)

	defer cancel()

	s := &server{
		config: cfg,
		logger: logger.New(),
	}
	if err := s.setupDependencies(); err != nil {
		return err
	}
	s.setupRouter()
	s.setupHTTPServer()
	s.setupGracefulShutdown(ctx)

	return nil
}

func (s *server) setupDependencies() error {
	fetcher := scraper.NewHTTPFetcher(s.logger, s.config.GetSearchBaseURL(), s.config.GetScrapeTimeout())
	scraperService := scraper.New(s.logger, fetcher)

	s.search = search.New(s.logger, scraperService)
	s.auth = auth.New(s.logger, store.NewMemory[models.User](), s.config.GetAuthSecret())
	s.cart = cart.New(s.logger, store.NewMemory[models.Cart]())
	s.payment = payment.New(s.logger, store.NewMemory[models.Order](), store.NewMemory[models.Transaction]())

	var err error
	s.validator, err = validation.New(s.logger)
	if err != nil {
		s.logger.Error("error creating validator", "err", err.Error())
		return err
	}

	return nil

}

func (s *server) setupRouter() {
	router := newRouter()

	router.Use(loggingMiddleware(s.logger))

	setupRoutes(router, s.logger, s.search, s.auth, s.cart, s.payment, s.validator)

	s.router = router
}

func (s *server) setupHTTPServer() {

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.config.GetPort()),
		Handler: s.router.Handler(),
	}
	s.httpServer = httpServer
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()
}

func (s *server) setupGracefulShutdown(ctx context.Context) {

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		s.logger.Info("starting to shut down http server")
		shutdownCtx := context.Background()
		shutdownCtx, cancel := context.WithTimeout(shutdownCtx, 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error shutting down http server", "err", err)
			return
		}
		s.logger.Info("shut down http server successfully")
	}()

	wg.Wait()
}
