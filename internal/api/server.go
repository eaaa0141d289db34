package api

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/api/handler"
	"github.com/vfg2006/crm-api/internal/api/handler/router"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/usecases/assisting"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/insighting"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/middleware"
	"golang.org/x/sync/errgroup"
)

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Companies     managing.CompanyManager
	Contacts      managing.ContactManager
	Deals         managing.DealManager
	Activities    managing.ActivityManager
	Campaigns     managing.CampaignManager
	Projects      managing.ProjectManager
	Importer      managing.Importer
	Insights      insighting.Insighter
	Assistant     assisting.Assistant
	CronJobs      handler.CronJobServices
}

const (
	readHeaderTimeout = 2 * time.Second
	// as rotas de IA esperam o provedor de linguagem
	writeTimeout    = 90 * time.Second
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 15 * time.Second
)

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, errors.New("autenticador não configurado")
	}

	limiter := middleware.NewUserRateLimiter(cfg.RateLimit.AIRequestsPerMinute, cfg.RateLimit.AIBurst)

	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services, limiter),
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
	}, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services, limiter *middleware.UserRateLimiter) http.Handler {
	rt := router.New(
		router.WithNotFound(handler.NotFound()),
		router.WithMethodNotAllowed(handler.MethodNotAllowed()),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(router.Route{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		}),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Companies(services.Companies)...),
		router.WithRoutes(handler.Contacts(services.Contacts)...),
		router.WithRoutes(handler.Deals(services.Deals)...),
		router.WithRoutes(handler.Activities(services.Activities)...),
		router.WithRoutes(handler.Tasks(services.Activities)...),
		router.WithRoutes(handler.Notes(services.Activities)...),
		router.WithRoutes(handler.Campaigns(services.Campaigns)...),
		router.WithRoutes(handler.Projects(services.Projects)...),
		router.WithRoutes(handler.Import(services.Importer)...),
		router.WithRoutes(handler.Insights(services.Insights)...),
		router.WithRoutes(handler.AI(services.Assistant, limiter)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	routes := rt.Describe()
	logrus.WithField("routes", len(routes)).Debug("Rotas registradas")
	for _, route := range routes {
		logrus.Debug(route)
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.Cors(cfg.CorsAllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// Run atende até receber SIGINT/SIGTERM ou até ctx ser cancelado; falha ao escutar encerra com erro
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "servidor HTTP")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logrus.WithField("timeout", shutdownTimeout).Info("Iniciando desligamento gracioso do servidor")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Servidor encerrado com erro")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
