package cache

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard.go -package=mocks

// DashboardCache guarda as métricas do dashboard por organização
type DashboardCache interface {
	Get(ctx context.Context, organizationID string) (*domain.DashboardMetrics, bool)
	Set(ctx context.Context, organizationID string, metrics *domain.DashboardMetrics)
	Invalidate(ctx context.Context, organizationID string)
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache usa o Redis quando há cliente; sem cliente o cache fica desligado
func NewDashboardCache(client *redis.Client, ttl time.Duration) DashboardCache {
	if client == nil || ttl <= 0 {
		return noopDashboardCache{}
	}
	return &redisDashboardCache{client: client, ttl: ttl}
}

func dashboardKey(organizationID string) string {
	return keyPrefix + "dashboard:" + organizationID
}

func (c *redisDashboardCache) Get(ctx context.Context, organizationID string) (*domain.DashboardMetrics, bool) {
	raw, err := c.client.Get(ctx, dashboardKey(organizationID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warn("Erro ao ler métricas do dashboard no cache")
		}
		return nil, false
	}

	var metrics domain.DashboardMetrics
	if err := json.Unmarshal(raw, &metrics); err != nil {
		logrus.WithError(err).Warn("Métricas do dashboard corrompidas no cache")
		return nil, false
	}

	return &metrics, true
}

func (c *redisDashboardCache) Set(ctx context.Context, organizationID string, metrics *domain.DashboardMetrics) {
	raw, err := json.Marshal(metrics)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao serializar métricas do dashboard")
		return
	}

	if err := c.client.Set(ctx, dashboardKey(organizationID), raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Erro ao gravar métricas do dashboard no cache")
	}
}

func (c *redisDashboardCache) Invalidate(ctx context.Context, organizationID string) {
	if err := c.client.Del(ctx, dashboardKey(organizationID)).Err(); err != nil {
		logrus.WithError(err).Warn("Erro ao invalidar métricas do dashboard")
	}
}

type noopDashboardCache struct{}

func (noopDashboardCache) Get(context.Context, string) (*domain.DashboardMetrics, bool) {
	return nil, false
}

func (noopDashboardCache) Set(context.Context, string, *domain.DashboardMetrics) {}

func (noopDashboardCache) Invalidate(context.Context, string) {}
