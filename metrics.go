package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gripgear/designer/internal/configurator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type commitMetrics struct {
	registry     *prometheus.Registry
	commits      *prometheus.CounterVec
	colorCommits *prometheus.CounterVec
	templates    *prometheus.CounterVec
	quantity     prometheus.Gauge
}

func newCommitMetrics() *commitMetrics {
	reg := prometheus.NewRegistry()
	m := &commitMetrics{
		registry: reg,
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "designer_commits_total",
			Help: "Committed configurator events by kind",
		}, []string{"kind"}),
		colorCommits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "designer_color_commits_total",
			Help: "Committed colour selections by channel and colour",
		}, []string{"channel", "color"}),
		templates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "designer_template_selections_total",
			Help: "Template selections by template id",
		}, []string{"template"}),
		quantity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "designer_quantity",
			Help: "Quantity of the current design session",
		}),
	}
	reg.MustRegister(m.commits, m.colorCommits, m.templates, m.quantity)
	return m
}

func (m *commitMetrics) Observe(e configurator.Event) {
	if m == nil || e == nil {
		return
	}
	m.commits.WithLabelValues(string(e.Kind())).Inc()
	switch ev := e.(type) {
	case configurator.ColorChanged:
		m.colorCommits.WithLabelValues(string(ev.Channel), ev.Color.String()).Inc()
	case configurator.TemplateChanged:
		m.templates.WithLabelValues(strconv.Itoa(ev.TemplateID)).Inc()
	case configurator.QuantityChanged:
		m.quantity.Set(float64(ev.Quantity))
	}
}

// startSession seeds the quantity gauge with the session's starting value.
func (m *commitMetrics) startSession(quantity int) {
	if m == nil {
		return
	}
	m.quantity.Set(float64(quantity))
}

// serveMetrics exposes the registry on addr until ctx is done.
func (m *commitMetrics) serveMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		logger.Info("metrics listener started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listener failed", zap.Error(err))
		}
	}()
}
