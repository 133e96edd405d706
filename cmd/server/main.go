package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/promo-offer/config"
	"github.com/QuangTung97/promo-offer/pkg/cacheclient"
	"github.com/QuangTung97/promo-offer/pkg/memtable"
	"github.com/QuangTung97/promo-offer/pkg/otellib"
	"github.com/QuangTung97/promo-offer/repository"
	"github.com/QuangTung97/promo-offer/service/catalog"
	"github.com/QuangTung97/promo-offer/service/ledger"
	"github.com/QuangTung97/promo-offer/service/offer"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "time/tzdata"
)

func newService(conf config.Config, logger *zap.Logger) (offer.IService, func()) {
	db := conf.MySQL.MustConnect()
	tracer := otel.GetTracerProvider().Tracer("server")

	provider := repository.NewProvider(db)
	repo := repository.NewOfferWrapper(repository.NewOffer(), tracer, "repo::")

	var options []catalog.Option
	closeFn := func() { _ = db.Close() }

	if conf.Memcache.Enabled {
		logger.Info("catalog remote cache enabled", zap.String("memcache.addr", conf.Memcache.Addr()))

		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.NumConns)
		options = append(options,
			catalog.WithCacheClient(client),
			catalog.WithRemoteTTL(conf.Offer.CacheTTL),
		)
		closeFn = func() {
			_ = client.Close()
			_ = db.Close()
		}
	}

	mem := memtable.New(conf.Offer.MemCacheSize, conf.Offer.CacheTTL)
	offerCatalog := catalog.New(provider, repo, mem, options...)
	offerLedger := ledger.New(provider, repo, conf.Offer.LockWaitTimeout)

	loc, err := conf.Offer.Location()
	if err != nil {
		panic(err)
	}

	s := offer.NewService(provider, repo, offerCatalog, offerLedger, offer.NewMetrics(prometheus.DefaultRegisterer),
		offer.WithLocation(loc),
	)
	return offer.NewIServiceWrapper(s, tracer, "service::"), closeFn
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel("promo-offer", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	service, closeService := newService(conf, logger)
	defer closeService()

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Group(func(r chi.Router) {
		r.Use(otellib.HTTPMiddleware(tracerProvider, logger))
		offer.NewServer(service, offer.DefaultRetryConfig()).Register(r)
	})

	startHTTPServer(conf, logger, r)
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startHTTPServer(conf config.Config, logger *zap.Logger, handler http.Handler) {
	logger.Info("HTTP server listening", zap.String("addr", conf.Server.HTTP.ListenString()))

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: handler,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	<-done
}
