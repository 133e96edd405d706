package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/QuangTung97/promo-offer/config"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/eligibility"
	"github.com/QuangTung97/promo-offer/pkg/memtable"
	"github.com/QuangTung97/promo-offer/repository"
	"github.com/QuangTung97/promo-offer/repository/memrepo"
	"github.com/QuangTung97/promo-offer/service/catalog"
	"github.com/QuangTung97/promo-offer/service/ledger"
	"github.com/QuangTung97/promo-offer/service/offer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"sort"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchRedeemCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type benchParams struct {
	mode       string
	numThreads int
	perThread  int
	quota      int64
}

func newBenchService(mode string) *offer.Service {
	var provider repository.Provider
	var repo repository.Offer
	lockWait := 2 * time.Second
	memSize := 8 * 1024 * 1024
	loc := time.Local

	switch mode {
	case "memory":
		mem := memrepo.New()
		provider = mem
		repo = mem

	case "mysql":
		conf := config.Load()
		provider = repository.NewProvider(conf.MySQL.MustConnect())
		repo = repository.NewOffer()
		lockWait = conf.Offer.LockWaitTimeout
		memSize = conf.Offer.MemCacheSize

		var err error
		loc, err = conf.Offer.Location()
		if err != nil {
			panic(err)
		}

	default:
		panic(fmt.Sprintf("unknown mode: %s", mode))
	}

	offerCatalog := catalog.New(provider, repo, memtable.New(memSize, time.Minute))
	offerLedger := ledger.New(provider, repo, lockWait)
	return offer.NewService(provider, repo, offerCatalog, offerLedger, offer.NewMetrics(prometheus.NewRegistry()),
		offer.WithLocation(loc),
	)
}

func createBenchOffer(s *offer.Service, quota int64) model.Offer {
	now := time.Now()
	created, err := s.CreateOffer(context.Background(), offer.CreateOfferInput{
		OfferInput: offer.OfferInput{
			Code:         fmt.Sprintf("BENCH%d", now.UnixNano()),
			Kind:         model.OfferKindVoucher,
			DiscountType: model.DiscountTypeFixedAmount,

			DiscountValue: decimal.NewFromInt(10000),

			ValidFrom: now.Add(-time.Hour),
			ValidTo:   now.Add(24 * time.Hour),

			GlobalQuota: sql.NullInt64{Valid: true, Int64: quota},
		},
		Active: true,
	})
	if err != nil {
		panic(err)
	}
	return created
}

func benchRedeem(params benchParams) {
	fmt.Println("MODE:", params.mode)
	fmt.Println("THREADS:", params.numThreads, "PER THREAD:", params.perThread, "QUOTA:", params.quota)

	s := newBenchService(params.mode)
	benchOffer := createBenchOffer(s, params.quota)

	durations := make([][]time.Duration, params.numThreads)

	var mut sync.Mutex
	results := map[string]int{}

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(params.numThreads)
	for th := 0; th < params.numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < params.perThread; i++ {
				start := time.Now()
				_, err := offer.RedeemWithRetry(context.Background(), s, offer.RedeemInput{
					OfferID:     benchOffer.ID,
					CustomerID:  fmt.Sprintf("customer-%d-%d", threadIndex, i),
					OrderAmount: decimal.NewFromInt(100000),
				}, offer.DefaultRetryConfig())
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))

				mut.Lock()
				results[resultOf(err)]++
				mut.Unlock()
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	for _, key := range []string{"success", "quota_exceeded", "race_lost", "lock_timeout", "error"} {
		fmt.Printf("%s: %d\n", key, results[key])
	}

	printPercentiles(durations)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, eligibility.ErrRaceLost):
		return "race_lost"
	case errors.Is(err, eligibility.ErrGlobalQuotaExceeded):
		return "quota_exceeded"
	case ledger.IsTransient(err):
		return "lock_timeout"
	default:
		fmt.Println("[ERROR]", err)
		return "error"
	}
}

func printPercentiles(durations [][]time.Duration) {
	history := make([]time.Duration, 0)

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}

	numHistory := len(history)
	if numHistory == 0 {
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("AVG:", total/time.Duration(numHistory))
}

func benchRedeemCommand() *cobra.Command {
	params := benchParams{}

	cmd := &cobra.Command{
		Use:   "redeem",
		Short: "benchmark concurrent redemptions of one offer",
		Run: func(cmd *cobra.Command, args []string) {
			benchRedeem(params)
		},
	}

	cmd.Flags().StringVar(&params.mode, "mode", "memory", "store to use: memory or mysql")
	cmd.Flags().IntVar(&params.numThreads, "threads", 50, "number of concurrent goroutines")
	cmd.Flags().IntVar(&params.perThread, "per-thread", 200, "redemptions per goroutine")
	cmd.Flags().Int64Var(&params.quota, "quota", 5000, "global quota of the offer")
	return cmd
}
