package offer

import (
	"context"
	"github.com/QuangTung97/promo-offer/service/ledger"
	"github.com/cenkalti/backoff/v4"
	"time"
)

// RetryConfig ...
type RetryConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig ...
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 20 * time.Millisecond,
		MaxInterval:     200 * time.Millisecond,
	}
}

// RedeemWithRetry retries Redeem only on transient failures, every other error is returned at once
func RedeemWithRetry(ctx context.Context, s IService, input RedeemInput, conf RetryConfig) (RedeemOutput, error) {
	var output RedeemOutput
	operation := func() error {
		var err error
		output, err = s.Redeem(ctx, input)
		if err != nil && !ledger.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = conf.InitialInterval
	expBackoff.MaxInterval = conf.MaxInterval
	expBackoff.MaxElapsedTime = 0

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(expBackoff, conf.MaxRetries), ctx))
	if err != nil {
		return RedeemOutput{}, err
	}
	return output, nil
}
