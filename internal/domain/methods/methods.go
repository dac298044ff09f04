// Package methods answers whether the processor offers a payment method for
// the shopper's currency, backed by a short-lived cache of the processor list.
package methods

import (
	"context"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -source methods.go -destination mock_methods.go -package methods

const (
	CacheName  = "airwallex_payment_methods"
	CacheTag   = "airwallex_payment_method_config"
	DefaultTTL = 60 * time.Second
	// RejectedTTL bounds how long a rejected fetch (bad credentials, unreadable reply) is remembered.
	RejectedTTL = 15 * time.Second
)

// aliases maps local method codes to the processor's names.
var aliases = map[string]string{
	"wechat": "wechatpay",
}

// Provider fetches the method codes the processor supports for a currency.
type Provider interface {
	AvailablePaymentMethods(ctx context.Context, currency string) ([]string, error)
}

type Cache interface {
	Load(key string) ([]byte, bool)
	Save(key string, value []byte, tags []string, ttl time.Duration)
	CleanByTag(tag string) int
}

// TransportError is a failed round trip to the processor: the request never
// got an answer, or the answer was a server error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CacheKey is the cache-name plus currency code.
func CacheKey(currency string) string {
	return CacheName + currency
}

func resolveAlias(code string) string {
	if alias, ok := aliases[code]; ok {
		return alias
	}
	return code
}

type currencyKey struct{}

// WithCurrency stores the active currency for availability checks made with ctx.
func WithCurrency(ctx context.Context, currency string) context.Context {
	return context.WithValue(ctx, currencyKey{}, strings.ToUpper(strings.TrimSpace(currency)))
}

func CurrencyFromContext(ctx context.Context) string {
	currency, _ := ctx.Value(currencyKey{}).(string)
	return currency
}
