package methods

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"AirwallexPayments/pkg/metrics"
)

// Helper never returns an error. A failed fetch means no method is available.
type Helper struct {
	provider        Provider
	cache           Cache
	defaultCurrency string
	ttl             time.Duration
}

func NewHelper(provider Provider, cache Cache, defaultCurrency string, ttl time.Duration) *Helper {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Helper{
		provider:        provider,
		cache:           cache,
		defaultCurrency: strings.ToUpper(defaultCurrency),
		ttl:             ttl,
	}
}

// IsAvailable reports whether code, after alias resolution, is in the
// processor list for the currency carried by ctx.
func (h *Helper) IsAvailable(ctx context.Context, code string) bool {
	return slices.Contains(h.AllMethods(ctx), resolveAlias(code))
}

// AllMethods returns the cached list, fetching it on a miss.
func (h *Helper) AllMethods(ctx context.Context) []string {
	currency := h.currency(ctx)
	key := CacheKey(currency)

	if raw, ok := h.cache.Load(key); ok {
		var cached []string
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.MethodsCacheLookups.WithLabelValues("hit").Inc()
			return cached
		}
		slog.WarnContext(ctx, "Unreadable payment methods cache entry", "key", key)
	}
	metrics.MethodsCacheLookups.WithLabelValues("miss").Inc()

	ttl := h.ttl
	fetched, err := h.provider.AvailablePaymentMethods(ctx, currency)
	var transportErr *TransportError
	switch {
	case err == nil:
	case errors.As(err, &transportErr):
		// An empty list is cached so an unreachable processor is asked once per TTL.
		metrics.MethodsCacheLookups.WithLabelValues("soft_fail").Inc()
		slog.WarnContext(ctx, "Payment methods fetch failed, treating all methods as unavailable",
			"currency", currency, "error", err)
		fetched = []string{}
	default:
		metrics.MethodsCacheLookups.WithLabelValues("rejected").Inc()
		slog.ErrorContext(ctx, "Payment methods fetch rejected", "currency", currency, "error", err)
		fetched = []string{}
		ttl = min(ttl, RejectedTTL)
	}

	raw, err := json.Marshal(fetched)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode payment methods", "error", err)
		return fetched
	}
	h.cache.Save(key, raw, []string{CacheTag}, ttl)
	return fetched
}

// Invalidate drops every cached list, for all currencies.
func (h *Helper) Invalidate() int {
	return h.cache.CleanByTag(CacheTag)
}

func (h *Helper) currency(ctx context.Context) string {
	if currency := CurrencyFromContext(ctx); currency != "" {
		return currency
	}
	return h.defaultCurrency
}
