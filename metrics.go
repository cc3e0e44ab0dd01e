package jwsalg

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// factoryMetrics holds the counters a Factory updates.
type factoryMetrics struct {
	resolveTotal        map[Family]*metrics.Counter
	keyParseErrors      *metrics.Counter
	keyGenerationErrors *metrics.Counter
	keyCacheHits        *metrics.Counter
}

func newFactoryMetrics(set *metrics.Set) *factoryMetrics {
	getOrCreateCounter := metrics.GetOrCreateCounter
	if set != nil {
		getOrCreateCounter = set.GetOrCreateCounter
	}

	m := &factoryMetrics{
		resolveTotal:        make(map[Family]*metrics.Counter, 4),
		keyParseErrors:      getOrCreateCounter(`jwsalg_key_parse_errors_total`),
		keyGenerationErrors: getOrCreateCounter(`jwsalg_key_generation_errors_total`),
		keyCacheHits:        getOrCreateCounter(`jwsalg_key_cache_hits_total`),
	}
	for _, f := range []Family{FamilyNone, FamilySymmetric, FamilyRSA, FamilyEC} {
		m.resolveTotal[f] = getOrCreateCounter(fmt.Sprintf(`jwsalg_resolve_total{family=%q}`, f.String()))
	}

	return m
}
