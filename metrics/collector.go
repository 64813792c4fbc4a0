package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/xconv/conv"
	"github.com/viant/xconv/desc"
)

const (
	conversionsTotalName    = "xconv_conversions_total"
	conversionsDurationName = "xconv_conversion_duration_seconds"

	labelKind    = "kind"
	labelOutcome = "outcome"

	outcomeSuccess     = "success"
	outcomeUnsupported = "unsupported_target_type"
	outcomeParse       = "source_parse_failure"
	outcomeNull        = "null_not_allowed"
	outcomeAmbiguous   = "ambiguous_generic_element"
	outcomeNumeral     = "numeral_syntax_error"
	outcomeFailure     = "failure"

	helpConversionsTotal    = "Total number of conversions by target kind and outcome."
	helpConversionsDuration = "Duration of conversions by target kind in seconds."
)

// Collector exposes conversion counters and latencies, it observes conversions of a facade
type Collector struct {
	conversions *prometheus.CounterVec
	durations   *prometheus.HistogramVec
}

// NewCollector creates a conversion collector
func NewCollector() *Collector {
	c := &Collector{}
	c.conversions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: conversionsTotalName,
		Help: helpConversionsTotal,
	}, []string{labelKind, labelOutcome})
	c.durations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    conversionsDurationName,
		Help:    helpConversionsDuration,
		Buckets: []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1},
	}, []string{labelKind})

	for _, kind := range desc.Kinds() {
		_ = c.conversions.WithLabelValues(kind.String(), outcomeSuccess)
		_ = c.durations.WithLabelValues(kind.String())
	}
	return c
}

// Observe records a single conversion
func (c *Collector) Observe(target *desc.Type, err error, elapsed time.Duration) {
	kind := desc.Invalid.String()
	if target != nil {
		kind = target.Kind().String()
	}
	c.conversions.WithLabelValues(kind, outcomeOf(err)).Inc()
	c.durations.WithLabelValues(kind).Observe(elapsed.Seconds())
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	switch conv.CodeOf(err) {
	case conv.ErrUnsupportedTargetType:
		return outcomeUnsupported
	case conv.ErrSourceParseFailure:
		return outcomeParse
	case conv.ErrNullNotAllowed:
		return outcomeNull
	case conv.ErrAmbiguousGenericElement:
		return outcomeAmbiguous
	case conv.ErrNumeralSyntax:
		return outcomeNumeral
	}
	return outcomeFailure
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.conversions.Describe(ch)
	c.durations.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.conversions.Collect(ch)
	c.durations.Collect(ch)
}
