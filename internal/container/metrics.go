package container

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type counter interface {
	Count() (int, error)
}

var storeEntriesDesc = prometheus.NewDesc(
	"usergroup_store_entries",
	"Current number of entries per entity store",
	[]string{"store"}, nil,
)

// storeCollector reports store sizes at scrape time. A poisoned store is
// skipped and logged rather than failing the whole scrape.
type storeCollector struct {
	logger *logrus.Logger
	stores map[string]counter
}

func newStoreCollector(logger *logrus.Logger, stores map[string]counter) *storeCollector {
	return &storeCollector{logger: logger, stores: stores}
}

func (s *storeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- storeEntriesDesc
}

func (s *storeCollector) Collect(ch chan<- prometheus.Metric) {
	for name, st := range s.stores {
		n, err := st.Count()
		if err != nil {
			if s.logger != nil {
				s.logger.WithError(err).WithField("store", name).Warn("store size unavailable")
			}
			continue
		}
		ch <- prometheus.MustNewConstMetric(storeEntriesDesc, prometheus.GaugeValue, float64(n), name)
	}
}
