// Package Metrics exports the counters of a map as prometheus metrics.
package Metrics

import (
	"github.com/g-m-twostay/probe-table/Maps"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "probetable"

// Collector reads a Stats snapshot on every scrape. src must be safe to call from the scraping goroutine, so wrap a
// ProbeMap in a SyncMap before registering it.
type Collector struct {
	src                           Maps.StatsSource
	size, capacity, used, deleted *prometheus.Desc
	resizes, rehashes             *prometheus.Desc
}

// NewCollector for src. table is attached to every metric as the "table" label.
func NewCollector(table string, src Maps.StatsSource) *Collector {
	labels := prometheus.Labels{"table": table}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, labels)
	}
	return &Collector{
		src:      src,
		size:     desc("size", "Occupied slots, live and tombstoned."),
		capacity: desc("capacity", "Length of the slot array."),
		used:     desc("used_elements", "Live entries."),
		deleted:  desc("deleted", "Tombstoned slots."),
		resizes:  desc("resizes_total", "Rebuilds that doubled the capacity."),
		rehashes: desc("rehashes_total", "Rebuilds that purged tombstones at the same capacity."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.used
	ch <- c.deleted
	ch <- c.resizes
	ch <- c.rehashes
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.used, prometheus.GaugeValue, float64(s.UsedElements))
	ch <- prometheus.MustNewConstMetric(c.deleted, prometheus.GaugeValue, float64(s.Deleted))
	ch <- prometheus.MustNewConstMetric(c.resizes, prometheus.CounterValue, float64(s.Resizes))
	ch <- prometheus.MustNewConstMetric(c.rehashes, prometheus.CounterValue, float64(s.Rehashes))
}
