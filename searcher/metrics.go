package searcher

import (
	"time"
)

// SearchMetric describes the work done to pick a single move.
type SearchMetric struct {
	Duration time.Duration
	Nodes    int64 // Positions scored
	Leaves   int64 // Finished games reached
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddLeaf()
	Complete() SearchMetric
}

type metricsCollector struct {
	startTime time.Time
	nodes     int64
	leaves    int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes = 0
	m.leaves = 0
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddLeaf() {
	m.leaves++
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                 {}
func (m *noMetricsCollector) AddNode()               {}
func (m *noMetricsCollector) AddLeaf()               {}
func (m *noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }
