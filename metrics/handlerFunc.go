package metrics

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/cpu"
)

const timeObserve = 1 * time.Second

type Metrics struct {
	CPU             prometheus.Gauge
	AllocatedMemory prometheus.Gauge
	RequestsNow     prometheus.Gauge
	Requests        prometheus.Counter
	FlagRequests    prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flagserv_cpu_usage",
			Help: "CPU usage",
		}),
		AllocatedMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flagserv_allocated_memory",
		}),
		RequestsNow: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flagserv_requests_are_being_processed",
			Help: "How many requests are being processed",
		}),
		Requests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flagserv_requests_were_processed",
			Help: "How many requests were processed summary",
		}),
		FlagRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flagserv_flag_requests_were_processed",
			Help: "How many requests hit the flag route",
		}),
	}
	reg.MustRegister(
		m.CPU,
		m.AllocatedMemory,
		m.RequestsNow,
		m.Requests,
		m.FlagRequests,
	)
	return m
}

var reg *prometheus.Registry
var GlobalMetrics *Metrics

func UpdateCPU() {
	p, err := cpu.Percent(0, false)
	if err == nil {
		GlobalMetrics.CPU.Set(p[0])
	}
}

func UpdateMemory() {
	m := runtime.MemStats{}
	runtime.ReadMemStats(&m)
	GlobalMetrics.AllocatedMemory.Set(float64(m.Alloc))
}

func Init() {
	reg = prometheus.NewRegistry()
	GlobalMetrics = NewMetrics(reg)
	go func() {
		t := time.NewTicker(timeObserve)
		for {
			<-t.C
			// cpu
			UpdateCPU()

			// memory
			UpdateMemory()
		}
	}()
}

func Handler() http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
