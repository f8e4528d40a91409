package utils

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var (
	_ = promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "host_cpu_usage_percent",
		Help: "Host CPU usage since the previous scrape",
	}, GetCPUUsage)

	_ = promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "host_memory_used_percent",
		Help: "Host memory in use",
	}, GetMemoryUsage)
)

// GetCPUUsage returns CPU usage since the previous call, without blocking.
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		log.Printf("Error getting CPU usage: %v", err)
		return 0
	}
	if len(percentage) > 0 {
		return percentage[0]
	}
	return 0
}

func GetMemoryUsage() float64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("Error getting memory usage: %v", err)
		return 0
	}
	return vm.UsedPercent
}
