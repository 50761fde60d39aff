package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const reportCount = 20

// Метрики
var (
	runsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_report_runs_total",
		Help: "Количество запусков отчётов по HTTP-статусу",
	}, []string{"status"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_report_run_duration_seconds",
		Help:    "Длительность запуска отчёта в секундах",
		Buckets: []float64{0.1, 0.3, 0.5, 1, 2, 5},
	})
)

var customers = []string{"Arjun Mehta", "Riya Kapoor", "Dev Sharma"}

func runRandomReport(baseURL string) {
	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	id := 1 + rand.Intn(reportCount)

	var body bytes.Buffer
	if rand.Intn(2) == 0 {
		fmt.Fprintf(&body, `{"customer_name": %q}`, customers[rand.Intn(len(customers))])
	}

	resp, err := http.Post(fmt.Sprintf("%s/reports/%d", baseURL, id), "application/json", &body)
	if err != nil {
		runsCounter.WithLabelValues("error").Inc()
		return
	}
	defer resp.Body.Close()

	runsCounter.WithLabelValues(fmt.Sprint(resp.StatusCode)).Inc()
}

func main() {
	baseURL := os.Getenv("REPORTING_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	for {
		runRandomReport(baseURL)
		time.Sleep(time.Duration(500+rand.Intn(4500)) * time.Millisecond)
	}
}
