/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package monitor

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sealdb/mysqlstack/xlog"
)

var (
	authorizationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authority_authorization_decisions_total",
			Help: "Counter of authorization decisions by outcome.",
		}, []string{"outcome"})

	authenticationFailedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "authority_authentication_failed_total",
			Help: "Counter of failed authentication attempts.",
		})
)

func init() {
	prometheus.MustRegister(authorizationCounter)
	prometheus.MustRegister(authenticationFailedCounter)
}

// AuthorizationAllowedInc increase the allowed decision counter.
func AuthorizationAllowedInc() {
	authorizationCounter.WithLabelValues("allowed").Inc()
}

// AuthorizationDeniedInc increase the denied decision counter for the reason.
func AuthorizationDeniedInc(reason string) {
	authorizationCounter.WithLabelValues(reason).Inc()
}

// AuthenticationFailedInc increase the failed authentication counter.
func AuthenticationFailedInc() {
	authenticationFailedCounter.Inc()
}

// Start used to start the metrics server.
func Start(log *xlog.Log, addr string) {
	go func() {
		log.Info("monitor.start[%v]", addr)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("monitor.start.error[%+v]", err)
		}
	}()
}
