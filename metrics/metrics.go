// Package metrics counter Prometheus untuk operasi inti aplikasi.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemoteSyncTotal hasil operasi sinkronisasi ke remote store,
	// dibagi per operasi dan outcome (persisted/local_only/failed).
	RemoteSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "undangan_remote_sync_total",
		Help: "Hasil operasi sinkronisasi remote store",
	}, []string{"operation", "outcome"})

	// RemoteFallbackTotal berapa kali pembacaan remote jatuh ke cache
	// lokal atau dokumen bawaan.
	RemoteFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "undangan_remote_fallback_total",
		Help: "Pembacaan remote yang jatuh ke fallback",
	}, []string{"operation", "source"})

	// BroadcastDispatchTotal jumlah pesan undangan yang didispatch ke
	// deep-link WhatsApp.
	BroadcastDispatchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "undangan_broadcast_dispatch_total",
		Help: "Jumlah dispatch pesan undangan massal",
	})

	// GuestbookSubmitTotal pengiriman buku tamu per outcome.
	GuestbookSubmitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "undangan_guestbook_submit_total",
		Help: "Pengiriman buku tamu",
	}, []string{"outcome"})
)
