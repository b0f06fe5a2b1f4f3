package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	PengajuanDecisions *prometheus.CounterVec
	DocumentsUploaded  *prometheus.CounterVec
	UploadRejected     prometheus.Counter
	LettersSaved       *prometheus.CounterVec
	LettersRendered    *prometheus.CounterVec
}

// New mendaftarkan metrik ke registerer. Test memakai prometheus.NewRegistry()
// agar tidak bentrok dengan registry default.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PengajuanDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sipensiun_pengajuan_decisions_total",
			Help: "Jumlah keputusan pengajuan pensiun per status",
		}, []string{"status"}),
		DocumentsUploaded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sipensiun_documents_uploaded_total",
			Help: "Jumlah dokumen pengajuan yang berhasil diunggah per tipe pensiun",
		}, []string{"tipe"}),
		UploadRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "sipensiun_documents_rejected_total",
			Help: "Jumlah unggahan yang ditolak validasi ukuran/tipe",
		}),
		LettersSaved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sipensiun_letters_saved_total",
			Help: "Jumlah surat yang disimpan per operasi",
		}, []string{"op"}),
		LettersRendered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sipensiun_letters_rendered_total",
			Help: "Jumlah dokumen cetak yang dirender per template",
		}, []string{"template"}),
	}
}
