// Package notify mengirim e-mail pemberitahuan keputusan pengajuan pensiun.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Decision adalah isi pemberitahuan keputusan verifikasi.
type Decision struct {
	To          string
	Nama        string
	NIP         string
	PengajuanID uint
	Status      string // diterima | ditolak
	Catatan     string
}

type Notifier interface {
	NotifyDecision(ctx context.Context, d Decision) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPOptions struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type Mailer struct {
	from   string
	dialer sender
	log    *zap.Logger
}

func NewMailer(opts SMTPOptions, log *zap.Logger) *Mailer {
	return &Mailer{
		from:   opts.From,
		dialer: gomail.NewDialer(opts.Host, opts.Port, opts.User, opts.Password),
		log:    log,
	}
}

var bodyTmpl = template.Must(template.New("keputusan").Parse(`<p>Yth. {{.Nama}} (NIP {{.NIP}}),</p>
<p>Pengajuan pensiun Anda dengan nomor {{.PengajuanID}} telah <strong>{{.Status}}</strong>.</p>
{{- with .Catatan}}
<p>Catatan verifikator: {{.}}</p>
{{- end}}
<p>Pesan ini dikirim otomatis oleh SIPENSIUN.</p>`))

func (m *Mailer) NotifyDecision(ctx context.Context, d Decision) error {
	if d.To == "" {
		return nil
	}

	var body bytes.Buffer
	if err := bodyTmpl.Execute(&body, d); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", d.To)
	msg.SetHeader("Subject", fmt.Sprintf("Pengajuan pensiun %s", d.Status))
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("notify: kirim e-mail ke %s: %w", d.To, err)
	}
	m.log.Info("notifikasi keputusan terkirim", zap.Uint("pengajuan_id", d.PengajuanID), zap.String("status", d.Status))
	return nil
}

// Nop dipakai bila SMTP tidak dikonfigurasi.
type Nop struct{}

func (Nop) NotifyDecision(context.Context, Decision) error { return nil }
