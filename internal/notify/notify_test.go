package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestNotifyDecision(t *testing.T) {
	fake := &fakeSender{}
	m := &Mailer{from: "noreply@sipensiun.local", dialer: fake, log: zap.NewNop()}

	err := m.NotifyDecision(context.Background(), Decision{
		To: "ahmad@example.go.id", Nama: "Ahmad", NIP: "196501011990031001",
		PengajuanID: 7, Status: "ditolak", Catatan: "SKP belum lengkap",
	})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, []string{"ahmad@example.go.id"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Pengajuan pensiun ditolak"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SKP belum lengkap")
}

func TestNotifyDecisionSkipsEmptyRecipient(t *testing.T) {
	fake := &fakeSender{}
	m := &Mailer{dialer: fake, log: zap.NewNop()}
	require.NoError(t, m.NotifyDecision(context.Background(), Decision{Status: "diterima"}))
	assert.Empty(t, fake.sent)
}

func TestNotifyDecisionWrapsError(t *testing.T) {
	boom := errors.New("connection refused")
	m := &Mailer{dialer: &fakeSender{err: boom}, log: zap.NewNop()}
	err := m.NotifyDecision(context.Background(), Decision{To: "a@b.c", Status: "diterima"})
	assert.ErrorIs(t, err, boom)
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	assert.NoError(t, n.NotifyDecision(context.Background(), Decision{To: "a@b.c"}))
}
