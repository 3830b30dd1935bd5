package mail

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
)

func TestConfirmation(t *testing.T) {
	subject, body := Confirmation("Thandi", "4A9F2CDE")
	assert.Equal(t, "Your Water Leak Report - Reference Code", subject)
	assert.Contains(t, body, "Hi Thandi,")
	assert.Contains(t, body, "Your reference number is: 4A9F2CDE")
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("from@x.org", "to@y.org", "Subj", "line1\nline2"))
	assert.Contains(t, msg, "From: from@x.org\r\nTo: to@y.org\r\nSubject: Subj\r\n")
	assert.Contains(t, msg, "line1\r\nline2")
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := LogSender{Log: logger.NewWithWriter(logger.INFO, &buf)}
	require.NoError(t, s.Send(context.Background(), "to@y.org", "Subj", "body"))
	assert.Contains(t, buf.String(), "to@y.org")
}

func TestSMTPSender_UnreachableHostFails(t *testing.T) {
	// grab a free port and close it so nothing listens there
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, _ := net.SplitHostPort(ln.Addr().String())
	ln.Close()

	s := NewSMTPSender(SMTPConfig{Host: host, Port: port, Sender: "a@b.org"}, logger.NewWithWriter(logger.FATAL, &bytes.Buffer{}))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = s.Send(ctx, "to@y.org", "s", "b")
	require.Error(t, err)
}
