package mail

import (
	"bufio"
	"context"
	"io"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proapp/internal/config"
)

// fakeSMTP accepts one session without STARTTLS or AUTH and records it.
type fakeSMTP struct {
	ln       net.Listener
	mu       sync.Mutex
	from     string
	rcpt     string
	data     string
	rejectTo string
	done     chan struct{}
}

func startFakeSMTP(t *testing.T, rejectTo string) *fakeSMTP {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := &fakeSMTP{ln: ln, rejectTo: rejectTo, done: make(chan struct{})}
	t.Cleanup(func() { _ = ln.Close() })
	go s.serve()
	return s
}

func (s *fakeSMTP) port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *fakeSMTP) serve() {
	defer close(s.done)
	conn, err := s.ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	r := bufio.NewReader(conn)
	reply := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }

	reply("220 fake ESMTP")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.TrimRight(line, "\r\n")
		upper := strings.ToUpper(cmd)
		switch {
		case strings.HasPrefix(upper, "EHLO"), strings.HasPrefix(upper, "HELO"):
			reply("250 fake")
		case strings.HasPrefix(upper, "MAIL FROM:"):
			s.mu.Lock()
			s.from = cmd[len("MAIL FROM:"):]
			s.mu.Unlock()
			reply("250 OK")
		case strings.HasPrefix(upper, "RCPT TO:"):
			to := cmd[len("RCPT TO:"):]
			if s.rejectTo != "" && strings.Contains(to, s.rejectTo) {
				reply("550 no such user")
				continue
			}
			s.mu.Lock()
			s.rcpt = to
			s.mu.Unlock()
			reply("250 OK")
		case upper == "DATA":
			reply("354 go ahead")
			var b strings.Builder
			for {
				l, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				b.WriteString(l)
			}
			s.mu.Lock()
			s.data = b.String()
			s.mu.Unlock()
			reply("250 queued")
		case upper == "QUIT":
			reply("221 bye")
			return
		default:
			reply("250 OK")
		}
	}
}

func testSender(port int) *SMTPSender {
	return NewSMTPSender(&config.Config{Email: config.EmailConfig{
		SMTPHost:  "127.0.0.1",
		SMTPPort:  port,
		FromEmail: "no-reply@proapp.test",
		FromName:  "Pro",
		UseTLS:    true,
	}})
}

func TestSMTPSender_Send(t *testing.T) {
	srv := startFakeSMTP(t, "")
	sender := testSender(srv.port())

	err := sender.Send(context.Background(), Message{To: "kari@proapp.test", Subject: "Aktiver kontoen din", HTML: "<p>hei</p>"})
	require.NoError(t, err)
	<-srv.done

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Equal(t, "<no-reply@proapp.test>", srv.from)
	assert.Equal(t, "<kari@proapp.test>", srv.rcpt)
	assert.Contains(t, srv.data, `From: "Pro" <no-reply@proapp.test>`)
	assert.Contains(t, srv.data, "To: kari@proapp.test\r\n")
	assert.Contains(t, srv.data, "Content-Type: text/html")
	assert.Contains(t, srv.data, "<p>hei</p>")
}

func TestSMTPSender_RejectedRecipient(t *testing.T) {
	srv := startFakeSMTP(t, "ghost@")
	err := testSender(srv.port()).Send(context.Background(), Message{To: "ghost@proapp.test", Subject: "x", HTML: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rcpt to")
}

func TestSMTPSender_DialError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	err = testSender(port).Send(context.Background(), Message{To: "a@b.c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial 127.0.0.1:"+strconv.Itoa(port))
}

func TestBuildMessage(t *testing.T) {
	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	html := "<p>Tilbakestill passordet ditt – " + strings.Repeat("æ", 60) + "</p>"
	raw, err := buildMessage(
		mail.Address{Name: "Pro", Address: "no-reply@proapp.test"},
		Message{To: "ola@proapp.test", Subject: "Tilbakestill passordet ditt", HTML: html},
		date,
	)
	require.NoError(t, err)

	parsed, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "ola@proapp.test", parsed.Header.Get("To"))
	assert.Equal(t, "Fri, 01 Mar 2024 12:00:00 +0000", parsed.Header.Get("Date"))
	assert.Regexp(t, `^<[0-9a-f-]{36}@proapp\.test>$`, parsed.Header.Get("Message-ID"))

	subject, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Tilbakestill passordet ditt", subject)

	body := new(strings.Builder)
	_, err = io.Copy(body, quotedprintable.NewReader(parsed.Body))
	require.NoError(t, err)
	assert.Equal(t, html, body.String())
}
