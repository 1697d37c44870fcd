package xmpp

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"
)

var ErrMissingConfig = errors.New("missing xmpp config")

type (
	// Config of the notifier. Host defaults to the domain of Jid.
	Config struct {
		Host     string
		Jid      string
		Password string
		To       string
	}

	Xmpp struct {
		Config Config
	}
)

func serverName(jid string) string {
	parts := strings.SplitN(jid, "@", 2)
	if len(parts) < 2 {
		return jid
	}
	return parts[1]
}

func (x Xmpp) Configured() bool {
	return len(x.Config.Jid) != 0 && len(x.Config.Password) != 0 && len(x.Config.To) != 0
}

func (x Xmpp) options() xmpp.Options {
	host := x.Config.Host
	if len(host) == 0 {
		host = serverName(x.Config.Jid)
	}

	return xmpp.Options{
		Host:          host,
		User:          x.Config.Jid,
		Password:      x.Config.Password,
		NoTLS:         true,
		StartTLS:      true,
		TLSConfig:     &tls.Config{ServerName: strings.Split(host, ":")[0]},
		Debug:         false,
		Session:       false,
		Status:        "xa",
		StatusMessage: "geo-nav",
	}
}

// Send delivers message to the configured recipient.
func (x Xmpp) Send(message string) error {

	if !x.Configured() {
		return ErrMissingConfig
	}

	options := x.options()

	log.WithField("host", options.Host).Debug("Create xmpp client")
	talk, err := options.NewClient()
	if err != nil {
		return fmt.Errorf("xmpp client: %w", err)
	}
	defer talk.Close()

	log.WithField("to", x.Config.To).Debug("Send xmpp message")
	if _, err := talk.Send(xmpp.Chat{Remote: x.Config.To, Type: "chat", Text: message}); err != nil {
		return fmt.Errorf("xmpp send: %w", err)
	}

	return nil
}
