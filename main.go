package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/jasonlvhit/gocron"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geo-nav/api"
	"github.com/a-bouts/geo-nav/xmpp"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	listen        string
	logLevel      string
	logJSON       bool
	statsInterval time.Duration
	cpuprofile    bool
	xmpp          xmpp.Config
}

// configure reads .env, flags and GEO_* variables, then sets up logging.
func configure(args []string) (options, error) {
	dotenvErr := godotenv.Load()

	var o options
	fs := flag.NewFlagSet("geo-nav", flag.ContinueOnError)
	fs.StringVar(&o.listen, "listen", ":8888", "HTTP listen address")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level")
	fs.BoolVar(&o.logJSON, "log-json", false, "log as JSON")
	fs.DurationVar(&o.statsInterval, "stats-interval", time.Minute, "period of the calculation statistics report")
	fs.BoolVar(&o.cpuprofile, "cpuprofile", false, "write a CPU profile until shutdown")
	fs.StringVar(&o.xmpp.Host, "xmpp-host", "", "")
	fs.StringVar(&o.xmpp.Jid, "xmpp-jid", "", "")
	fs.StringVar(&o.xmpp.Password, "xmpp-password", "", "")
	fs.StringVar(&o.xmpp.To, "xmpp-to", "", "")
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("GEO")); err != nil {
		return o, fmt.Errorf("parse config: %w", err)
	}

	if err := initLogger(o.logLevel, o.logJSON); err != nil {
		return o, err
	}
	// reported once the level is known
	if dotenvErr != nil {
		log.Info("No .env file found (using environment variables)")
	}
	return o, nil
}

func run(args []string) error {
	o, err := configure(args)
	if err != nil {
		return err
	}

	if o.cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	stats := api.NewStats()

	s := gocron.NewScheduler()
	if err := s.Every(seconds(o.statsInterval)).Seconds().Do(stats.Report); err != nil {
		return fmt.Errorf("schedule stats report: %w", err)
	}
	stopScheduler := s.Start()
	defer close(stopScheduler)

	router := api.InitServer(stats)

	h := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	h = handlers.CombinedLoggingHandler(log.StandardLogger().Writer(), h)

	srv := &http.Server{
		Addr:              o.listen,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	x := xmpp.Xmpp{Config: o.xmpp}
	go notify(x, fmt.Sprintf("geo-nav listening on %s", o.listen))

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", o.listen).Info("Start server")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	stats.Report()
	return nil
}

func notify(x xmpp.Xmpp, message string) {
	if !x.Configured() {
		log.Debug("No xmpp notification configured")
		return
	}
	if err := x.Send(message); err != nil {
		log.WithError(err).Warn("Could not send xmpp notification")
	}
}

func seconds(d time.Duration) uint64 {
	s := uint64(d / time.Second)
	if s == 0 {
		return 1
	}
	return s
}
