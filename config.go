package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind            string
	maxPlayers      int
	maxRooms        int
	port            int
	prefix          string
	profile         bool
	roomIdleTimeout time.Duration
	sweepInterval   time.Duration
	tlsCert         string
	tlsKey          string
	verbose         bool
	version         bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.maxRooms < 1 {
		return fmt.Errorf("invalid room limit (must be at least 1): %d", c.maxRooms)
	}
	if c.maxPlayers < 2 {
		return fmt.Errorf("invalid player limit (must be at least 2): %d", c.maxPlayers)
	}
	if c.sweepInterval < time.Second {
		return fmt.Errorf("invalid sweep interval (must be at least 1s): %s", c.sweepInterval)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PITCHPARTY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "pitchparty",
		Short:         "A rotating-interviewer party game, played room by room in the browser.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: PITCHPARTY_BIND)")
	fs.IntVar(&cfg.maxPlayers, "max-players", 12, "maximum players per room (env: PITCHPARTY_MAX_PLAYERS)")
	fs.IntVar(&cfg.maxRooms, "max-rooms", 200, "maximum live rooms (env: PITCHPARTY_MAX_ROOMS)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: PITCHPARTY_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: PITCHPARTY_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: PITCHPARTY_PROFILE)")
	fs.DurationVar(&cfg.roomIdleTimeout, "room-idle-timeout", 45*time.Minute, "time before idle rooms are reaped (env: PITCHPARTY_ROOM_IDLE_TIMEOUT)")
	fs.DurationVar(&cfg.sweepInterval, "sweep-interval", time.Minute, "interval between room sweeps (env: PITCHPARTY_SWEEP_INTERVAL)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: PITCHPARTY_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: PITCHPARTY_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: PITCHPARTY_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: PITCHPARTY_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("pitchparty v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
