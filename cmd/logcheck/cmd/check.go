package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tessera-storage/foundation/core/config"
	tserror "github.com/tessera-storage/foundation/core/error"
	"github.com/tessera-storage/foundation/core/log"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Emit test messages on the configured backend",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.FromEnv()
	}

	if level != "" {
		cfg.Level = level
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if tag != "" {
		cfg.Tag = tag
	}
	if burst > 0 {
		cfg.RateBurst = burst
	}
	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("cannot load configuration", err)
		return err
	}

	session := uuid.New().String()[:8]
	logger := log.New().WithName("logcheck-" + session)
	if err := cfg.Apply(logger); err != nil {
		printError("cannot apply configuration", err)
		return err
	}
	if err := logger.Open(); err != nil {
		printError("cannot open backend", err)
		return err
	}
	defer logger.Close()

	fmt.Printf("session %s: backend=%s level=%s\n", session, cfg.Backend, cfg.Level)

	for _, p := range log.AllPriorities() {
		logger.Logf(p, "level probe at %s", p)
	}

	logger.InfofWithCode(tserror.IndexCorrupt, "annotated probe for volume %d", 7)
	logger.LogUnrecoverable(tserror.ChecksumMismatch, "unrecoverable probe")

	rs := cfg.NewRateState()
	for i := 0; i < cfg.RateBurst*3; i++ {
		n := i
		logger.Ratelimit(rs, func(l *log.Logger) {
			l.Infof("rate limited probe %d", n)
		})
	}
	if missed := rs.Missed(); missed > 0 {
		fmt.Printf("rate limiter suppressed %d of %d probes\n", missed, cfg.RateBurst*3)
	}

	logger.Infof("pointer probe: %v", log.Ptr(&cfg))
	logger.LogBacktrace(log.Info)

	fmt.Println("all probes emitted")
	return nil
}
