package commands

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"primecipher/internal/app"
	"primecipher/internal/pkg/config"
)

var (
	primeLow  int64
	primeHigh int64
	seed      int64

	logLevel string
	logType  string
	logFile  string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "primecipher",
		Short: "Teaching RSA over machine-word integers",
		Long: "primecipher generates two-prime keypairs over small integers and " +
			"encrypts messages one byte per modular exponentiation. It is a " +
			"number-theory teaching tool, not a secure cipher.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A .env file, when present, supplies defaults for flags
			// the user did not set.
			_ = godotenv.Load()
			applyEnvDefault(cmd, "prime-low", "PRIMECIPHER_PRIME_LOW", &primeLow)
			applyEnvDefault(cmd, "prime-high", "PRIMECIPHER_PRIME_HIGH", &primeHigh)
			applyEnvDefault(cmd, "seed", "PRIMECIPHER_SEED", &seed)

			cfg := app.Config{
				Keygen: config.KeygenSettings{
					PrimeLow:  primeLow,
					PrimeHigh: primeHigh,
					Seed:      seed,
				},
				Logger: config.LoggerSettings{
					LogLevel:   logLevel,
					LogType:    logType,
					FilePath:   logFile,
					MaxSize:    10,
					MaxBackups: 3,
					MaxAge:     28,
				},
			}

			var err error
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().Int64Var(&primeLow, "prime-low", config.DefaultPrimeLow, "lower bound for prime sampling")
	root.PersistentFlags().Int64Var(&primeHigh, "prime-high", config.DefaultPrimeHigh, "upper bound for prime sampling")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "PRNG seed (0 seeds from the wall clock)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", config.LogLevelInfo, "log level (debug|info|warning|error)")
	root.PersistentFlags().StringVar(&logType, "log-type", config.LogTypeConsole, "log backend (console|file)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (log-type=file)")

	root.AddCommand(sessionCmd(), keygenCmd(), encryptCmd(), decryptCmd())
	return root.Execute()
}

// applyEnvDefault folds an environment value into an int64 flag the
// user left untouched.
func applyEnvDefault(cmd *cobra.Command, flag, env string, dst *int64) {
	if cmd.Root().PersistentFlags().Changed(flag) {
		return
	}
	raw, ok := os.LookupEnv(env)
	if !ok {
		return
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*dst = v
	}
}
