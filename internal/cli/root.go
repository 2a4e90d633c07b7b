package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/denismitr/camcal"
	"github.com/denismitr/camcal/internal/logging"
)

const configEnv = "CAMCAL_CONFIG"

type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *camcal.Config
	logger *slog.Logger
}

func Execute() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		slog.Error("camcal failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "camcal",
		Short:         "Convert white balance presets and check colour matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = logging.Setup(a.logLevel, a.logFormat, cmd.ErrOrStderr()).
				With("run_id", uuid.NewString(), "command", cmd.Name())

			path := a.configPath
			if path == "" {
				path = os.Getenv(configEnv)
			}

			cfg, err := camcal.LoadConfig(path)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger.Debug("config loaded", "path", path)
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file (default $"+configEnv+")")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "text or json")

	cmd.AddCommand(
		newPresetsCmd(a),
		newCheckCoeffsCmd(a),
		newValidateCmd(a),
		newLookupCmd(a),
	)

	return cmd
}
