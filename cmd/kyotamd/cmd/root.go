package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	"github.com/msto63/kyotamd/internal/settings"
)

var (
	cfgFile string
	verbose bool

	appSettings *settings.Settings
	logger      *mdwlog.Logger
)

// errReported marks failures whose details were already printed
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "kyotamd",
	Short: "kyotamd - line-oriented command language",
	Long: `kyotamd runs programs written in a small command language:
one command per line, a capitalized name followed by arguments.

  Var i 0
  Label loop
  Var i (Calc (Var i) + 1)
  Print "Iteration" (Var i)
  If (Cond (Var i) < 3) loop

Configuration is read from ./kyotamd.toml, ./kyotamd.yaml or
~/.config/kyotamd/config.toml unless --config is given. Every key can be
overridden with KYOTAMD_<SECTION>_<KEY>, e.g. KYOTAMD_LOG_LEVEL=debug.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(cfgFile)
		if err != nil {
			return err
		}
		l, err := s.Logger(os.Stderr, verbose)
		if err != nil {
			return err
		}

		appSettings = s
		logger = l
		mdwlog.SetDefault(l)

		if s.Source != "" {
			logger.Debug("Configuration loaded", mdwlog.Fields{"configPath": s.Source})
		}
		return nil
	},
}

// Execute runs the root command and prints the error, if any
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered kyotamd.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

// describe formats err with its source location when known
func describe(source string, err error) string {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		if line, ok := mdwErr.Detail("line"); ok {
			return fmt.Sprintf("%s:%v: %s", source, line, mdwErr.Message())
		}
	}
	return fmt.Sprintf("%s: %v", source, err)
}

// reported wraps err so Execute does not print it again while ExitCode
// still sees its code
func reported(err error) error {
	return &reportedError{err: err}
}

type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() []error {
	return []error{e.err, errReported}
}
