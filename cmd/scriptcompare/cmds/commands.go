package cmds

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/li1125435097/EassyCode/pkg/compare"
	"github.com/li1125435097/EassyCode/pkg/config"
	"github.com/li1125435097/EassyCode/pkg/demos"
)

var (
	// debugLog is whether to log debug statements.
	debugLog bool
	// logDest is the file path where logs should go, in addition to stderr.
	logDest string

	conf *config.Config
)

// New returns an initialized command tree. Running the root command with no
// arguments executes the two canonical demonstrations in order: the fixed sum
// and the empty-loop timing.
func New() *cobra.Command {
	conf = config.NewFromEnv()

	rootCommand := &cobra.Command{
		Use:   "scriptcompare",
		Short: "Sum and timing demonstrations for the script language comparison.",
		Long: `scriptcompare is the Go edition of the scriptLanguageCompare examples.

With no arguments it prints the fixed example sum followed by the wall-clock
time of an empty loop of 10,000,000 iterations, one line each.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			compare.Simple()
			compare.Performance()
			return nil
		},
	}

	rootCommand.PersistentFlags().BoolVar(&debugLog, "log", false, "Enable debug logging.")
	rootCommand.PersistentFlags().StringVar(&logDest, "log-dest", "", "Also write logs to the specified file.")

	sumCommand := &cobra.Command{
		Use:   "sum [a b]",
		Short: "Print the sum of two integers (defaults to the fixed example 3 4).",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  sumCmd,
	}

	benchCommand := &cobra.Command{
		Use:   "bench",
		Short: "Time the empty loop of 10,000,000 iterations.",
		Run: func(cmd *cobra.Command, args []string) {
			compare.Performance()
		},
	}

	asyncCommand := &cobra.Command{
		Use:   "async",
		Short: "Run the future-style async hello demonstration.",
		Run: func(cmd *cobra.Command, args []string) {
			demos.AsyncHello(conf.AsyncDelay)
		},
	}

	threadsCommand := &cobra.Command{
		Use:   "threads",
		Short: "Run the concurrent goroutines demonstration.",
		Run: func(cmd *cobra.Command, args []string) {
			demos.MultipleThread()
		},
	}

	typesCommand := &cobra.Command{
		Use:   "types",
		Short: "Run the static typing demonstration.",
		Run: func(cmd *cobra.Command, args []string) {
			demos.StaticType()
		},
	}

	rootCommand.AddCommand(sumCommand, benchCommand, asyncCommand, threadsCommand, typesCommand)
	return rootCommand
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if debugLog {
		conf.LogLevel = "debug"
	}
	if logDest != "" {
		conf.LogFile = logDest
	}
	return config.SetupLogging(conf)
}

func sumCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		compare.Simple()
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("requires either no operands or exactly two, got %d", len(args))
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "The sum is:", compare.Add(a, b))
	return nil
}
