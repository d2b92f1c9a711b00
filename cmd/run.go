package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobmatch/internal/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process a stream of commands and print one reply per command",
	Long: `Process a stream of commands and print one reply per command.

The input starts with the skill catalog: a count followed by that many skill
names, e.g. "2 go sql". When the config sets skills.names or skills.file the
catalog comes from there instead and the input must start with the first
command. A leading count line is then reported as an invalid command.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "file with commands. Default is stdin.")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the jobmatch", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	input, closeInput, err := openInput(cmd)
	if err != nil {
		logger.Fatal("opening commands input", zap.Error(err))
	}
	defer closeInput()

	sc := bufio.NewScanner(input)

	names, fromConfig, err := catalogNames(config, sc)
	if err != nil {
		logger.Fatal("loading skill catalog", zap.Error(err))
	}

	dispatcher := newDispatcher(config, names, fromConfig, logger)

	stats, err := dispatcher.Run(ctx, sc, cmd.OutOrStdout())
	logStats(logger, stats)
	if err != nil {
		logger.Fatal("processing commands", zap.Error(err))
	}
}

func openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	path, _ := cmd.Flags().GetString("input")
	if path == "" {
		return cmd.InOrStdin(), func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %q: %w", path, err)
	}

	return file, func() { file.Close() }, nil
}
