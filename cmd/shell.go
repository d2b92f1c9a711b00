package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobmatch/internal/command"
	"github.com/spigell/jobmatch/internal/logger"
	"github.com/spigell/jobmatch/internal/skills"
)

const (
	shellHelp = "help"
	shellExit = "exit"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run commands interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		shell(cmd)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func shell(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	names, fromConfig, err := catalogNames(config, nil)
	if errors.Is(err, skills.ErrNotConfigured) {
		names, err = promptCatalog()
	}
	if err != nil {
		logger.Fatal("loading skill catalog", zap.Error(err))
	}

	dispatcher := newDispatcher(config, names, fromConfig, logger)
	out := cmd.OutOrStdout()
	printHelp(out)

	prompt := promptui.Prompt{
		Label:    app,
		Validate: validateLine,
	}

	for {
		line, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			break
		}
		if err != nil {
			logger.Fatal("reading command", zap.Error(err))
		}

		line = strings.TrimSpace(line)
		if line == shellExit {
			break
		}
		if line == shellHelp {
			printHelp(out)
			continue
		}

		reply, err := dispatcher.Execute(line)
		if err != nil {
			logger.Warn("command failed", zap.Error(err))
			continue
		}
		fmt.Fprintln(out, reply)
	}

	logStats(logger, dispatcher.Stats())
}

func promptCatalog() ([]string, error) {
	prompt := promptui.Prompt{
		Label: "Skills (space separated)",
	}

	line, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	return strings.Fields(line), nil
}

func validateLine(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	switch tokens[0] {
	case shellHelp, shellExit:
		return nil
	}

	if !command.IsKnown(tokens[0]) {
		return fmt.Errorf("unknown command %q", tokens[0])
	}
	return nil
}

func printHelp(w io.Writer) {
	for _, c := range command.Describe() {
		fmt.Fprintf(w, "  %-60s %s\n", c.Usage(), c.Summary)
	}
	fmt.Fprintf(w, "  %-60s %s\n", shellHelp, "show this help")
	fmt.Fprintf(w, "  %-60s %s\n", shellExit, "leave the shell")
}
