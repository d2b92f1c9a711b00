package cmd

import (
	"bufio"
	"errors"

	"go.uber.org/zap"

	"github.com/spigell/jobmatch/internal/command"
	"github.com/spigell/jobmatch/internal/matching"
	"github.com/spigell/jobmatch/internal/skills"
)

// catalogNames resolves the skill catalog from the config. When the config has
// none, the catalog header is read from sc. fromConfig reports which source won.
func catalogNames(config *Config, sc *bufio.Scanner) (names []string, fromConfig bool, err error) {
	names, err = skills.Load(skillSource(config))
	if err == nil {
		return names, true, nil
	}

	if !errors.Is(err, skills.ErrNotConfigured) || sc == nil {
		return nil, false, err
	}

	names, err = command.ReadCatalog(sc)
	return names, false, err
}

func skillSource(config *Config) skills.Source {
	return skills.Source{
		Name:  "skill catalog",
		Names: config.Skills.Names,
		File:  config.Skills.File,
	}
}

func newDispatcher(config *Config, names []string, fromConfig bool, logger *zap.Logger) *command.Dispatcher {
	catalog := matching.NewCatalog(names)

	logger.Info("skill catalog loaded", zap.Int("count", catalog.Len()))
	logger.Debug("skill catalog", zap.Strings("skills", catalog.Names()))

	return command.New(
		&command.Config{
			JobListLimit:    config.JobList.Limit,
			ExternalCatalog: fromConfig,
		},
		&command.Deps{
			Store:  matching.NewStore(catalog),
			Logger: logger,
		},
	)
}

func logStats(logger *zap.Logger, stats command.Stats) {
	logger.Info("processed commands",
		zap.Int("executed", stats.Executed),
		zap.Int("rejected", stats.Rejected),
		zap.Int("unknown", stats.Unknown),
	)
}
