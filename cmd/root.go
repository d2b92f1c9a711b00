package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/jobmatch/internal/ranking"
)

const (
	app = "jobmatch"
)

type Config struct {
	Skills  *SkillsConfig  `mapstructure:"skills"`
	JobList *JobListConfig `mapstructure:"joblist"`
}

type SkillsConfig struct {
	Names []string `mapstructure:"names"`
	File  string   `mapstructure:"file"`
}

type JobListConfig struct {
	Limit int `mapstructure:"limit"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobmatch is a simple cli for matching users with job offers",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("skills.file", "JOBMATCH_SKILLS_FILE"); err != nil {
		log.Fatalf("binding JOBMATCH_SKILLS_FILE environment variable: %v", err)
	}

	viper.SetDefault("joblist.limit", ranking.DefaultLimit)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	// The config file is optional unless it was given explicitly.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return
	}

	log.Fatal(err)
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Skills == nil {
		config.Skills = &SkillsConfig{}
	}
	if config.JobList == nil {
		config.JobList = &JobListConfig{Limit: ranking.DefaultLimit}
	}

	return config, nil
}
