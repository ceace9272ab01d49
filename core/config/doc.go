// Package config assembles the fad configuration from every source with viper.
//
// Precedence, highest first: command line flags bound through Options.FlagKeys,
// environment variables (FIGMA_TOKEN maps to figma.token), a .env file, the
// optional fad.toml, and finally the `default` struct tags of each section.
//
// Sections live next to the code that reads them: figma.Config, download.Config,
// optimize.Config, storage.Config, database.Config, logger.Config and
// server.Config.
//
//	cfg, err := config.Load(config.Options{Dir: ".", File: "fad.toml", Flags: cmd.Flags(), FlagKeys: keys})
package config
