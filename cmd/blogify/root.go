package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/Naitik-Lodhi/Blogify-project/log"
)

type Configuration struct {
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Bleve struct {
		Index string `toml:"index"`
	} `toml:"bleve"`
	Auth struct {
		KeyPath string `toml:"key"`
	} `toml:"auth"`
	Web struct {
		Addr string `toml:"addr"`
	} `toml:"web"`
}

var (
	// flags
	env        string
	configFile string

	// logger
	logger log.Logger

	// configuration file
	config Configuration
)

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
}

var RootCmd = cobra.Command{
	Use:   "blogify",
	Short: "Write, share and favorite blogs with Blogify",
	Long:  "Write, share and favorite blogs with Blogify",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env)

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}

		data, err := ioutil.ReadFile(configFile)
		if err != nil {
			logger.Fatal("could not read configuration file:", err)
		}

		if err := toml.Unmarshal(data, &config); err != nil {
			logger.Fatal("error unmarshalling configuration:", err)
		}
	},
}

func inheritPersistentPreRun(cmd *cobra.Command) {
	ppr := cmd.PersistentPreRun
	cmd.PersistentPreRun = func(c *cobra.Command, args []string) {
		// Run parent persistent pre run
		if cmd.Parent() != nil && cmd.Parent().PersistentPreRun != nil {
			cmd.Parent().PersistentPreRun(c, args)
		}

		// Run command persistent pre run
		if ppr != nil {
			ppr(c, args)
		}
	}
}

func readSigningKey() []byte {
	keyData, err := ioutil.ReadFile(config.Auth.KeyPath)
	if err != nil {
		logger.Fatal("could not open key file:", err)
	}

	var key struct {
		Key string `json:"k"`
	}
	if err := json.Unmarshal(keyData, &key); err != nil {
		logger.Fatal("could not read key file:", err)
	}

	return []byte(key.Key)
}
