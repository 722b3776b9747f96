package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Naitik-Lodhi/Blogify-project/bolt"
	"github.com/Naitik-Lodhi/Blogify-project/errors"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

func init() {
	PrefsCommand.AddCommand(&PrefsThemeCommand)
	PrefsCommand.AddCommand(&PrefsViewCommand)

	inheritPersistentPreRun(&PrefsCommand)
	inheritPersistentPreRun(&PrefsThemeCommand)
	inheritPersistentPreRun(&PrefsViewCommand)

	RootCmd.AddCommand(&PrefsCommand)
}

var PrefsCommand = cobra.Command{
	Use:   "prefs",
	Short: "Show the display preferences",
	Long:  "Show the theme, view and intro popup preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && args[0] == "help" {
			return cmd.Help()
		}

		driver := bolt.Driver{}
		err := driver.Open(config.Bolt.Store)
		defer driver.Close()
		if err != nil {
			return errors.New("error opening db", errors.WithCause(err))
		}

		store := bolt.PreferencesRepository{Driver: &driver}
		prefs, err := services.NewPreferencesService(&store).Get()
		if err != nil {
			return err
		}

		data, err := json.Marshal(prefs)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	},
}

var PrefsThemeCommand = cobra.Command{
	Use:   "theme",
	Short: "Toggle between light and dark",
	Long:  "Toggle between the light and dark themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && args[0] == "help" {
			return cmd.Help()
		}

		driver := bolt.Driver{}
		err := driver.Open(config.Bolt.Store)
		defer driver.Close()
		if err != nil {
			return errors.New("error opening db", errors.WithCause(err))
		}

		store := bolt.PreferencesRepository{Driver: &driver}
		prefs, err := services.NewPreferencesService(&store).ToggleTheme()
		if err != nil {
			return err
		}

		cmd.Println(prefs.Theme)
		return nil
	},
}

var PrefsViewCommand = cobra.Command{
	Use:   "view",
	Short: "Toggle between grid and list",
	Long:  "Toggle between the grid and list views",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && args[0] == "help" {
			return cmd.Help()
		}

		driver := bolt.Driver{}
		err := driver.Open(config.Bolt.Store)
		defer driver.Close()
		if err != nil {
			return errors.New("error opening db", errors.WithCause(err))
		}

		store := bolt.PreferencesRepository{Driver: &driver}
		prefs, err := services.NewPreferencesService(&store).ToggleView()
		if err != nil {
			return err
		}

		cmd.Println(prefs.View)
		return nil
	},
}
