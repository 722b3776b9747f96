package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Naitik-Lodhi/Blogify-project/bolt"
	"github.com/Naitik-Lodhi/Blogify-project/errors"
	"github.com/Naitik-Lodhi/Blogify-project/jwt"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

func init() {
	UserCommand.AddCommand(&UserSignUpCommand)
	UserCommand.AddCommand(&UserLoginCommand)
	UserCommand.AddCommand(&UserLogoutCommand)
	UserCommand.AddCommand(&UserMeCommand)
	UserCommand.AddCommand(&UserAllCommand)
	UserCommand.AddCommand(&UserTokenCommand)

	inheritPersistentPreRun(&UserCommand)
	inheritPersistentPreRun(&UserSignUpCommand)
	inheritPersistentPreRun(&UserLoginCommand)
	inheritPersistentPreRun(&UserLogoutCommand)
	inheritPersistentPreRun(&UserMeCommand)
	inheritPersistentPreRun(&UserAllCommand)
	inheritPersistentPreRun(&UserTokenCommand)

	RootCmd.AddCommand(&UserCommand)
}

func createUserService(driver *bolt.Driver) *services.UserService {
	users := bolt.UserRepository{Driver: driver}
	session := bolt.SessionRepository{Driver: driver}
	encoder := jwt.NewEncodeDecoder(readSigningKey())

	return services.NewUserService(&users, &session, encoder)
}

var UserCommand = cobra.Command{
	Use:   "user",
	Short: "List all the user commands available",
	Long:  "List all the user commands available",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var UserSignUpCommand = cobra.Command{
	Use:   "signup",
	Short: "Create a user and log it in",
	Long:  "Create a user from a name, an email and a password, and make it the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			return cmd.Help()
		}
		if len(args) != 3 {
			return errors.New("user signup wants 3 arguments: name, email, password")
		}

		driver := bolt.Driver{}
		err := driver.Open(config.Bolt.Store)
		defer driver.Close()
		if err != nil {
			return errors.New("error opening db", errors.WithCause(err))
		}

		user, token, err := createUserService(&driver).SignUp(args[0], args[1], args[2])
		if err != nil {
			return err
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		cmd.Println(token)
		return nil
	},
}

var UserLoginCommand = cobra.Command{
	Use:   "login",
	Short: "Log a user in",
	Long:  "Log a user in from its email and password, making it the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			return cmd.Help()
		}
		if len(args) != 2 {
			return errors.New("user login wants 2 arguments: email, password")
		}

		driver := bolt.Driver{}
		err := driver.Open(config.Bolt.Store)
		defer driver.Close()
		if err != nil {
			return errors.New("error opening db", errors.WithCause(err))
		}

		user, token, err := createUserService(&driver).Login(args[0], args[1])
		if err != nil {
			return err
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		cmd.Println(token)
		return nil
	},
}

var UserLogoutCommand = cobra.Command{
	Use:   "logout",
	Short: "Clear the active session",
	Long:  "Clear the active session; succeeds whether someone was logged in or not",
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

		if err := createUserService(&driver).Logout(); err != nil {
			return err
		}

		cmd.Println("logged out")
		return nil
	},
}

var UserMeCommand = cobra.Command{
	Use:   "me",
	Short: "Show the active session user",
	Long:  "Show the active session user",
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

		user, err := createUserService(&driver).Current()
		if err != nil {
			return err
		}
		if user == nil {
			cmd.Println("nobody is logged in")
			return nil
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	},
}

var UserAllCommand = cobra.Command{
	Use:   "all",
	Short: "Retrieve all the users",
	Long:  "Retrieve all the users",
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

		store := bolt.UserRepository{Driver: &driver}
		users, err := store.List()
		if err != nil {
			return errors.New("error getting users", errors.WithCause(err))
		}

		for _, user := range users {
			data, err := json.Marshal(user)
			if err != nil {
				return err
			}
			cmd.Println(string(data))
		}
		return nil
	},
}

var UserTokenCommand = cobra.Command{
	Use:   "token",
	Short: "Craft a token for a user",
	Long:  "Craft a token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("user token wants 1 argument: the id of the user")
		}

		if args[0] == "help" {
			return cmd.Help()
		}

		driver := bolt.Driver{}
		err := driver.Open(config.Bolt.Store)
		defer driver.Close()
		if err != nil {
			return errors.New("error opening db", errors.WithCause(err))
		}

		store := bolt.UserRepository{Driver: &driver}
		user, err := store.Get(args[0])
		if err != nil {
			return errors.New("error getting user", errors.WithCause(err))
		} else if user == nil {
			return errors.New("no user for id "+args[0], errors.WithCode(404))
		}

		encoder := jwt.NewEncodeDecoder(readSigningKey())
		token, err := encoder.Encode(user.ID)
		if err != nil {
			return errors.New("error crafting token", errors.WithCause(err))
		}

		cmd.Println(token)
		return nil
	},
}
