package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
	"github.com/Naitik-Lodhi/Blogify-project/bleve"
	"github.com/Naitik-Lodhi/Blogify-project/bolt"
	"github.com/Naitik-Lodhi/Blogify-project/errors"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

func init() {
	BlogCommand.AddCommand(&BlogAllCommand)
	BlogCommand.AddCommand(&BlogSaveCommand)
	BlogCommand.AddCommand(&BlogDeleteCommand)
	BlogCommand.AddCommand(&BlogSearchCommand)
	BlogCommand.AddCommand(&BlogReindexCommand)
	BlogCommand.AddCommand(&BlogSeedCommand)

	inheritPersistentPreRun(&BlogCommand)
	inheritPersistentPreRun(&BlogAllCommand)
	inheritPersistentPreRun(&BlogSaveCommand)
	inheritPersistentPreRun(&BlogDeleteCommand)
	inheritPersistentPreRun(&BlogSearchCommand)
	inheritPersistentPreRun(&BlogReindexCommand)
	inheritPersistentPreRun(&BlogSeedCommand)

	RootCmd.AddCommand(&BlogCommand)
}

var BlogCommand = cobra.Command{
	Use:   "blog",
	Short: "List all the blog commands available",
	Long:  "List all the blog commands available",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var BlogAllCommand = cobra.Command{
	Use:   "all",
	Short: "List all blogs",
	Long:  "List all blogs from newest to oldest",
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

		store := bolt.BlogRepository{Driver: &driver}
		blogs, err := store.List()
		if err != nil {
			return errors.New("error getting blogs", errors.WithCause(err))
		}

		for _, blog := range blogs {
			data, err := json.Marshal(blog)
			if err != nil {
				return err
			}
			cmd.Println(string(data))
		}
		return nil
	},
}

var BlogSaveCommand = cobra.Command{
	Use:   "save",
	Short: "Create or update a blog",
	Long:  "Create or update a blog from its json representation, acting as the session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			return cmd.Help()
		}
		if len(args) != 1 {
			return errors.New("blog save wants 1 argument: the blog in json")
		}

		driver := bolt.Driver{}
		err := driver.Open(config.Bolt.Store)
		defer driver.Close()
		if err != nil {
			return errors.New("error opening db", errors.WithCause(err))
		}

		index := bleve.BlogIndex{}
		err = index.Open(config.Bleve.Index)
		defer index.Close()
		if err != nil {
			return errors.New("error opening index", errors.WithCause(err))
		}

		session := bolt.SessionRepository{Driver: &driver}
		caller, err := session.Get()
		if err != nil {
			return err
		} else if caller == nil {
			return errors.New("nobody is logged in, run user login first", errors.Unauthorized())
		}

		var blog blogify.Blog
		if err := json.Unmarshal([]byte(args[0]), &blog); err != nil {
			return errors.New("could not read blog json", errors.WithCause(err))
		}

		store := bolt.BlogRepository{Driver: &driver}
		meta := bolt.MetaRepository{Driver: &driver}
		service := services.NewBlogService(&store, &index, &meta)

		if blog.ID == "" {
			blog, err = service.Create(caller.ID, blog)
		} else {
			blog, err = service.Update(caller.ID, blog)
		}
		if err != nil {
			return err
		}

		data, err := json.Marshal(blog)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	},
}

var BlogDeleteCommand = cobra.Command{
	Use:   "delete",
	Short: "Delete a blog",
	Long:  "Delete a blog by id, acting as the session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			return cmd.Help()
		}
		if len(args) != 1 {
			return errors.New("blog delete wants 1 argument: the id of the blog")
		}

		driver := bolt.Driver{}
		err := driver.Open(config.Bolt.Store)
		defer driver.Close()
		if err != nil {
			return errors.New("error opening db", errors.WithCause(err))
		}

		index := bleve.BlogIndex{}
		err = index.Open(config.Bleve.Index)
		defer index.Close()
		if err != nil {
			return errors.New("error opening index", errors.WithCause(err))
		}

		session := bolt.SessionRepository{Driver: &driver}
		caller, err := session.Get()
		if err != nil {
			return err
		} else if caller == nil {
			return errors.New("nobody is logged in, run user login first", errors.Unauthorized())
		}

		store := bolt.BlogRepository{Driver: &driver}
		meta := bolt.MetaRepository{Driver: &driver}
		service := services.NewBlogService(&store, &index, &meta)

		if err := service.Delete(caller.ID, args[0]); err != nil {
			return err
		}

		cmd.Println("done")
		return nil
	},
}

var BlogSearchCommand = cobra.Command{
	Use:   "search",
	Short: "Search blogs",
	Long:  "Search blogs in the index from the words given as arguments",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("this command expects search words as arguments")
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

		index := bleve.BlogIndex{}
		err = index.Open(config.Bleve.Index)
		defer index.Close()
		if err != nil {
			return errors.New("error opening index", errors.WithCause(err))
		}

		store := bolt.BlogRepository{Driver: &driver}
		meta := bolt.MetaRepository{Driver: &driver}
		service := services.NewBlogService(&store, &index, &meta)

		res, err := service.Search(strings.Join(args, " "), nil, 0, 0)
		if err != nil {
			return errors.New("error searching", errors.WithCause(err))
		}

		for _, blog := range res.Blogs {
			data, err := json.Marshal(blog)
			if err != nil {
				return err
			}
			cmd.Println(string(data))
		}
		cmd.Printf("%d blogs found\n", res.Pagination.Total)
		return nil
	},
}

var BlogReindexCommand = cobra.Command{
	Use:   "reindex",
	Short: "Reindex all blogs",
	Long:  "Reindex all the blogs in the store",
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

		index := bleve.BlogIndex{}
		err = index.Open(config.Bleve.Index)
		defer index.Close()
		if err != nil {
			return errors.New("error opening index", errors.WithCause(err))
		}

		store := bolt.BlogRepository{Driver: &driver}
		meta := bolt.MetaRepository{Driver: &driver}
		service := services.NewBlogService(&store, &index, &meta)

		n, err := service.Reindex()
		if err != nil {
			return errors.New("error reindexing", errors.WithCause(err))
		}

		cmd.Printf("%d blogs reindexed\n", n)
		return nil
	},
}

var BlogSeedCommand = cobra.Command{
	Use:   "seed",
	Short: "Seed the store with the default blogs",
	Long:  "Seed the store with the default blogs if it is empty",
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

		index := bleve.BlogIndex{}
		err = index.Open(config.Bleve.Index)
		defer index.Close()
		if err != nil {
			return errors.New("error opening index", errors.WithCause(err))
		}

		store := bolt.BlogRepository{Driver: &driver}
		meta := bolt.MetaRepository{Driver: &driver}
		service := services.NewBlogService(&store, &index, &meta)

		n, err := service.SeedIfEmpty()
		if err != nil {
			return errors.New("error seeding", errors.WithCause(err))
		}

		if n == 0 {
			cmd.Println("store not empty, nothing to do")
		} else {
			cmd.Printf("%d blogs seeded\n", n)
		}
		return nil
	},
}
