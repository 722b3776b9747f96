package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Naitik-Lodhi/Blogify-project/bleve"
	"github.com/Naitik-Lodhi/Blogify-project/bolt"
	"github.com/Naitik-Lodhi/Blogify-project/gin"
	blogifyhttp "github.com/Naitik-Lodhi/Blogify-project/http"
	"github.com/Naitik-Lodhi/Blogify-project/jwt"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

func init() {
	inheritPersistentPreRun(&ServeCommand)

	RootCmd.AddCommand(&ServeCommand)
}

var ServeCommand = cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  "Start the web server serving the blog, favorite and preference routes",
	Run: func(cmd *cobra.Command, args []string) {
		key := readSigningKey()

		driver := bolt.Driver{}
		err := driver.Open(config.Bolt.Store)
		defer driver.Close()
		if err != nil {
			logger.Fatal("could not open db:", err)
		}

		index := bleve.BlogIndex{}
		err = index.Open(config.Bleve.Index)
		defer index.Close()
		if err != nil {
			logger.Fatal("could not open index:", err)
		}

		blogRepository := bolt.BlogRepository{Driver: &driver}
		userRepository := bolt.UserRepository{Driver: &driver}
		sessionRepository := bolt.SessionRepository{Driver: &driver}
		favoriteRepository := bolt.FavoriteRepository{Driver: &driver}
		preferencesRepository := bolt.PreferencesRepository{Driver: &driver}
		metaRepository := bolt.MetaRepository{Driver: &driver}

		encoder := jwt.NewEncodeDecoder(key)

		userService := services.NewUserService(&userRepository, &sessionRepository, encoder)
		blogService := services.NewBlogService(&blogRepository, &index, &metaRepository)
		favoriteService := services.NewFavoriteService(&favoriteRepository)
		feedService := services.NewFeedService(&blogRepository, &favoriteRepository)
		preferencesService := services.NewPreferencesService(&preferencesRepository)

		n, err := blogService.SeedIfEmpty()
		if err != nil {
			logger.Fatal("could not seed blogs:", err)
		}
		if n > 0 {
			logger.Printf("seeded %d blogs", n)
		}

		server := gin.New()
		blogifyhttp.RegisterAuthEndpoints(server, userService, key)
		blogifyhttp.RegisterBlogEndpoints(server, blogService, feedService, favoriteService, userService, key)
		blogifyhttp.RegisterFavoriteEndpoints(server, favoriteService, userService, key)
		blogifyhttp.RegisterPreferencesEndpoints(server, preferencesService)

		addr := config.Web.Addr
		if addr == "" {
			addr = ":1705"
		}

		logger.Print("server started, listening on ", addr)
		logger.Fatal(http.ListenAndServe(addr, server))
	},
}
