package app

import (
	"BookShelf/internal/app/server"
	"BookShelf/internal/config"
	"BookShelf/internal/delivery/http"
	"BookShelf/internal/service"
	"BookShelf/internal/service/auth"
	"BookShelf/internal/service/catalog"
	"BookShelf/internal/storage/memory"
	"BookShelf/internal/storage/postgres"
	"BookShelf/pkg/logger"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("Starting", "env", cfg.Env, "storage", cfg.Storage)

	var userRepo auth.UserRepo
	var authorRepo catalog.AuthorRepo
	var bookRepo catalog.BookRepo

	switch cfg.Storage {
	case "memory":
		store := memory.NewStore()
		if err := store.SeedSampleData(); err != nil {
			log.FatalErr("error seeding memory store", err)
		}
		userRepo, authorRepo, bookRepo = store, store, store
	default:
		pg, err := postgres.NewPostgresPool(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
		if err != nil {
			log.FatalErr("error connecting to database", err)
		}
		defer pg.Close()
		if err := pg.RunMigrations(context.Background()); err != nil {
			log.FatalErr("error running migrations", err)
		}
		userRepo = postgres.NewUserPostgres(pg.Pool)
		authorRepo = postgres.NewAuthorPostgres(pg.Pool)
		bookRepo = postgres.NewBookPostgres(pg.Pool)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TokenTTL)
	authService := auth.NewAuthService(log, jwtManager, userRepo)
	authorService := catalog.NewAuthorService(log, authorRepo)
	bookService := catalog.NewBookService(log, bookRepo, authorService)

	u := service.Collection{
		AuthService:   authService,
		AuthorService: authorService,
		BookService:   bookService,
	}

	r := http.InitRoutes(log, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("listening", "address", cfg.HTTPServer.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}

	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
