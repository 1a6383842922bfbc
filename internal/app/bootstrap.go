package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"competency-matrix/internal/config"
	"competency-matrix/internal/database/migration"
	"competency-matrix/internal/database/seeder"
	"competency-matrix/internal/delivery/http/middleware"
	"competency-matrix/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.RunMigrations {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		err := migration.Runner{Dir: cfg.Database.MigrationsDir}.Run(ctx, c.DB.SQLDB())
		cancel()
		if err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		c.Logger.Info("migrations applied")
	}

	if cfg.Database.RunSeeders {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := seeder.Runner{Seeders: seeder.Defaults()}.Run(ctx, c.DB)
		cancel()
		if err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("run seeders: %w", err)
		}
		c.Logger.Info("seeders applied")
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	routes.NewRegistry(cfg, c.DB, c.Cache, c.Cache, c.Logger).Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
