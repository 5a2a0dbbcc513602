package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/wichananm65/trivia-api/internal/category"
	"github.com/wichananm65/trivia-api/internal/config"
	"github.com/wichananm65/trivia-api/internal/database"
	"github.com/wichananm65/trivia-api/internal/question"
	"github.com/wichananm65/trivia-api/internal/quiz"
	"github.com/wichananm65/trivia-api/internal/server"
)

// stores bundles the repositories selected by DB_DRIVER and what must be closed on exit.
type stores struct {
	categories category.Repository
	questions  question.Repository
	close      func() error
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStores(ctx, cfg)
	if err != nil {
		cancel()
		log.Fatalf("open %s store: %v", cfg.DBDriver, err)
	}
	defer st.close()

	if cfg.SeedCategories {
		n, err := st.categories.Seed(ctx, category.DefaultTypes)
		if err != nil {
			log.Warnf("seed categories: %v", err)
		} else if n > 0 {
			log.Infof("seeded %d categories", n)
		}
	}
	cancel()

	categoryService := category.NewService(st.categories)
	questionService := question.NewService(st.questions)

	app := server.New(server.Options{
		JWTSecret:    cfg.JWTSecret,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, server.Handlers{
		Category: category.NewHandler(categoryService),
		Question: question.NewHandler(questionService, categoryService),
		Quiz:     quiz.NewHandler(quiz.NewService(questionService)),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	log.Infof("starting server on %s (driver=%s)", cfg.Addr, cfg.DBDriver)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return stores{}, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return stores{}, err
		}
		return sqlStores(db), nil
	case config.DriverGorm:
		db, err := database.OpenGorm("postgres", cfg.DatabaseURL, &category.Record{}, &question.Record{})
		if err != nil {
			return stores{}, err
		}
		return gormStores(db)
	case config.DriverSQLite:
		db, err := database.OpenGorm("sqlite", cfg.SQLitePath, &category.Record{}, &question.Record{})
		if err != nil {
			return stores{}, err
		}
		return gormStores(db)
	default:
		return stores{
			categories: category.NewInMemoryRepository(nil),
			questions:  question.NewInMemoryRepository(nil),
			close:      func() error { return nil },
		}, nil
	}
}

func sqlStores(db *sql.DB) stores {
	return stores{
		categories: category.NewPostgresRepository(db),
		questions:  question.NewPostgresRepository(db),
		close:      db.Close,
	}
}

func gormStores(db *gorm.DB) (stores, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return stores{}, err
	}
	return stores{
		categories: category.NewGormRepository(db),
		questions:  question.NewGormRepository(db),
		close:      sqlDB.Close,
	}, nil
}
