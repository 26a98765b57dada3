// Command provision loads category definitions from a YAML file and upserts
// them into the database, replacing each category's subscribed work-center
// set. It is the mutation path for categories; the API only reads them.
//
// Usage:
//
//	provision -file categories.yaml
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/plantops/shiftlog-backend/internal/adapter/postgres"
	categoryrepo "github.com/plantops/shiftlog-backend/internal/adapter/postgres/category"
	"github.com/plantops/shiftlog-backend/internal/app"
	"github.com/plantops/shiftlog-backend/internal/config"
	"github.com/plantops/shiftlog-backend/internal/domain"
)

type categoryFile struct {
	Plant      string         `yaml:"plant"`
	Categories []categorySpec `yaml:"categories"`
}

type categorySpec struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Distribute  bool     `yaml:"distribute"`
	WorkCenters []string `yaml:"work_centers"`
}

func main() {
	filePath := flag.String("file", "categories.yaml", "path to category definitions YAML")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	defs, err := loadDefinitions(*filePath)
	if err != nil {
		logger.Error("load definitions", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := categoryrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	for _, spec := range defs.Categories {
		id, err := uuid.Parse(spec.ID)
		if err != nil {
			logger.Error("invalid category id",
				slog.String("id", spec.ID),
				slog.String("name", spec.Name),
			)
			os.Exit(1)
		}

		err = txManager.RunInTx(ctx, func(ctx context.Context) error {
			cat := domain.Category{
				ID:         id,
				Plant:      defs.Plant,
				Name:       spec.Name,
				Distribute: spec.Distribute,
			}
			if err := repo.Upsert(ctx, cat); err != nil {
				return err
			}
			return repo.ReplaceTargets(ctx, id, defs.Plant, spec.WorkCenters)
		})
		if err != nil {
			logger.Error("provision category",
				slog.String("name", spec.Name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}

		logger.Info("category provisioned",
			slog.String("name", spec.Name),
			slog.Bool("distribute", spec.Distribute),
			slog.Int("work_centers", len(spec.WorkCenters)),
		)
	}
}

func loadDefinitions(path string) (*categoryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var defs categoryFile
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if defs.Plant == "" {
		return nil, fmt.Errorf("%s: plant is required", path)
	}
	if len(defs.Categories) == 0 {
		return nil, fmt.Errorf("%s: no categories defined", path)
	}
	return &defs, nil
}
