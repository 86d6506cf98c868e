// Command seed loads the sample sweets catalog into an empty store. It is
// safe to run repeatedly: a non-empty catalog is left untouched.
package main

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/infrastructure/config"
	"github.com/sweetshop/inventory-system/internal/infrastructure/db/gormstore"
	"github.com/sweetshop/inventory-system/pkg/logger"
)

var catalog = []domain.Sweet{
	{
		Name:        "Gulab Jamun",
		Category:    "Traditional",
		Price:       150.0,
		Quantity:    50,
		Description: "Soft and spongy milk solid balls soaked in rose flavored sugar syrup",
	},
	{
		Name:        "Rasgulla",
		Category:    "Bengali",
		Price:       120.0,
		Quantity:    40,
		Description: "Spongy white balls made from cottage cheese and soaked in light sugar syrup",
	},
	{
		Name:        "Jalebi",
		Category:    "Traditional",
		Price:       100.0,
		Quantity:    60,
		Description: "Crispy spiral-shaped sweet soaked in saffron sugar syrup",
	},
	{
		Name:        "Laddu",
		Category:    "Traditional",
		Price:       80.0,
		Quantity:    70,
		Description: "Round gram flour balls with ghee, nuts and raisins",
	},
	{
		Name:        "Kaju Katli",
		Category:    "Premium",
		Price:       300.0,
		Quantity:    30,
		Description: "Diamond-shaped cashew fudge finished with edible silver leaf",
	},
	{
		Name:        "Sandesh",
		Category:    "Bengali",
		Price:       140.0,
		Quantity:    35,
		Description: "Delicate cottage cheese sweet flavored with cardamom",
	},
	{
		Name:        "Barfi",
		Category:    "Traditional",
		Price:       110.0,
		Quantity:    45,
		Description: "Dense milk fudge squares topped with pistachios",
	},
	{
		Name:        "Mysore Pak",
		Category:    "South Indian",
		Price:       130.0,
		Quantity:    25,
		Description: "Rich gram flour sweet loaded with ghee",
	},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	db, err := gormstore.Connect(gormstore.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := gormstore.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	n, err := gormstore.SeedCatalog(context.Background(), db, catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}
	if n == 0 {
		log.Info().Msg("catalog already populated, nothing to do")
		return
	}
	log.Info().Int("sweets", n).Msg("sample catalog seeded")
}
