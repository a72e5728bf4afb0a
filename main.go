package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"stockpool/controllers"
	"stockpool/core"
	"stockpool/fetcher"
	"stockpool/models"
	"stockpool/store"
)

func main() {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		godotenv.Load(".env." + env)
	} else {
		godotenv.Load()
	}

	cfg, err := core.LoadConfig()
	if err != nil {
		panic(err)
	}

	// connect to the database
	db, err := core.InitDB(cfg.DB)
	if err != nil {
		panic(err)
	}

	// auto migrate the database
	err = db.AutoMigrate(
		&models.Company{},
		&models.ExchangeRate{},
	)
	if err != nil {
		panic(err)
	}

	// set up commands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "sync_companies":
			f, err := fetcher.NewMarketFetcher(db, cfg)
			if err != nil {
				panic(err)
			}

			if err := f.Run(os.Args[2:]); err != nil {
				os.Exit(1)
			}
			return
		case "sync_rates":
			f, err := fetcher.NewRatesFetcher(db, cfg)
			if err != nil {
				panic(err)
			}

			if err := f.Run(); err != nil {
				os.Exit(1)
			}
			return
		}
	}

	runServer(cfg, db)
}

func runServer(cfg core.Config, db *gorm.DB) {
	// set up http server
	engine := gin.Default()
	err := engine.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	engine.Use(controllers.RequestID)

	markets, err := fetcher.NewMarketFetcher(db, cfg)
	if err != nil {
		panic(err)
	}

	rates, err := fetcher.NewRatesFetcher(db, cfg)
	if err != nil {
		panic(err)
	}

	router := Router{
		homeController:      &controllers.HomeController{},
		healthController:    &controllers.HealthController{DB: db},
		companiesController: &controllers.CompaniesController{Companies: store.New(db)},
		syncController:      &controllers.SyncController{Markets: markets, Rates: rates},
	}

	router.RegisterRoutes(engine)

	err = engine.Run(cfg.HTTPAddr)
	if err != nil {
		panic(err)
	}
}
