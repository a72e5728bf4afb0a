package controllers

import (
	"github.com/gin-gonic/gin"

	"stockpool/api"
)

// MarketSyncer runs a company sync for a set of tickers.
type MarketSyncer interface {
	Run(tickers []string) error
}

// RatesSyncer runs an exchange-rate sync for the stored currencies.
type RatesSyncer interface {
	Run() error
}

// SyncController exposes the ingestion jobs to an external scheduler.
type SyncController struct {
	Markets MarketSyncer
	Rates   RatesSyncer
}

func (sc SyncController) SyncCompanies(c *gin.Context) {
	var body struct {
		Tickers []string `json:"tickers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Tickers) == 0 {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	if err := sc.Markets.Run(body.Tickers); err != nil {
		api.ResultError(c, nil)
		return
	}

	api.ResultSuccess(c)
}

func (sc SyncController) SyncRates(c *gin.Context) {
	if err := sc.Rates.Run(); err != nil {
		api.ResultError(c, nil)
		return
	}

	api.ResultSuccess(c)
}
