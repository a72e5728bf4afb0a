package main

import (
	"github.com/gin-gonic/gin"

	"stockpool/controllers"
)

type Router struct {
	homeController      *controllers.HomeController
	healthController    *controllers.HealthController
	companiesController *controllers.CompaniesController
	syncController      *controllers.SyncController
}

func (r Router) RegisterRoutes(router gin.IRouter) {
	router.GET("/", r.homeController.Index)
	router.POST("/test", r.homeController.Test)
	router.GET("/health", r.healthController.Status)

	router.GET("/companies", r.companiesController.GetCompanies)

	router.POST("/sync/companies", r.syncController.SyncCompanies)
	router.POST("/sync/rates", r.syncController.SyncRates)
}
