package controllers

import (
	"github.com/gin-gonic/gin"

	"stockpool/api"
)

// Placeholder copy served on the front page until the UI has real content.
const greeting = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Donec lobortis condimentum arcu quis bibendum. Phasellus lacinia nisl " +
	"non diam bibendum fringilla. Pellentesque quis justo tincidunt, lobortis " +
	"elit a, egestas felis. Cras non eleifend sem. Donec non auctor mauris."

type HomeController struct{}

func (h HomeController) Index(c *gin.Context) {
	api.ResultData(c, gin.H{"message": greeting})
}

func (h HomeController) Test(c *gin.Context) {
	api.ResultSuccess(c)
}
