package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stockpool/api"
	"stockpool/models"
	"stockpool/store"
)

// CompanySampler is the read side of the store the controller needs.
type CompanySampler interface {
	SampleCompanies(p store.SampleParams) ([]models.Company, error)
}

type CompaniesController struct {
	Companies CompanySampler
}

// GetCompanies returns a random sample of stored companies. Query params:
// count (positive integer, default 10), exclude (comma-separated tickers),
// sectors (comma-separated sector names).
func (cc CompaniesController) GetCompanies(c *gin.Context) {
	params := store.SampleParams{
		Exclude: splitParam(c.Query("exclude")),
		Sectors: splitParam(c.Query("sectors")),
	}

	if raw := c.Query("count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil || count <= 0 {
			api.ResultError(c, []string{"invalidRequest"})
			return
		}
		params.Count = count
	}

	companies, err := cc.Companies.SampleCompanies(params)
	if err != nil {
		api.ResultError(c, nil)
		return
	}

	api.ResultData(c, companies)
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
