package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"stockpool/models"
	"stockpool/store"
)

type fakeSampler struct {
	got    store.SampleParams
	result []models.Company
	err    error
}

func (f *fakeSampler) SampleCompanies(p store.SampleParams) ([]models.Company, error) {
	f.got = p
	return f.result, f.err
}

func companiesEngine(sampler *fakeSampler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	cc := CompaniesController{Companies: sampler}
	engine.GET("/companies", cc.GetCompanies)
	return engine
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGetCompaniesParsesParams(t *testing.T) {
	sampler := &fakeSampler{result: []models.Company{{Ticker: "AMD"}}}
	engine := companiesEngine(sampler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/companies?count=5&exclude=AAPL,MSFT&sectors=Tech", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if sampler.got.Count != 5 {
		t.Errorf("Count = %d, want 5", sampler.got.Count)
	}
	if !equalStrings(sampler.got.Exclude, []string{"AAPL", "MSFT"}) {
		t.Errorf("Exclude = %v, want [AAPL MSFT]", sampler.got.Exclude)
	}
	if !equalStrings(sampler.got.Sectors, []string{"Tech"}) {
		t.Errorf("Sectors = %v, want [Tech]", sampler.got.Sectors)
	}

	var body struct {
		Data []models.Company `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Ticker != "AMD" {
		t.Errorf("data = %+v, want the sampled company", body.Data)
	}
}

func TestGetCompaniesDefaults(t *testing.T) {
	sampler := &fakeSampler{}
	engine := companiesEngine(sampler)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/companies", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if sampler.got.Count != 0 {
		t.Errorf("Count = %d, want 0 (store applies the default)", sampler.got.Count)
	}
	if sampler.got.Exclude != nil || sampler.got.Sectors != nil {
		t.Errorf("filters = %+v, want none", sampler.got)
	}
}

func TestGetCompaniesRejectsBadCount(t *testing.T) {
	for _, count := range []string{"abc", "0", "-3"} {
		sampler := &fakeSampler{}
		engine := companiesEngine(sampler)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/companies?count="+count, nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("count=%q: status = %d, want 400", count, w.Code)
		}
	}
}

func TestGetCompaniesStoreError(t *testing.T) {
	sampler := &fakeSampler{err: errors.New("connection refused")}
	engine := companiesEngine(sampler)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/companies", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
