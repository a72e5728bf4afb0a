package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the Yahoo-style quote API. The base URL is configurable so
// tests can point it at a local server.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    http.DefaultClient,
	}
}

// Quote is the per-ticker summary the provider returns. Pointer and empty
// values distinguish missing fields; normalization decides what is required.
type Quote struct {
	Symbol            string   `json:"symbol"`
	ShortName         string   `json:"shortName"`
	MarketCap         *float64 `json:"marketCap"`
	FinancialCurrency string   `json:"financialCurrency"`
	Sector            string   `json:"sector"`
	Website           string   `json:"website"`
}

// GetQuotes fetches quote summaries for the given symbols in one call. The
// provider omits symbols it does not know, so the result may be shorter than
// the request.
func (c *Client) GetQuotes(symbols []string) ([]Quote, error) {
	type dto struct {
		QuoteResponse struct {
			Result []Quote `json:"result"`
		} `json:"quoteResponse"`
	}

	endpoint := fmt.Sprintf("%s/v6/finance/quote?symbols=%s",
		c.baseURL, url.QueryEscape(strings.Join(symbols, ",")))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Add("X-API-KEY", c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching quotes: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote API returned %d: %v", res.StatusCode, string(body))
	}

	var d dto
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("%v: %w", string(body), err)
	}

	return d.QuoteResponse.Result, nil
}
