package forex

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// Client talks to the exchange-rate API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

// Rates returns the latest quotes against the given base currency, as
// "1 base = rate × currency" for every currency the provider covers.
func (c *Client) Rates(base string) (map[string]decimal.Decimal, error) {
	type dto struct {
		Base  string                     `json:"base"`
		Rates map[string]decimal.Decimal `json:"rates"`
	}

	endpoint := fmt.Sprintf("%s/latest?base=%s", c.baseURL, base)

	res, err := c.http.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching rates: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates API returned %d: %v", res.StatusCode, string(body))
	}

	var d dto
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("%v: %w", string(body), err)
	}

	return d.Rates, nil
}
