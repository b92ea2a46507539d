package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"stonkwatch/internal/model"
)

// YahooSource implements Source using the Yahoo Finance public chart API.
type YahooSource struct {
	Client *http.Client
}

// NewYahooSource creates a new Yahoo Finance source with optional proxy support.
func NewYahooSource(proxyURL string) *YahooSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooSource{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (s *YahooSource) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				ShortName string `json:"shortName"`
				LongName  string `json:"longName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func rangeForDays(days int) string {
	switch {
	case days <= 5:
		return "5d"
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	case days <= 365:
		return "1y"
	default:
		return "2y"
	}
}

func (s *YahooSource) fetchChart(ctx context.Context, symbol, rng string) (*yahooChart, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s",
		url.PathEscape(strings.ToUpper(symbol)), rng)

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo fetch: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo read body: %v", ErrSourceUnavailable, err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: yahoo status %d", ErrSourceUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: yahoo status %d, body: %s", ErrSourceUnavailable, resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("%w: yahoo decode: %v", ErrSourceUnavailable, err)
	}
	if chart.Chart.Error != nil {
		if strings.EqualFold(chart.Chart.Error.Code, "Not Found") {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
		}
		return nil, fmt.Errorf("%w: yahoo api error: %s", ErrSourceUnavailable, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientData, symbol)
	}
	return &chart, nil
}

// RecentCloses fetches the daily closes for the most recent trading days.
func (s *YahooSource) RecentCloses(ctx context.Context, symbol string, days int) (*model.PriceSeries, error) {
	chart, err := s.fetchChart(ctx, symbol, rangeForDays(days))
	if err != nil {
		return nil, err
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: no bars for %s", ErrInsufficientData, symbol)
	}
	closes := result.Indicators.Quote[0].Close

	points := make([]model.ClosePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		c, ok := toFloat(closes[i])
		if !ok || c == 0 {
			continue // skip null bars (holidays etc.)
		}
		points = append(points, model.ClosePoint{Date: time.Unix(ts, 0), Close: c})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no usable closes for %s", ErrInsufficientData, symbol)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	if len(points) > days {
		points = points[len(points)-days:]
	}
	return &model.PriceSeries{
		Symbol:    strings.ToUpper(symbol),
		Points:    points,
		FetchedAt: time.Now(),
	}, nil
}

// DisplayName resolves the symbol's short name from the chart metadata.
func (s *YahooSource) DisplayName(ctx context.Context, symbol string) (string, error) {
	chart, err := s.fetchChart(ctx, symbol, "1d")
	if err != nil {
		return "", err
	}
	meta := chart.Chart.Result[0].Meta
	if meta.ShortName != "" {
		return meta.ShortName, nil
	}
	if meta.LongName != "" {
		return meta.LongName, nil
	}
	return strings.ToUpper(symbol), nil
}
