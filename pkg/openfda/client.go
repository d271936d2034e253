package openfda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	// adverseEventSource names the evidence source in findings built from
	// co-occurrence results.
	adverseEventSource = "OpenFDA Adverse Events Database"

	// maxReactions caps how many ranked reaction terms a co-occurrence
	// result carries.
	maxReactions = 5

	// maxResultLimit is the openFDA count-query limit ceiling we request.
	maxResultLimit = 10
)

// Config holds the openFDA client settings.
type Config struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	RateLimit   float64
	ResultLimit int

	// Breaker tunes the circuit breaker; zero values use the defaults
	// below.
	BreakerMaxRequests      uint32
	BreakerInterval         time.Duration
	BreakerTimeout          time.Duration
	BreakerFailureThreshold uint32
}

// Client queries the openFDA drug endpoints. Requests are rate limited and
// wrapped in a circuit breaker so a degraded upstream cannot stall screening.
type Client struct {
	baseURL     string
	apiKey      string
	resultLimit int
	httpClient  *http.Client
	rateLimit   *rate.Limiter
	breaker     *gobreaker.CircuitBreaker
	logger      *logrus.Logger
}

// NewClient creates an openFDA client. Zero-valued config fields fall back to
// the public API defaults (40 requests/minute without an API key).
func NewClient(config Config, logger *logrus.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "https://api.fda.gov/drug"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 4
	}
	if config.ResultLimit <= 0 || config.ResultLimit > maxResultLimit {
		config.ResultLimit = maxResultLimit
	}
	if config.BreakerMaxRequests == 0 {
		config.BreakerMaxRequests = 3
	}
	if config.BreakerInterval == 0 {
		config.BreakerInterval = 30 * time.Second
	}
	if config.BreakerTimeout == 0 {
		config.BreakerTimeout = 60 * time.Second
	}
	if config.BreakerFailureThreshold == 0 {
		config.BreakerFailureThreshold = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "OpenFDA",
		MaxRequests: config.BreakerMaxRequests,
		Interval:    config.BreakerInterval,
		Timeout:     config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.BreakerFailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"service": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &Client{
		baseURL:     config.BaseURL,
		apiKey:      config.APIKey,
		resultLimit: config.ResultLimit,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimit: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
		breaker:   breaker,
		logger:    logger,
	}
}

// CoOccurrence queries the adverse-event endpoint for reports that mention
// both drugs and returns the top reaction terms ranked by report count. A
// pair with no matching reports yields Found=false, not an error; errors
// indicate the source itself was unreachable or answered malformed.
func (c *Client) CoOccurrence(ctx context.Context, drug1, drug2 string) (*CoOccurrenceResult, error) {
	if err := c.rateLimit.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	params := url.Values{
		"search": {fmt.Sprintf("patient.drug.medicinalproduct:%q AND patient.drug.medicinalproduct:%q", drug1, drug2)},
		"count":  {"patient.reaction.reactionmeddrapt.exact"},
		"limit":  {strconv.Itoa(c.resultLimit)},
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.get(ctx, fmt.Sprintf("%s/event.json?%s", c.baseURL, params.Encode()))
	})
	if err != nil {
		return nil, err
	}

	var response eventCountResponse
	if err := json.Unmarshal(body.([]byte), &response); err != nil {
		return nil, fmt.Errorf("failed to parse event response: %w", err)
	}

	if len(response.Results) == 0 {
		return &CoOccurrenceResult{Found: false}, nil
	}

	reactions := make([]string, 0, maxReactions)
	for _, r := range response.Results {
		if len(reactions) == maxReactions {
			break
		}
		if r.Term != "" {
			reactions = append(reactions, r.Term)
		}
	}

	c.logger.WithFields(logrus.Fields{
		"drug1":     drug1,
		"drug2":     drug2,
		"reactions": len(reactions),
	}).Debug("OpenFDA co-occurrence query completed")

	return &CoOccurrenceResult{
		Found:     len(reactions) > 0,
		Reactions: reactions,
		Source:    adverseEventSource,
	}, nil
}

// LabelInteractions fetches the interaction-related sections of a drug's
// most recent label: drug_interactions, contraindications and
// warnings_and_cautions, in that order, skipping absent sections.
func (c *Client) LabelInteractions(ctx context.Context, drug string) ([]string, error) {
	if err := c.rateLimit.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	params := url.Values{
		"search": {fmt.Sprintf("openfda.brand_name:%q OR openfda.generic_name:%q", drug, drug)},
		"limit":  {"1"},
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.get(ctx, fmt.Sprintf("%s/label.json?%s", c.baseURL, params.Encode()))
	})
	if err != nil {
		return nil, err
	}

	var response labelResponse
	if err := json.Unmarshal(body.([]byte), &response); err != nil {
		return nil, fmt.Errorf("failed to parse label response: %w", err)
	}

	if len(response.Results) == 0 {
		return nil, nil
	}

	doc := response.Results[0]
	var sections []string
	sections = append(sections, doc.DrugInteractions...)
	sections = append(sections, doc.Contraindications...)
	sections = append(sections, doc.WarningsAndCautions...)
	return sections, nil
}

// get performs a GET request and returns the response body. A 404 from the
// count endpoint means no matching reports, which callers treat as an empty
// result rather than a failure.
func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []byte(`{"results":[]}`), nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openFDA returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
