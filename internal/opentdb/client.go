package opentdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"quizo/internal/domain"
	"quizo/internal/normalize"
)

// Default Open Trivia DB endpoints; both can be overridden via config.
const (
	DefaultEndpoint           = "https://opentdb.com/api.php"
	DefaultCategoriesEndpoint = "https://opentdb.com/api_category.php"
)

// Doer abstracts the HTTP transport so tests can stub responses.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches and normalizes questions from a trivia HTTP source.
type Client struct {
	endpoint           string
	categoriesEndpoint string
	doer               Doer
	normalizer         *normalize.Normalizer
	logger             *zap.Logger
}

// NewClient builds a source client. Empty endpoints fall back to the
// Open Trivia DB defaults; a nil doer uses a timeout-bounded http.Client.
func NewClient(endpoint, categoriesEndpoint string, doer Doer, normalizer *normalize.Normalizer, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if categoriesEndpoint == "" {
		categoriesEndpoint = DefaultCategoriesEndpoint
	}
	if doer == nil {
		doer = &http.Client{Timeout: 15 * time.Second}
	}
	if normalizer == nil {
		normalizer = normalize.New(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:           endpoint,
		categoriesEndpoint: categoriesEndpoint,
		doer:               doer,
		normalizer:         normalizer,
		logger:             logger,
	}
}

// FetchQuestions requests a batch of questions for the given settings and
// returns them normalized, preserving upstream order. A short batch is
// valid; zero questions is ErrNoQuestions.
func (c *Client) FetchQuestions(ctx context.Context, settings domain.Settings) ([]domain.Question, error) {
	settings = settings.Clamped()

	body, err := c.get(ctx, c.buildURL(settings))
	if err != nil {
		return nil, err
	}

	raws, err := unwrapEnvelope(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}

	questions := make([]domain.Question, 0, len(raws))
	for _, raw := range raws {
		questions = append(questions, c.normalizer.Normalize(raw))
	}
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestions
	}
	c.logger.Info("questions fetched",
		zap.Int("requested", settings.Amount),
		zap.Int("received", len(questions)))
	return questions, nil
}

// Categories fetches the category listing, sorted by name. Callers treat
// failures as non-fatal: the quiz stays usable with no category filter.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	body, err := c.get(ctx, c.categoriesEndpoint)
	if err != nil {
		return nil, err
	}

	var payload struct {
		TriviaCategories []domain.Category `json:"trivia_categories"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}

	categories := payload.TriviaCategories
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// buildURL adds amount always and the optional filters only when set, so
// absent parameters are never sent as empty strings.
func (c *Client) buildURL(settings domain.Settings) string {
	params := url.Values{}
	params.Set("amount", strconv.Itoa(settings.Amount))
	if settings.Category != "" {
		params.Set("category", settings.Category)
	}
	if settings.Difficulty != "" {
		params.Set("difficulty", settings.Difficulty)
	}
	if settings.Type != "" {
		params.Set("type", settings.Type)
	}
	return c.endpoint + "?" + params.Encode()
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrNetwork, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	return body, nil
}

// unwrapEnvelope accepts a bare array of raw records or an object exposing
// the array under "results" (preferred) or "questions". Any other valid
// JSON shape yields zero questions.
func unwrapEnvelope(body []byte) ([]domain.RawQuestion, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []domain.RawQuestion
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope struct {
		Results   []domain.RawQuestion `json:"results"`
		Questions []domain.RawQuestion `json:"questions"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	if envelope.Results != nil {
		return envelope.Results, nil
	}
	return envelope.Questions, nil
}
