package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 60 * time.Second

// manages HTTP requests to the REST API
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient() *Client {
	endpoint := os.Getenv("SCENTMATCH_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Search runs a hybrid catalog search
func (c *Client) Search(ctx context.Context, query string) ([]scoredFragrance, error) {
	endpoint := fmt.Sprintf("%s/api/v1/search?q=%s", c.endpoint, url.QueryEscape(query))

	var result searchResponse
	if err := c.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	return result.Results, nil
}

// StartQuiz creates an anonymous quiz session
func (c *Client) StartQuiz(ctx context.Context) (*startQuizResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quiz/start", c.endpoint)

	var result startQuizResponse
	if err := c.post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// SubmitAnswer records one answer against the session
func (c *Client) SubmitAnswer(ctx context.Context, token, questionID string, values []string) (*answerResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quiz/%s/answers", c.endpoint, token)
	payload := answerRequest{QuestionID: questionID, Values: values}

	var result answerResponse
	if err := c.post(ctx, endpoint, payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Analyze finalizes the quiz and returns archetype, picks, and insight
func (c *Client) Analyze(ctx context.Context, token string) (*analyzeResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quiz/%s/analyze", c.endpoint, token)

	var result analyzeResponse
	if err := c.post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// SearchCmd returns a tea.Cmd that runs a search
func (c *Client) SearchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		results, err := c.Search(ctx, query)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return SearchResultsMsg{query: query, results: results}
	}
}

// StartQuizCmd returns a tea.Cmd that starts a quiz session
func (c *Client) StartQuizCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := c.StartQuiz(ctx)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return QuizStartedMsg{token: resp.Token, questions: resp.Questions}
	}
}

// SubmitAnswerCmd returns a tea.Cmd that submits one answer
func (c *Client) SubmitAnswerCmd(token, questionID string, values []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := c.SubmitAnswer(ctx, token, questionID, values)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return AnswerSavedMsg{questionID: resp.QuestionID, remaining: resp.Remaining}
	}
}

// AnalyzeCmd returns a tea.Cmd that runs the quiz analysis
func (c *Client) AnalyzeCmd(token string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := c.Analyze(ctx, token)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return AnalysisMsg{
			archetype:       resp.Archetype,
			recommendations: resp.Recommendations,
			insight:         resp.Insight,
		}
	}
}

func (c *Client) get(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, dest)
}

func (c *Client) post(ctx context.Context, endpoint string, payload, dest any) error {
	var body io.Reader

	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// REST API payload types

type fragrancePayload struct {
	ID             string   `json:"id"`
	BrandName      string   `json:"brand_name"`
	Name           string   `json:"name"`
	Gender         string   `json:"gender"`
	RatingValue    float32  `json:"rating_value"`
	RatingCount    int      `json:"rating_count"`
	Accords        []string `json:"accords,omitempty"`
	SamplePriceUSD int      `json:"sample_price_usd,omitempty"`
}

type scoredFragrance struct {
	Fragrance  fragrancePayload `json:"fragrance"`
	Similarity float32          `json:"similarity"`
	Score      float32          `json:"score"`
}

type searchResponse struct {
	Query   string            `json:"query"`
	Results []scoredFragrance `json:"results"`
}

type quizOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type quizQuestion struct {
	ID          string       `json:"id"`
	Prompt      string       `json:"prompt"`
	MultiSelect bool         `json:"multi_select"`
	MaxChoices  int          `json:"max_choices,omitempty"`
	Options     []quizOption `json:"options"`
}

type quizArchetype struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
}

type insightPayload struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Model  string `json:"model,omitempty"`
}

type startQuizResponse struct {
	Token     string         `json:"token"`
	Questions []quizQuestion `json:"questions"`
}

type answerRequest struct {
	QuestionID string   `json:"question_id"`
	Values     []string `json:"values"`
}

type answerResponse struct {
	QuestionID string `json:"question_id"`
	Answered   int    `json:"answered"`
	Remaining  int    `json:"remaining"`
}

type analyzeResponse struct {
	Archetype       quizArchetype     `json:"archetype"`
	Recommendations []scoredFragrance `json:"recommendations"`
	Insight         insightPayload    `json:"insight"`
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
