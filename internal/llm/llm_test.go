package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Setenv("VOYAGE_AI_API_KEY", "voyage-test-key") //nolint:errcheck // test fixture
	os.Setenv("OPENAI_API_KEY", "openai-test-key")    //nolint:errcheck // test fixture
	defer os.Unsetenv("VOYAGE_AI_API_KEY")            //nolint:errcheck // test cleanup
	defer os.Unsetenv("OPENAI_API_KEY")               //nolint:errcheck // test cleanup

	config, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, ProviderVoyage, config.EmbedderProvider)
	assert.Equal(t, "voyage-3", config.EmbedderModel)
	assert.Equal(t, "gpt-4o-mini", config.GeneratorModel)
	assert.Equal(t, 1024, config.GeneratorMaxTokens)
}

func TestLoadConfig_FallsBackToOpenAIEmbedder(t *testing.T) {
	os.Unsetenv("VOYAGE_AI_API_KEY")               //nolint:errcheck // test cleanup
	os.Setenv("OPENAI_API_KEY", "openai-test-key") //nolint:errcheck // test fixture
	defer os.Unsetenv("OPENAI_API_KEY")            //nolint:errcheck // test cleanup

	config, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, config.EmbedderProvider)
	assert.Equal(t, "text-embedding-3-small", config.EmbedderModel)
}

func TestLoadConfig_VoyageOnly(t *testing.T) {
	os.Setenv("VOYAGE_AI_API_KEY", "voyage-test-key") //nolint:errcheck // test fixture
	os.Unsetenv("OPENAI_API_KEY")                     //nolint:errcheck // test cleanup
	defer os.Unsetenv("VOYAGE_AI_API_KEY")            //nolint:errcheck // test cleanup

	config, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, ProviderVoyage, config.EmbedderProvider)
	assert.Empty(t, config.GeneratorAPIKey, "generator key is optional")

	// the composite still embeds, with no generator configured
	client, err := NewLLMWithConfig(context.Background(), config)
	require.NoError(t, err)

	composite, ok := client.(*CompositeLLM)
	require.True(t, ok)
	assert.NotNil(t, composite.Embedder)
	assert.Nil(t, composite.Generator())
}

func TestLoadConfig_MissingKeys(t *testing.T) {
	os.Unsetenv("VOYAGE_AI_API_KEY") //nolint:errcheck // test cleanup
	os.Unsetenv("OPENAI_API_KEY")    //nolint:errcheck // test cleanup

	_, err := loadConfig()

	assert.Error(t, err)
}

func TestVoyageEmbedder_InputTypes(t *testing.T) {
	var gotInputTypes []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req voyageEmbeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotInputTypes = append(gotInputTypes, req.InputType)

		resp := voyageEmbeddingResponse{}
		for i := range req.Input {
			resp.Data = append(resp.Data, struct {
				Object    string    `json:"object"`
				Index     int       `json:"index"`
				Embedding []float32 `json:"embedding"`
			}{Index: i, Embedding: []float32{0.1, 0.2, 0.3}})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck // test server
	}))
	defer server.Close()

	embedder := NewVoyageEmbedder(VoyageConfig{APIKey: "test", BaseURL: server.URL})

	// single text is embedded as a query
	vec, err := embedder.GenerateEmbedding(context.Background(), "fresh citrus cologne")
	require.NoError(t, err)
	assert.Len(t, vec, 3)

	// batch is embedded as documents
	vecs, err := embedder.GenerateEmbeddings(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, vecs, 2)

	assert.Equal(t, []string{"query", "document"}, gotInputTypes)
}

func TestVoyageEmbedder_PreservesOrderByIndex(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// return results out of order, index fields must restore ordering
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[` + //nolint:errcheck // test server
			`{"index":1,"embedding":[2.0]},` +
			`{"index":0,"embedding":[1.0]}]}`))
	}))
	defer server.Close()

	embedder := NewVoyageEmbedder(VoyageConfig{APIKey: "test", BaseURL: server.URL})

	vecs, err := embedder.GenerateEmbeddings(context.Background(), []string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, float32(1.0), vecs[0][0])
	assert.Equal(t, float32(2.0), vecs[1][0])
}

func TestVoyageEmbedder_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"detail":"rate limit exceeded"}`)) //nolint:errcheck // test server
	}))
	defer server.Close()

	embedder := NewVoyageEmbedder(VoyageConfig{APIKey: "test", BaseURL: server.URL})

	_, err := embedder.GenerateEmbedding(context.Background(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestOpenAIGenerator_GenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"gpt-4o-mini","choices":[{"index":0,` + //nolint:errcheck // test server
			`"message":{"role":"assistant","content":" hello world "}}],` +
			`"usage":{"prompt_tokens":10,"completion_tokens":2}}`))
	}))
	defer server.Close()

	generator := NewOpenAIGenerator(OpenAIConfig{APIKey: "test", BaseURL: server.URL})

	gen, err := generator.GenerateText(context.Background(), "you are helpful", "say hello")

	require.NoError(t, err)
	assert.Equal(t, "hello world", gen.Text, "response should be trimmed")
	assert.Equal(t, 10, gen.InputTokens)
	assert.Equal(t, 2, gen.OutputTokens)
}

func TestOpenAIGenerator_GenerateTextStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"hel\"}}]}\n\n")) //nolint:errcheck // test server
		w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n"))  //nolint:errcheck // test server
		w.Write([]byte("data: [DONE]\n\n"))                                            //nolint:errcheck // test server
	}))
	defer server.Close()

	generator := NewOpenAIGenerator(OpenAIConfig{APIKey: "test", BaseURL: server.URL})

	var chunks []string
	err := generator.GenerateTextStream(context.Background(), "", "say hello", func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"hel", "lo"}, chunks)
}
