package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	engine "github.com/scentmatch/server/internal/quiz"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/fragrances"
)

func TestQuestionsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/quiz/questions", QuestionsHandler())

	req := httptest.NewRequest(http.MethodGet, "/quiz/questions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Questions []engine.Question `json:"questions"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(resp.Questions) != len(engine.Questions()) {
		t.Errorf("expected %d questions, got %d", len(engine.Questions()), len(resp.Questions))
	}

	for _, q := range resp.Questions {
		if q.ID == "" || q.Prompt == "" || len(q.Options) == 0 {
			t.Errorf("incomplete question in response: %+v", q)
		}
	}
}

func TestFragranceIDs(t *testing.T) {
	results := []recommend.Result{
		{Fragrance: fragrances.Fragrance{ID: "chanel__bleu-de-chanel"}},
		{Fragrance: fragrances.Fragrance{ID: "dior__sauvage"}},
	}

	ids := fragranceIDs(results)

	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}

	if ids[0] != "chanel__bleu-de-chanel" || ids[1] != "dior__sauvage" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestFragranceIDsEmpty(t *testing.T) {
	ids := fragranceIDs(nil)

	if ids == nil {
		t.Fatal("expected empty slice, got nil")
	}

	if len(ids) != 0 {
		t.Errorf("expected 0 ids, got %d", len(ids))
	}
}
