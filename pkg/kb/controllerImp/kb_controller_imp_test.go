package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/ai"
	"clubchat/pkg/kb/chunker"
	"clubchat/pkg/kb/repositoryImp"
	"clubchat/pkg/kb/serviceImp"
)

func newTestCtrl(t *testing.T, allowedDomains string) *KBCtrl {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.KnowledgeArticle{}, &entities.ArticleChunk{}))

	svc := serviceImp.New(repositoryImp.New(db), ai.NewMock(16), chunker.New(0), 16)
	return New(svc, allowedDomains, 0)
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestCreateArticleHandler(t *testing.T) {
	ctrl := newTestCtrl(t, "")

	body := `{"title":"FAQ","slug":"faq","status":"published","markdown":"To jest wystarczająco długi akapit do zaindeksowania w bazie wiedzy."}`
	rec := doJSON(t, ctrl.Create, http.MethodPost, "/kb/articles", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var out struct {
		Chunks int `json:"chunks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Chunks)

	rec = doJSON(t, ctrl.Create, http.MethodPost, "/kb/articles", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code) // slug taken

	rec = doJSON(t, ctrl.Create, http.MethodPost, "/kb/articles", `{"title":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestURLDomainAllowlist(t *testing.T) {
	ctrl := newTestCtrl(t, "example.com")

	rec := doJSON(t, ctrl.IngestURL, http.MethodPost, "/kb/ingest/url", `{"url":"https://evil.test/page"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, ctrl.IngestURL, http.MethodPost, "/kb/ingest/url", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestURLExtractsParagraphs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Regulamin stadionu</title></head><body>
			<main>
				<h1>Regulamin</h1>
				<p>Pierwszy akapit regulaminu stadionu, który jest wystarczająco długi do zaindeksowania.</p>
				<p>Drugi akapit regulaminu stadionu, również wystarczająco długi do zaindeksowania.</p>
			</main>
			<footer><p>Stopka poza main, pominięta przy ekstrakcji treści długiej strony.</p></footer>
		</body></html>`))
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	ctrl := newTestCtrl(t, u.Host)

	rec := doJSON(t, ctrl.IngestURL, http.MethodPost, "/kb/ingest/url", `{"url":"`+srv.URL+`/regulamin"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		Article entities.KnowledgeArticle `json:"article"`
		Chunks  int                       `json:"chunks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Regulamin stadionu", out.Article.Title)
	assert.Equal(t, "regulamin-stadionu", out.Article.Slug)
	assert.Equal(t, entities.ArticleDraft, out.Article.Status)
	assert.Equal(t, 2, out.Chunks) // heading and footer text never make it in
}

func TestFetchMainTextRejectsOversizedStream(t *testing.T) {
	big := strings.Repeat("a", 600)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		// flush before the body so the response streams without a
		// Content-Length header
		w.(http.Flusher).Flush()
		_, _ = w.Write([]byte("<html><body><p>" + big + "</p></body></html>"))
	}))
	defer srv.Close()

	_, _, err := fetchMainText(srv.URL, 200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestSearchHandler(t *testing.T) {
	ctrl := newTestCtrl(t, "")

	body := `{"title":"Stadion","slug":"stadion","status":"published","markdown":"Stadion klubu znajduje się przy alei Piłsudskiego 138 w Łodzi."}`
	rec := doJSON(t, ctrl.Create, http.MethodPost, "/kb/articles", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, ctrl.Search, http.MethodGet, "/kb/search?q=stadion", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var hits []struct {
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hits))
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Content, "Piłsudskiego")

	rec = doJSON(t, ctrl.Search, http.MethodGet, "/kb/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Regulamin stadionu", "regulamin-stadionu"},
		{"  FAQ: Bilety & Karnety!  ", "faq-bilety-karnety"},
		{"???", "article"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in))
	}
}
