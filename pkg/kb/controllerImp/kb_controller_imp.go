package controllerImp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"clubchat/pkg/kb/controller"
	"clubchat/pkg/kb/service"
)

type KBCtrl struct {
	s        service.KBService
	allow    map[string]bool
	maxBytes int
}

var _ controller.KBController = (*KBCtrl)(nil)

type articleReq struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Markdown string   `json:"markdown"`
	Status   string   `json:"status"`
	Tags     []string `json:"tags"`
}

func New(s service.KBService, allowedDomains string, maxBytes int) *KBCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &KBCtrl{s: s, allow: allow, maxBytes: maxBytes}
}

func (h *KBCtrl) Create(c echo.Context) error {
	var req articleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Slug) == "" || strings.TrimSpace(req.Markdown) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title, slug and markdown are required"})
	}
	a, n, err := h.s.CreateArticle(c.Request().Context(), service.ArticleInput{
		Title:    strings.TrimSpace(req.Title),
		Slug:     strings.TrimSpace(req.Slug),
		Markdown: req.Markdown,
		Status:   req.Status,
		Tags:     req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"article": a, "chunks": n})
}

func (h *KBCtrl) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	var req articleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	a, n, err := h.s.UpdateArticle(c.Request().Context(), uint(id), service.ArticleInput{
		Title:    strings.TrimSpace(req.Title),
		Slug:     strings.TrimSpace(req.Slug),
		Markdown: req.Markdown,
		Status:   req.Status,
		Tags:     req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
		case errors.Is(err, service.ErrSlugTaken):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"article": a, "chunks": n})
}

func (h *KBCtrl) List(c echo.Context) error {
	as, err := h.s.ListArticles(c.QueryParam("status"), c.QueryParam("search"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, as)
}

func (h *KBCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.s.DeleteArticle(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *KBCtrl) IngestURL(c echo.Context) error {
	var body struct{ URL, Slug, Title string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	host := strings.ToLower(u.Host)
	if !h.allow[host] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	txt, title, err := fetchMainText(body.URL, h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if body.Title != "" {
		title = body.Title
	}
	slug := body.Slug
	if slug == "" {
		slug = slugify(title)
	}

	a, n, err := h.s.CreateArticle(c.Request().Context(), service.ArticleInput{
		Title:    title,
		Slug:     slug,
		Markdown: txt,
		Status:   "draft",
	})
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"article": a, "chunks": n})
}

func (h *KBCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "q required"})
	}
	k := 6
	if v := c.QueryParam("k"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			k = n
		}
	}
	hits, err := h.s.Search(c.Request().Context(), q, k)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	type outChunk struct {
		ChunkID      uint    `json:"chunk_id"`
		ArticleID    uint    `json:"article_id"`
		ArticleTitle string  `json:"article_title,omitempty"`
		Content      string  `json:"content"`
		Score        float64 `json:"score"`
	}
	out := make([]outChunk, 0, len(hits))
	for _, hit := range hits {
		out = append(out, outChunk{
			ChunkID:      hit.Chunk.ChunkID,
			ArticleID:    hit.Chunk.ArticleID,
			ArticleTitle: hit.ArticleTitle,
			Content:      hit.Chunk.Content,
			Score:        hit.Score,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// --- helpers ---

func fetchMainText(u string, maxBytes int) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	// read one byte past the cap so chunked responses without a
	// Content-Length are rejected, not silently truncated
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes) + 1}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	if len(b) > maxBytes {
		return "", "", fmt.Errorf("page too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	if strings.Contains(ct, "text/plain") {
		return string(b), guessTitleFromText(string(b)), nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	// main/article content first, whole document as fallback; paragraphs
	// separated by blank lines so the chunker sees them as boundaries
	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n\n"), title, nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if s == "" {
		s = "article"
	}
	return s
}

func guessTitleFromText(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
