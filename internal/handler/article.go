package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/news-service/internal/apperror"
	"github.com/sakif/news-service/internal/service"
)

// ArticleHandler exposes the news CRUD operations over HTTP.
//
// The handler only knows HTTP: it parses paths and bodies, calls the service,
// and serializes the outcome. Field-presence rules and their exact 400
// messages live in the service; status-code mapping lives in writeError.
type ArticleHandler struct {
	service *service.ArticleService
	logger  *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(service *service.ArticleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{service: service, logger: logger}
}

// createRequest is the body of POST /news. Absent fields decode to "", which
// the service treats the same as empty — a missing key and an empty string
// are both "missing".
type createRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// updateRequest is the body of PUT /news/{id}. author is not updatable, so
// it simply isn't a field here — unknown keys in the body are ignored.
type updateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// pathID parses the {id} segment. The route pattern constrains it to digits,
// so the only way ParseInt fails is a value too large for int64 — which no
// row can have, so it reports the same not-found as an unmatched id.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, apperror.NotFound()
	}
	return id, nil
}

// HandleList returns all articles, newest first.
//
// HTTP: GET /news
// 200: JSON array of articles — [] when the store is empty, never null.
func (h *ArticleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, articles)
}

// HandleGetByID returns one article.
//
// HTTP: GET /news/{id}
// 200: the article object
// 404: {"error":"Not found"} when no row matches
func (h *ArticleHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	article, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// HandleCreate stores a new article.
//
// HTTP: POST /news
// BODY: {"title":"...","content":"...","author":"..."}
// 201: {"id": <new id>}
// 400: {"error":"title, content, author required"}
//
// A body that isn't valid JSON gets the same 400 as one with missing fields:
// from the caller's side an undecodable body and an absent field are
// indistinguishable, and the message already names everything required.
func (h *ArticleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid create body", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("title, content, author required"))
		return
	}

	article, err := h.service.Create(r.Context(), req.Title, req.Content, req.Author)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: article.ID})
}

// HandleUpdate rewrites title and content of an existing article.
//
// HTTP: PUT /news/{id}
// BODY: {"title":"...","content":"..."}
// 200: {"status":"updated"} — including when the id matches no row
// 400: {"error":"title and content required"}
func (h *ArticleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid update body", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("title and content required"))
		return
	}

	if err := h.service.Update(r.Context(), id, req.Title, req.Content); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "updated"})
}

// HandleDelete removes an article.
//
// HTTP: DELETE /news/{id}
// 200: {"status":"deleted"} — including when the id matches no row
func (h *ArticleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}
