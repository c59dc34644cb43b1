package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// WelcomeMessage is the plain-text body of GET /.
const WelcomeMessage = "Welcome! This is a basic Quotes API"

// QuoteHandler handles the /quotes endpoints.
type QuoteHandler struct {
	service        *app.QuoteService
	locationPrefix string
}

// NewQuoteHandler creates a quote handler. locationPrefix is prepended to
// the Location header of created quotes, e.g. "/api" gives /api/quotes/{id}.
func NewQuoteHandler(service *app.QuoteService, locationPrefix string) *QuoteHandler {
	return &QuoteHandler{
		service:        service,
		locationPrefix: locationPrefix,
	}
}

// Welcome handles GET /.
func (h *QuoteHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

// Create handles POST /quotes. Any id in the body is ignored.
func (h *QuoteHandler) Create(c *gin.Context) {
	var body dto.QuoteView
	if !bindBody(c, &body) {
		return
	}

	quote, err := h.service.Create(c.Request.Context(), body.Content, body.Source, body.SubSource)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", h.locationPrefix+"/quotes/"+strconv.FormatInt(quote.ID, 10))
	c.JSON(http.StatusCreated, dto.NewQuoteView(quote))
}

// List handles GET /quotes.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteViews(quotes))
}

// Get handles GET /quotes/:id.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	quote, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteView(quote))
}

// Search handles GET /quotes/search/:query. Matches are returned as full
// records; no match answers 404 with an empty array.
func (h *QuoteHandler) Search(c *gin.Context) {
	quotes, err := h.service.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if len(quotes) == 0 {
		status = http.StatusNotFound
	}

	c.JSON(status, dto.NewQuoteRecords(quotes))
}

// Update handles PUT /quotes/:id.
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body dto.QuoteView
	if !bindBody(c, &body) {
		return
	}

	err := h.service.Update(c.Request.Context(), id, body.Content, body.Source, body.SubSource)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /quotes/:id and returns the removed quote.
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	quote, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteView(quote))
}

// RegisterQuoteRoutes registers the quote routes on rg. Extra handlers,
// such as a request timeout, run before each quote handler.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup, extra ...gin.HandlerFunc) {
	quotes := rg.Group("/quotes", extra...)

	quotes.POST("", h.Create)
	quotes.GET("", h.List)
	quotes.GET("/search/:query", h.Search)
	quotes.GET("/:id", h.Get)
	quotes.PUT("/:id", h.Update)
	quotes.DELETE("/:id", h.Delete)
}

func bindID(c *gin.Context) (int64, bool) {
	var param dto.QuoteIDParam
	if err := dto.BindURI(c, &param); err != nil {
		dto.RespondBadRequest(c, "id must be an integer")
		return 0, false
	}

	return param.ID, true
}

func bindBody(c *gin.Context, body *dto.QuoteView) bool {
	if err := dto.BindJSON(c, body); err != nil {
		dto.RespondBadRequest(c, "request body must be a JSON quote")
		return false
	}

	return true
}

// respondError answers a missing quote with an empty 404 and delegates
// everything else to the standard error envelope.
func respondError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		c.Status(http.StatusNotFound)
		return
	}

	dto.HandleError(c, err)
}
