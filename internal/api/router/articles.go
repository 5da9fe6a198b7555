package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rbiomeds/newsdesk/internal/apperr"
	"github.com/rbiomeds/newsdesk/internal/caldate"
	"github.com/rbiomeds/newsdesk/internal/domain"
	"github.com/rbiomeds/newsdesk/internal/dto"
	"github.com/rbiomeds/newsdesk/internal/observability/metrics"
	"github.com/rbiomeds/newsdesk/internal/sitequery"
	"github.com/rbiomeds/newsdesk/internal/storage"
)

type ArticlesRouter struct {
	e        *echo.Echo
	storer   storage.Storer
	registry sitequery.Registry
}

func NewArticlesRouter(e *echo.Echo, storer storage.Storer, registry sitequery.Registry) *ArticlesRouter {
	return &ArticlesRouter{
		e:        e,
		storer:   storer,
		registry: registry,
	}
}

func (r *ArticlesRouter) Bind() {
	r.e.GET("/api/articles", r.listHandler)
	r.e.POST("/api/articles", r.createHandler)
	r.e.PUT("/api/articles/:id", r.updateHandler)
	r.e.DELETE("/api/articles/:id", r.deleteHandler)
}

type articleRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Sites       []string `json:"sites"`
	Date        string   `json:"date"`
}

// toDraft builds a draft from the request body. An absent date stays zero
// so create defaults it and update leaves the stored value alone.
func (req articleRequest) toDraft() (domain.Draft, error) {
	draft := domain.Draft{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Sites:       req.Sites,
	}
	if req.Date != "" {
		date, err := caldate.Parse(req.Date)
		if err != nil {
			return domain.Draft{}, err
		}
		draft.Date = date
	}
	return draft, nil
}

// listHandler godoc
// @Summary List articles
// @Description Lists articles, newest editorial date first, optionally filtered by site visibility
// @Tags articles
// @Param site query string false "site selector (site id or 'both')"
// @Produce json
// @Success 200 {array} dto.Article
// @Router /api/articles [get]
func (r *ArticlesRouter) listHandler(c echo.Context) error {
	filter := r.registry.Filter(c.QueryParam("site"))

	articles, err := r.storer.Find(c.Request().Context(), filter)
	metrics.RecordArticleOperation("find", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromArticles(articles))
}

// createHandler godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Success 201 {object} dto.Article
// @Router /api/articles [post]
func (r *ArticlesRouter) createHandler(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	draft, err := req.toDraft()
	if err != nil {
		return err
	}

	article, err := r.storer.Create(c.Request().Context(), draft)
	metrics.RecordArticleOperation("create", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.FromArticle(article))
}

// updateHandler godoc
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "article id"
// @Success 200 {object} dto.Article
// @Router /api/articles/{id} [put]
func (r *ArticlesRouter) updateHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	draft, err := req.toDraft()
	if err != nil {
		return err
	}

	article, err := r.storer.Update(c.Request().Context(), id, draft)
	metrics.RecordArticleOperation("update", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromArticle(article))
}

// deleteHandler godoc
// @Summary Delete an article
// @Tags articles
// @Produce json
// @Param id path string true "article id"
// @Success 200 {object} map[string]string
// @Router /api/articles/{id} [delete]
func (r *ArticlesRouter) deleteHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	err = r.storer.Delete(c.Request().Context(), id)
	metrics.RecordArticleOperation("delete", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "article deleted"})
}

// parseID maps a malformed id to not-found: such a record cannot exist.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.NewNotFound("article", raw)
	}
	return id, nil
}
