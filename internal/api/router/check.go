package router

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/taut-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/taut-hunter/internal/check"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const kindInvalidRequest = "invalid_request"

type CheckRequest struct {
	Formula string `json:"formula" example:"((p → q) ∨ (q → p))"`
}

type CheckRouter struct {
	e       *echo.Echo
	checker *check.Checker
	reader  storage.Reader
}

func NewCheckRouter(e *echo.Echo, checker *check.Checker, reader storage.Reader) *CheckRouter {
	return &CheckRouter{
		e:       e,
		checker: checker,
		reader:  reader,
	}
}

func (r *CheckRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.POST("/check", r.checkHandler)
	v1.GET("/checks", r.listHandler)
	v1.GET("/checks/:id", r.getHandler)
}

// checkHandler godoc
// @Summary Check a formula
// @Description Decides whether a propositional formula is a tautology. Non-tautologies come with the lowest falsifying assignment.
// @Tags checks
// @Accept json
// @Produce json
// @Param request body CheckRequest true "Formula to check"
// @Success 200 {object} domain.Check
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /v1/check [post]
func (r *CheckRouter) checkHandler(c echo.Context) error {
	var req CheckRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err).WithKind(kindInvalidRequest, -1)
	}

	result, err := r.checker.Check(c.Request().Context(), req.Formula)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// listHandler godoc
// @Summary List checks
// @Description Returns the check history, newest first.
// @Tags checks
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} pagination.OffsetResult[domain.Check]
// @Failure 400 {object} map[string]interface{}
// @Router /v1/checks [get]
func (r *CheckRouter) listHandler(c echo.Context) error {
	page, err := intQueryParam(c, "page")
	if err != nil {
		return err
	}
	if page > pagination.PageMax {
		return apperr.NewValidation(fmt.Sprintf("page must not exceed %d", pagination.PageMax)).WithKind(kindInvalidRequest, -1)
	}
	size, err := intQueryParam(c, "size")
	if err != nil {
		return err
	}

	result, err := r.reader.List(c.Request().Context(), pagination.OffsetRequest{Page: page, Size: size})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// getHandler godoc
// @Summary Get a check
// @Tags checks
// @Produce json
// @Param id path string true "Check ID"
// @Success 200 {object} domain.Check
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/checks/{id} [get]
func (r *CheckRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid check id", err).WithKind(kindInvalidRequest, -1)
	}

	result, err := r.reader.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperr.NewValidation(name + " must be a positive integer").WithKind(kindInvalidRequest, -1)
	}
	return n, nil
}
