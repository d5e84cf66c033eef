package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/RealZimboGuy/relvalmatrix/internal/engine"
	"github.com/RealZimboGuy/relvalmatrix/internal/util"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/models"
)

// CatalogController holds the read-only routes over the published catalog.
type CatalogController struct {
	Reader CatalogReader
}

func NewCatalogController(reader CatalogReader) *CatalogController {
	return &CatalogController{Reader: reader}
}

// writeLookupError maps engine.ErrNotFound to 404 and anything else to 500.
func writeLookupError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, engine.ErrNotFound) {
		util.WriteJSONError(w, http.StatusNotFound, what+" not found")
		return
	}
	slog.Error("Failed to load "+what, "error", err)
	util.WriteJSONError(w, http.StatusInternalServerError, "internal error")
}

func intPathValue(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, false
	}
	return v, true
}

func (c *CatalogController) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	results, err := c.Reader.ListWorkflows()
	if err != nil {
		writeLookupError(w, "workflows", err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, results)
}

func (c *CatalogController) handleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	id, ok := intPathValue(r, "id")
	if !ok {
		util.WriteJSONError(w, http.StatusBadRequest, "id is an integer")
		return
	}
	result, err := c.Reader.GetWorkflow(id)
	if err != nil {
		writeLookupError(w, "workflow", err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, result)
}

func (c *CatalogController) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	year, ok := intPathValue(r, "year")
	if !ok {
		util.WriteJSONError(w, http.StatusBadRequest, "year is an integer")
		return
	}
	results, err := c.Reader.ListScenarios(year)
	if err != nil {
		writeLookupError(w, "scenarios", err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, results)
}

func (c *CatalogController) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	year, ok := intPathValue(r, "year")
	if !ok {
		util.WriteJSONError(w, http.StatusBadRequest, "year is an integer")
		return
	}
	result, err := c.Reader.GetScenario(year, r.PathValue("key"))
	if err != nil {
		writeLookupError(w, "scenario", err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, result)
}

func (c *CatalogController) handleListFragments(w http.ResponseWriter, r *http.Request) {
	results, err := c.Reader.ListFragments()
	if err != nil {
		writeLookupError(w, "fragments", err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, results)
}

func (c *CatalogController) handleGetFragment(w http.ResponseWriter, r *http.Request) {
	result, err := c.Reader.GetFragment(r.PathValue("name"))
	if err != nil {
		writeLookupError(w, "fragment", err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, result)
}

func (c *CatalogController) handleGetNumbering(w http.ResponseWriter, r *http.Request) {
	year, ok := intPathValue(r, "year")
	if !ok {
		util.WriteJSONError(w, http.StatusBadRequest, "year is an integer")
		return
	}
	numbers, err := c.Reader.Numbering(year)
	if err != nil {
		writeLookupError(w, "numbering", err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, models.NumberingResponse{Year: year, Numbers: numbers})
}

func (c *CatalogController) handleLatestPublication(w http.ResponseWriter, r *http.Request) {
	result, err := c.Reader.LatestPublication()
	if err != nil {
		writeLookupError(w, "publication", err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, result)
}
