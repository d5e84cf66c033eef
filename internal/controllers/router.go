package controllers

import "net/http"

// RegisterRoutes wires the HTTP routes for this controller.
func (c *CatalogController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/workflows", c.handleListWorkflows)
	mux.HandleFunc("GET /api/workflows/{id}", c.handleGetWorkflow)
	mux.HandleFunc("GET /api/scenarios/{year}", c.handleListScenarios)
	mux.HandleFunc("GET /api/scenarios/{year}/{key}", c.handleGetScenario)
	mux.HandleFunc("GET /api/fragments", c.handleListFragments)
	mux.HandleFunc("GET /api/fragments/{name}", c.handleGetFragment)
	mux.HandleFunc("GET /api/numbering/{year}", c.handleGetNumbering)
	mux.HandleFunc("GET /api/publications/latest", c.handleLatestPublication)
}
func (c *PublicationsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/publications", c.RequireApiKey(c.handlePublish))
}
