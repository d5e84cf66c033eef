package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RealZimboGuy/relvalmatrix/internal/catalog"
	"github.com/RealZimboGuy/relvalmatrix/internal/engine"
	"github.com/RealZimboGuy/relvalmatrix/internal/util"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/models"
)

type PublicationsController struct {
	AuthController
	Publisher Publisher
}

func NewPublicationsController(publisher Publisher, apiKeyHash string) *PublicationsController {
	return &PublicationsController{
		Publisher:      publisher,
		AuthController: AuthController{ApiKeyHash: apiKeyHash},
	}
}

func (c *PublicationsController) handlePublish(w http.ResponseWriter, r *http.Request) {
	slog.Info("Publish requested", "remote", r.RemoteAddr)

	pub, created, err := c.Publisher.Publish(r.Context())
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrInvalidCatalog):
		util.WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, engine.ErrNumberingChanged):
		util.WriteJSONError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, context.Canceled):
		return
	default:
		slog.Error("Publish failed", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "publish failed")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	util.WriteJSONResponse(w, status, models.PublishResponse{Publication: pub, Created: created})
}
