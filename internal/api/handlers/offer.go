package handlers

import (
	"net/http"

	"parts-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OfferHandler handles supplier offer search and selection
type OfferHandler struct {
	aggregator   service.OfferAggregatorInterface
	offerService service.OfferServiceInterface
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(aggregator service.OfferAggregatorInterface, offerService service.OfferServiceInterface) *OfferHandler {
	return &OfferHandler{
		aggregator:   aggregator,
		offerService: offerService,
	}
}

// SearchOffers handles POST /projects/:id/offers/search
// @Summary Search supplier offers
// @Description Query every configured supplier for the items still to buy and replace the stored offers
// @Tags offers
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.AggregationResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Project is locked"
// @Router /projects/{id}/offers/search [post]
func (h *OfferHandler) SearchOffers(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	result, err := h.aggregator.SearchOffers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListOffers handles GET /projects/:id/offers
// @Summary List stored offers of a project
// @Tags offers
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} service.OfferResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	offers, err := h.offerService.ListOffers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, offers)
}

// SelectOffer handles POST /offers/:id/select
// @Summary Select an offer
// @Description Mark the offer as selected and clear the selection of the other offers of the same item
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID (UUID)"
// @Success 200 {object} service.OfferResponse
// @Failure 404 {object} ErrorResponse
// @Router /offers/{id}/select [post]
func (h *OfferHandler) SelectOffer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "offer")
	if !ok {
		return
	}

	offer, err := h.offerService.SelectOffer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

// AutoSelect handles POST /projects/:id/offers/auto-select
// @Summary Select the cheapest offer of every item
// @Tags offers
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.AutoSelectResult
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/offers/auto-select [post]
func (h *OfferHandler) AutoSelect(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	result, err := h.offerService.AutoSelectCheapest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
