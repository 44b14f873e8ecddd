package http

import (
	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/pkg/response"
)

// View godoc
// @Summary     Current inventory view
// @Description Returns the visible page derived from the snapshot, search, sort and pagination state.
// @Tags        Inventory
// @Produce     json
// @Success     200 {object} viewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/inventory/view [GET]
func (h *handler) View(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newViewResp(h.uc.View(ctx)))
}

// Refresh godoc
// @Summary     Refresh the inventory snapshot
// @Description Re-fetches the medicine list from the backend and replaces the snapshot.
// @Tags        Inventory
// @Produce     json
// @Success     200 {object} viewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/inventory/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Refresh(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(h.uc.View(ctx)))
}

// SetQuery godoc
// @Summary     Set the search text
// @Description Updates the search query and resets pagination to the first page. No backend request.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Search text"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/inventory/query [PUT]
func (h *handler) SetQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newViewResp(h.uc.SetQuery(ctx, req.Query)))
}

// SetPage godoc
// @Summary     Go to a page
// @Description Moves to a 1-based page. Pages past the end clamp to the last page.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body pageReq true "Page number"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/inventory/page [PUT]
func (h *handler) SetPage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.uc.SetPage(ctx, req.Page)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(view))
}

// SetSort godoc
// @Summary     Sort the list
// @Description Sorts by the given key; the same key twice toggles direction.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body sortReq true "Sort key: name, price, stock or expiry"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/inventory/sort [PUT]
func (h *handler) SetSort(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.processSortReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(h.uc.SetSort(ctx, key)))
}

// Create godoc
// @Summary     Add a medicine
// @Description Creates a medicine and refreshes the snapshot. The view resets to page 1 with no search.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Medicine data"
// @Success     200 {object} medicineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/inventory/medicines [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMedicineResp(created))
}

// Update godoc
// @Summary     Update a medicine
// @Description Applies partial changes to one medicine and refreshes the snapshot.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Medicine ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} medicineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Operation already in flight"
// @Router      /api/v1/inventory/medicines/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, req.ID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMedicineResp(updated))
}

// Delete godoc
// @Summary     Delete a medicine
// @Description Removes a medicine and refreshes the snapshot. Stepping off an emptied last page is handled here.
// @Tags        Inventory
// @Produce     json
// @Param       id path int true "Medicine ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Operation already in flight"
// @Router      /api/v1/inventory/medicines/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// AdjustStock godoc
// @Summary     Adjust stock
// @Description Applies a signed stock delta with a mandatory reason. Impossible adjustments are rejected locally.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Medicine ID"
// @Param       body body adjustReq true "Delta and reason"
// @Success     200 {object} medicineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Operation already in flight"
// @Router      /api/v1/inventory/medicines/{id}/adjust [POST]
func (h *handler) AdjustStock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAdjustReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	adjusted, err := h.uc.AdjustStock(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AdjustStock: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMedicineResp(adjusted))
}

// Notifications godoc
// @Summary     Live notifications
// @Description Returns the per-mutation messages that have not expired yet.
// @Tags        Inventory
// @Produce     json
// @Success     200 {object} notificationsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/inventory/notifications [GET]
func (h *handler) Notifications(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newNotificationsResp(h.uc.Notifications(ctx)))
}
