package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "pharmacy-inventory-console/pkg/errors"
	"pharmacy-inventory-console/pkg/response"
)

// Overview godoc
// @Summary     Dashboard overview
// @Description Returns headline stats, active alerts and demand predictions from the last load.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} overviewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/dashboard/overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newOverviewResp(h.uc.Overview(ctx)))
}

// Refresh godoc
// @Summary     Reload the dashboard
// @Description Re-fetches alert summary, alert list and predictions from the backend.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} overviewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/dashboard/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Load(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Load: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newOverviewResp(h.uc.Overview(ctx)))
}

// GenerateAlerts godoc
// @Summary     Regenerate alerts
// @Description Asks the backend to rebuild low-stock and expiry alerts, then reloads the overview.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} overviewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/dashboard/alerts/generate [POST]
func (h *handler) GenerateAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.GenerateAlerts(ctx); err != nil {
		h.l.Errorf(ctx, "uc.GenerateAlerts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newOverviewResp(h.uc.Overview(ctx)))
}

// DeleteAlert godoc
// @Summary     Dismiss an alert
// @Description Deletes one alert on the backend, then reloads the overview.
// @Tags        Dashboard
// @Produce     json
// @Param       id path int true "Alert ID"
// @Success     200 {object} overviewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/dashboard/alerts/{id} [DELETE]
func (h *handler) DeleteAlert(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Error(c, pkgErrors.NewHTTPError(400, "id must be a positive integer"), nil)
		return
	}

	if err := h.uc.DeleteAlert(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteAlert: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newOverviewResp(h.uc.Overview(ctx)))
}

// UploadSales godoc
// @Summary     Upload weekly sales data
// @Description Forwards a CSV or Excel sales file to the backend. Stock, predictions and alerts change server-side; the overview reloads afterwards.
// @Tags        Dashboard
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Sales file (.csv or .xlsx)"
// @Success     200 {object} uploadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/dashboard/sales/upload [POST]
func (h *handler) UploadSales(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, "file is required"), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, "cannot read uploaded file"), nil)
		return
	}
	defer file.Close()

	result, err := h.uc.UploadSales(ctx, fileHeader.Filename, file)
	if err != nil {
		h.l.Errorf(ctx, "uc.UploadSales: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUploadResp(result))
}
