package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/internal/inventory"
	pkgErrors "pharmacy-inventory-console/pkg/errors"
)

func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processPageReq(c *gin.Context) (pageReq, error) {
	var req pageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSortReq(c *gin.Context) (inventory.SortKey, error) {
	var req sortReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", err
	}
	return inventory.ParseSortKey(req.Key)
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

func (h *handler) processAdjustReq(c *gin.Context) (adjustReq, error) {
	var req adjustReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.MedicineID = id
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewHTTPError(400, "id must be a positive integer")
	}
	return id, nil
}
