package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	receiptService service.ReceiptService
}

func NewReceiptHandler(receiptService service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

func (h *ReceiptHandler) RegisterRoutes(router *gin.RouterGroup) {
	receipts := router.Group("/api/receipts", middleware.RequireAuth())
	{
		receipts.POST("", h.CreateReceipt)
		receipts.GET("", h.ListReceipts)
		receipts.GET("/next-slip-number", h.NextSlipNumber)
		receipts.GET("/:id", h.GetReceipt)
		receipts.PUT("/:id", h.UpdateReceipt)
		receipts.DELETE("/:id", h.DeleteReceipt)
	}
}

// CreateReceipt creates a new loading slip receipt
// @Summary      Create receipt
// @Description  Validates the payload, derives the balance and stores the receipt
// @Tags         receipts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ReceiptPayload  true  "Receipt Payload"
// @Success      201      {object}  response.Response{data=service.ReceiptResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/receipts [post]
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	var req service.ReceiptPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, receipt))
}

// ListReceipts returns receipt summaries, newest first
// @Summary      List receipts
// @Tags         receipts
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 50)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /api/receipts [get]
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	params := pagination.Parse(c)

	receipts, total, err := h.receiptService.ListReceipts(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"receipts": receipts,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	}))
}

// NextSlipNumber suggests the next loading slip number for the current
// financial year without reserving it
// @Summary      Next slip number
// @Tags         receipts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=object}
// @Failure      500  {object}  response.Response
// @Router       /api/receipts/next-slip-number [get]
func (h *ReceiptHandler) NextSlipNumber(c *gin.Context) {
	slipNo, err := h.receiptService.NextSlipNumber(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to generate loading slip number"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"loading_slip_no": slipNo}))
}

// GetReceipt returns a single receipt by id
// @Summary      Get receipt
// @Tags         receipts
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Receipt ID"
// @Success      200  {object}  response.Response{data=service.ReceiptResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/receipts/{id} [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, receipt))
}

// UpdateReceipt replaces a receipt's fields and re-derives the balance
// @Summary      Update receipt
// @Tags         receipts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Receipt ID"
// @Param        payload  body      service.ReceiptPayload  true  "Receipt Payload"
// @Success      200      {object}  response.Response{data=service.ReceiptResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/receipts/{id} [put]
func (h *ReceiptHandler) UpdateReceipt(c *gin.Context) {
	var req service.ReceiptPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, receipt))
}

// DeleteReceipt removes a receipt; there are no child entities to cascade
// @Summary      Delete receipt
// @Tags         receipts
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Receipt ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/receipts/{id} [delete]
func (h *ReceiptHandler) DeleteReceipt(c *gin.Context) {
	if err := h.receiptService.DeleteReceipt(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Receipt deleted successfully"))
}
