package handler

import (
	"fmt"
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
)

type DownloadHandler struct {
	receiptService service.ReceiptService
}

func NewDownloadHandler(receiptService service.ReceiptService) *DownloadHandler {
	return &DownloadHandler{receiptService: receiptService}
}

func (h *DownloadHandler) RegisterRoutes(router *gin.RouterGroup) {
	download := router.Group("/api/download", middleware.RequireAuth())
	{
		download.GET("/:id", h.DownloadReceipt)
	}
}

// DownloadReceipt streams the receipt's loading slip as a PDF attachment
// @Summary      Download loading slip PDF
// @Description  Renders the receipt's letterhead document and returns it as application/pdf
// @Tags         download
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id   path      string  true  "Receipt ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/download/{id} [get]
func (h *DownloadHandler) DownloadReceipt(c *gin.Context) {
	pdf, slipNo, err := h.receiptService.DownloadPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=loading-slip-%s.pdf", slipNo))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
