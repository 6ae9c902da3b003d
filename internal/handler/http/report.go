package http

import (
	"net/http"

	"github.com/sweetlane/pos-backend-go/internal/domain/report"
	"github.com/sweetlane/pos-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetSalesReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetSalesReport implements ReportHandler.
func (h *reportHandlerImpl) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetSalesReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
