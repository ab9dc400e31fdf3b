package handler

import (
	"github.com/labstack/echo/v4"

	"chainmart/internal/usecase"
	"chainmart/pkg/response"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

type fileReportRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=50"`
	Email string `json:"email" validate:"required,email"`
	Issue string `json:"issue" validate:"required,min=5,max=1000"`
}

func (h *ReportHandler) FileReport(c echo.Context) error {
	var req fileReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.FileReport(c.Request().Context(), usecase.FileReportInput{
		Name:  req.Name,
		Email: req.Email,
		Issue: req.Issue,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reportUseCase.ListReports(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reports)
}
