package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mgiraudo/club_payments_app/internal/apperrors"
	portssvc "github.com/mgiraudo/club_payments_app/internal/core/ports/services"
	"github.com/mgiraudo/club_payments_app/internal/dto"
	"github.com/mgiraudo/club_payments_app/internal/middleware"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// RegisterPaymentRoutes registers routes related to payments.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.registerPayment)
		payments.GET("/:paymentID", h.getPayment)
		payments.PUT("/:paymentID", h.updatePayment)
		payments.DELETE("/:paymentID", h.deletePayment)
	}
}

// registerPayment handles the registration workflow, including the
// confirm-and-retry protocol: a cadence break is answered with 200 and
// needsConfirmation=true, a created payment with 201.
func (h *paymentHandler) registerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// Client names are stored uppercased; normalization is the caller's job
	// as far as the engine is concerned.
	req.Name = strings.ToUpper(strings.TrimSpace(req.Name))

	logger = logger.With(slog.String("client_name", req.Name))
	logger.Info("Received request to register payment",
		slog.Int("month", req.Month),
		slog.Int("year", req.Year),
		slog.Bool("skip_validation", req.SkipValidation))

	result, err := h.paymentService.RegisterPayment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Client already paid the requested period")
			c.JSON(http.StatusConflict, gin.H{"error": "The client already paid that month"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid payment data", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to register payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register payment"})
		}
		return
	}

	if result.NeedsConfirmation {
		logger.Info("Registration paused pending confirmation",
			slog.Int("expected_month", result.Expected.Month),
			slog.Int("expected_year", result.Expected.Year))
		c.JSON(http.StatusOK, dto.ToRegisterPaymentResponse(result))
		return
	}

	logger.Info("Payment registered successfully", slog.Int64("payment_id", result.Payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToRegisterPaymentResponse(result))
}

// getPayment retrieves one payment with its client's name, for the edit form.
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parsePaymentID(c)
	if !ok {
		return
	}

	detail, err := h.paymentService.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment not found", slog.Int64("payment_id", paymentID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			logger.Error("Failed to get payment from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentDetailResponse(detail))
}

// updatePayment edits a payment's amount, covered period and description.
func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parsePaymentID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("payment_id", paymentID))
	logger.Info("Received request to update payment",
		slog.Int("month", req.Month),
		slog.Int("year", req.Year))

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), paymentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Client already paid the requested period")
			c.JSON(http.StatusConflict, gin.H{"error": "The client already paid that month"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid payment data", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		}
		return
	}

	logger.Info("Payment updated successfully")
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment removes a payment; the owning client goes with it when no
// payments remain.
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parsePaymentID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("payment_id", paymentID))
	logger.Info("Received request to delete payment")

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			logger.Error("Failed to delete payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		}
		return
	}

	logger.Info("Payment deleted successfully")
	c.Status(http.StatusNoContent)
}

// parsePaymentID parses the :paymentID path parameter, answering 400 itself
// when the value is not a positive integer.
func parsePaymentID(c *gin.Context) (int64, bool) {
	paymentID, err := strconv.ParseInt(c.Param("paymentID"), 10, 64)
	if err != nil || paymentID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return 0, false
	}
	return paymentID, true
}
