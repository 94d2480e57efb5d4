package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
	"github.com/PettaPuang/nozzle.website-sub005/internal/middleware"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	unloadService      portssvc.UnloadSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, us portssvc.UnloadSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts, unloadService: us}
}

// registerTransactionRoutes registers the transaction lifecycle routes. Role
// capability per transaction type is enforced by the service policy table, so
// the routes only require an authenticated station member.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, unloadService portssvc.UnloadSvcFacade) {
	h := newTransactionHandler(transactionService, unloadService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionId", h.getTransaction)
		transactions.POST("/:transactionId/approve", h.approveTransaction)
		transactions.POST("/:transactionId/reject", h.rejectTransaction)
		transactions.GET("/:transactionId/remaining-volume", h.remainingVolume)
	}
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gasStationID := c.Param("gasStationId")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), gasStationID, req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Transaksi berhasil dibuat", dto.ToTransactionResponse(txn)))
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	gasStationID := c.Param("gasStationId")
	transactionID := c.Param("transactionId")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), gasStationID, transactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn)))
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gasStationID := c.Param("gasStationId")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), gasStationID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponses(txns)))
}

func (h *transactionHandler) approveTransaction(c *gin.Context) {
	gasStationID := c.Param("gasStationId")
	transactionID := c.Param("transactionId")

	actor, _ := middleware.GetActorFromContext(c)
	txn, err := h.transactionService.ApproveTransaction(c.Request.Context(), gasStationID, transactionID, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Transaksi disetujui", dto.ToTransactionResponse(txn)))
}

func (h *transactionHandler) rejectTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gasStationID := c.Param("gasStationId")
	transactionID := c.Param("transactionId")

	var req dto.RejectTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RejectTransaction", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	txn, err := h.transactionService.RejectTransaction(c.Request.Context(), gasStationID, transactionID, actor, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Transaksi ditolak", dto.ToTransactionResponse(txn)))
}

func (h *transactionHandler) remainingVolume(c *gin.Context) {
	transactionID := c.Param("transactionId")

	remaining, err := h.unloadService.RemainingVolume(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"remainingVolume": remaining}))
}
