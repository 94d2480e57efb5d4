package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
	"github.com/PettaPuang/nozzle.website-sub005/internal/middleware"
)

type unloadHandler struct {
	unloadService portssvc.UnloadSvcFacade
}

func newUnloadHandler(us portssvc.UnloadSvcFacade) *unloadHandler {
	return &unloadHandler{unloadService: us}
}

// registerUnloadRoutes registers the fuel delivery reconciliation routes.
// Operators record deliveries; managers finalize them.
func registerUnloadRoutes(rg *gin.RouterGroup, unloadService portssvc.UnloadSvcFacade) {
	h := newUnloadHandler(unloadService)

	unloads := rg.Group("/unloads")
	{
		unloads.POST("",
			middleware.CheckPermission(domain.RoleOperator, domain.RoleManager, domain.RoleAdministrator),
			h.requestUnload)
		unloads.GET("", h.listUnloads)
		unloads.POST("/:unloadId/approve",
			middleware.CheckPermission(domain.RoleManager, domain.RoleAdministrator),
			h.approveUnload)
		unloads.POST("/:unloadId/reject",
			middleware.CheckPermission(domain.RoleManager, domain.RoleAdministrator),
			h.rejectUnload)
	}
}

// registerRepairRoutes registers the administrative delivered-volume repair,
// outside any station scope.
func registerRepairRoutes(rg *gin.RouterGroup, unloadService portssvc.UnloadSvcFacade) {
	h := newUnloadHandler(unloadService)

	rg.POST("/admin/repair-delivered-volumes",
		middleware.CheckPermission(domain.RoleAdministrator),
		h.repairDeliveredVolumes)
}

func (h *unloadHandler) requestUnload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RequestUnloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RequestUnload", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	unload, err := h.unloadService.RequestUnload(c.Request.Context(), req, actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Pembongkaran berhasil dicatat", dto.ToUnloadResponse(unload)))
}

func (h *unloadHandler) listUnloads(c *gin.Context) {
	purchaseID := c.Query("purchaseTransactionID")
	if purchaseID == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("purchaseTransactionID query parameter is required"))
		return
	}

	unloads, err := h.unloadService.ListUnloads(c.Request.Context(), purchaseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUnloadResponses(unloads)))
}

func (h *unloadHandler) approveUnload(c *gin.Context) {
	unloadID := c.Param("unloadId")

	actor, _ := middleware.GetActorFromContext(c)
	unload, err := h.unloadService.ApproveUnload(c.Request.Context(), unloadID, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Pembongkaran disetujui", dto.ToUnloadResponse(unload)))
}

func (h *unloadHandler) rejectUnload(c *gin.Context) {
	unloadID := c.Param("unloadId")

	actor, _ := middleware.GetActorFromContext(c)
	unload, err := h.unloadService.RejectUnload(c.Request.Context(), unloadID, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Pembongkaran ditolak", dto.ToUnloadResponse(unload)))
}

func (h *unloadHandler) repairDeliveredVolumes(c *gin.Context) {
	var gasStationID *string
	if id := c.Query("gasStationID"); id != "" {
		gasStationID = &id
	}

	repaired, err := h.unloadService.RepairDeliveredVolumes(c.Request.Context(), gasStationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Perbaikan volume selesai", dto.RepairResponse{RepairedCount: repaired}))
}
