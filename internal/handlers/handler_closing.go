package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
	"github.com/PettaPuang/nozzle.website-sub005/internal/middleware"
)

type closingHandler struct {
	closingService portssvc.ClosingSvcFacade
	cronSecret     string
}

func newClosingHandler(cs portssvc.ClosingSvcFacade, cronSecret string) *closingHandler {
	return &closingHandler{closingService: cs, cronSecret: cronSecret}
}

// registerClosingRoutes registers the station-scoped monthly closing routes.
func registerClosingRoutes(rg *gin.RouterGroup, closingService portssvc.ClosingSvcFacade) {
	h := newClosingHandler(closingService, "")

	closings := rg.Group("/closings")
	{
		closings.POST("",
			middleware.CheckPermission(domain.RoleOwner, domain.RoleAdministrator),
			h.createClosing)
		closings.GET("/status", h.closingStatus)
	}
}

// registerCronRoutes registers the batch closing trigger used by the external
// scheduler. It authenticates with a shared secret header instead of a user
// token.
func registerCronRoutes(r *gin.Engine, closingService portssvc.ClosingSvcFacade, cronSecret string) {
	h := newClosingHandler(closingService, cronSecret)

	r.POST("/api/v1/cron/close-books", h.autoCloseAll)
}

func (h *closingHandler) createClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gasStationID := c.Param("gasStationId")

	var req dto.CreateClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClosing", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	resp, err := h.closingService.CreateClosing(c.Request.Context(), gasStationID, req.ClosingDate, actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Tutup buku "+resp.MonthName+" berhasil", resp))
}

func (h *closingHandler) closingStatus(c *gin.Context) {
	gasStationID := c.Param("gasStationId")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("year query parameter must be an integer"))
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, dto.Fail("month query parameter must be 1-12"))
		return
	}

	done, err := h.closingService.HasClosingBeenDone(c.Request.Context(), gasStationID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"year": year, "month": month, "closed": done}))
}

func (h *closingHandler) autoCloseAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	secret := c.GetHeader("X-Cron-Secret")
	if h.cronSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.cronSecret)) != 1 {
		logger.Warn("Cron trigger rejected: invalid secret")
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	summary, err := h.closingService.AutoCloseAll(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Tutup buku massal selesai", summary))
}
