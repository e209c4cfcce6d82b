package reservation

import (
	"net/http"
	"strconv"

	"gearshare/internal/middleware"
	"gearshare/internal/pkg/response"
	"gearshare/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	g := v1.Group("/reservations")
	{
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.GET("/reserver/:username", h.ListByReserver)
		g.GET("/owner/:username", h.ListByOwner)
		g.GET("/owner/:username/earnings", h.Earnings)

		g.POST("", middleware.RequirePrincipal(), h.Create)
		g.PUT("/:id", middleware.RequirePrincipal(), h.Update)
		g.DELETE("/:id", middleware.RequirePrincipal(), h.Delete)
	}
}

// Create books equipment for a date range.
// @Summary		Create reservation
// @Tags		Reservations
// @Param		X-Username	header	string						true	"Reserver"
// @Param		request		body	CreateReservationRequest	true	"equipment_id, start_date, end_date"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{} "Invalid dates or missing principal"
// @Failure		404	{object}	map[string]interface{} "Equipment not found"
// @Router		/reservations [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", validator.Describe(errs), errs)
		return
	}

	res, err := h.service.Create(c.Request.Context(), middleware.Username(c), req.EquipmentID, req.StartDate, req.EndDate)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

// Update applies a status and/or review-link patch.
// @Summary		Update reservation
// @Tags		Reservations
// @Param		id			path	int							true	"Reservation ID"
// @Param		X-Username	header	string						true	"Owner or reserver"
// @Param		request		body	UpdateReservationRequest	true	"Partial update"
// @Router		/reservations/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), middleware.Username(c), id, ReservationPatch{
		Status:   req.Status,
		ReviewID: req.ReviewID,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), middleware.Username(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) ListByReserver(c *gin.Context) {
	rows, err := h.service.ListByReserver(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	rows, err := h.service.ListByOwner(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Earnings reports an owner's revenue in BDT; ?detail=true adds the
// completed reservations behind it.
// @Summary		Owner earnings
// @Tags		Reservations
// @Param		username	path	string	true	"Owner"
// @Param		detail		query	bool	false	"Include completed reservations"
// @Router		/reservations/owner/{username}/earnings [GET]
func (h *Handler) Earnings(c *gin.Context) {
	owner := c.Param("username")
	detail, _ := strconv.ParseBool(c.Query("detail"))

	var (
		data any
		err  error
	)
	if detail {
		data, err = h.service.EarningsDetail(c.Request.Context(), owner)
	} else {
		data, err = h.service.Earnings(c.Request.Context(), owner)
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return 0, false
	}
	return id, true
}
