package review

import (
	"net/http"
	"strconv"

	"gearshare/internal/middleware"
	"gearshare/internal/pkg/response"
	"gearshare/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	g := v1.Group("/reviews")
	{
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.GET("/equipment/:id", h.ListByEquipment)
		g.GET("/reservation/:id", h.GetByReservation)
		g.GET("/owner/:username/summary", h.OwnerSummary)

		g.POST("", h.Create)
		g.PUT("/:id", middleware.RequirePrincipal(), h.Update)
		g.DELETE("/:id", middleware.RequirePrincipal(), h.Delete)
	}
}

// Create leaves a review on a returned or completed reservation.
// @Summary		Create review
// @Description	One review per reservation. Reviewer and owner are taken from the reservation.
// @Tags		Reviews
// @Param		request	body	CreateReviewRequest	true	"reservation_id, rating, comment"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{} "Rating out of range, rental not fulfilled, or already reviewed"
// @Failure		404	{object}	map[string]interface{} "Reservation not found"
// @Router		/reviews [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", validator.Describe(errs), errs)
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), CreateInput{
		ReservationID: req.ReservationID,
		EquipmentID:   req.EquipmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c, "review")
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rv, err := h.svc.Update(c.Request.Context(), middleware.Username(c), id, ReviewPatch{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rv)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, "review")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.Username(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c, "review")
	if !ok {
		return
	}
	rv, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rv)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) ListByEquipment(c *gin.Context) {
	id, ok := parseID(c, "equipment")
	if !ok {
		return
	}
	items, err := h.svc.ListByEquipment(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetByReservation(c *gin.Context) {
	id, ok := parseID(c, "reservation")
	if !ok {
		return
	}
	rv, err := h.svc.GetByReservation(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rv)
}

// OwnerSummary: GET /reviews/owner/:username/summary[?detail=true]
func (h *Handler) OwnerSummary(c *gin.Context) {
	detail, _ := strconv.ParseBool(c.Query("detail"))
	summary, err := h.svc.OwnerSummary(c.Request.Context(), c.Param("username"), detail)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

func parseID(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+what+" ID")
		return 0, false
	}
	return id, true
}
