package equipment

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"gearshare/internal/domain"
	"gearshare/internal/middleware"
	"gearshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	g := v1.Group("/equipment")
	{
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.GET("/owner/:username", h.ListByOwner)

		g.POST("", middleware.RequirePrincipal(), h.Create)
		g.PUT("/:id", middleware.RequirePrincipal(), h.Update)
		g.DELETE("/:id", middleware.RequirePrincipal(), h.Delete)
	}
}

// List returns the marketplace listings.
// @Summary		List equipment
// @Description	Hides unavailable listings except the viewer's own.
// @Tags		Equipment
// @Param		category	query	string	false	"Exact category; All disables the filter"
// @Param		viewer		query	string	false	"Viewing username"
// @Router		/equipment [GET]
func (h *Handler) List(c *gin.Context) {
	viewer := c.Query("viewer")
	if viewer == "" {
		viewer = middleware.Username(c)
	}
	items, err := h.service.List(c.Request.Context(), c.Query("category"), viewer)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	items, err := h.service.ListByOwner(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create lists new equipment.
// @Summary		Create equipment
// @Tags		Equipment
// @Accept		multipart/form-data
// @Accept		json
// @Param		owner_username	header		string	true	"Owner"
// @Param		name			formData	string	true	"Name"
// @Param		category		formData	string	true	"Category"
// @Param		daily_price		formData	number	true	"Daily price"
// @Param		pickup_location	formData	string	true	"Pickup location"
// @Param		photo			formData	file	false	"Photo"
// @Success		201	{object}	map[string]interface{}
// @Router		/equipment [POST]
func (h *Handler) Create(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	e, err := h.service.Create(c.Request.Context(), middleware.Username(c), patch)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	e, err := h.service.Update(c.Request.Context(), middleware.Username(c), id, patch)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
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
	response.Success(c, http.StatusOK, gin.H{"message": "Equipment deleted successfully"})
}

// bindPatch reads either a multipart form (with an optional "photo" file)
// or a JSON body. It writes the error response itself on failure.
func bindPatch(c *gin.Context) (EquipmentPatch, bool) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var req EquipmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return EquipmentPatch{}, false
		}
		return req.patch(), true
	}

	var patch EquipmentPatch
	patch.Name = formValue(c, "name")
	patch.Category = formValue(c, "category")
	patch.PickupLocation = formValue(c, "pickup_location")
	patch.PhotoURL = formValue(c, "photo_url")

	if v := formValue(c, "daily_price"); v != nil {
		price, err := decimal.NewFromString(strings.TrimSpace(*v))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "daily_price must be a number")
			return EquipmentPatch{}, false
		}
		patch.DailyPrice = &price
	}
	if v := formValue(c, "status"); v != nil {
		status := domain.EquipmentStatus(strings.TrimSpace(*v))
		patch.Status = &status
	}
	if v := formValue(c, "booked_until"); v != nil {
		until, err := domain.ParseDate(*v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "booked_until must be YYYY-MM-DD")
			return EquipmentPatch{}, false
		}
		patch.BookedUntil = &until
	}

	if fh, err := c.FormFile("photo"); err == nil {
		f, err := fh.Open()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "unreadable photo")
			return EquipmentPatch{}, false
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, MaxPhotoSize+1))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "unreadable photo")
			return EquipmentPatch{}, false
		}
		patch.Photo = data
	}
	return patch, true
}

func formValue(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid equipment ID")
		return 0, false
	}
	return id, true
}
