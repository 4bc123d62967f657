package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/field"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/response"
)

type Handler struct {
	service      field.Service
	photoService field.PhotoService
}

func NewHandler(service field.Service, photoService field.PhotoService) *Handler {
	return &Handler{service: service, photoService: photoService}
}

func parseUUIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return "", false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	var query ListFieldsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := field.Filter{
		Keyword:   query.Keyword,
		SportType: query.SportType,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}

	fields, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FieldResponse, len(fields))
	for i, f := range fields {
		items[i] = NewFieldResponse(f)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewFieldResponse(f))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateFieldRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Create(c.Request.Context(), field.CreateFieldRequest{
		Name:              body.Name,
		SportType:         body.SportType,
		Address:           body.Address,
		Description:       body.Description,
		OpeningHoursStart: body.OpeningHoursStart,
		OpeningHoursEnd:   body.OpeningHoursEnd,
		SlotDuration:      body.SlotDuration,
		Longitude:         body.Longitude,
		Latitude:          body.Latitude,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewFieldResponse(f))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var body UpdateFieldRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	f, err := h.service.Update(c.Request.Context(), id, field.UpdateFieldRequest{
		Name:              body.Name,
		SportType:         body.SportType,
		Address:           body.Address,
		Description:       body.Description,
		OpeningHoursStart: body.OpeningHoursStart,
		OpeningHoursEnd:   body.OpeningHoursEnd,
		SlotDuration:      body.SlotDuration,
		Longitude:         body.Longitude,
		Latitude:          body.Latitude,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewFieldResponse(f))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateCourt(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var body CreateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	court, err := h.service.CreateCourt(c.Request.Context(), field.CreateCourtRequest{
		FieldID: fieldID,
		Name:    body.Name,
		Surface: body.Surface,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCourtResponse(court))
}

// ListCourts returns the courts of a field. With ?exclude=<court_id> it
// returns only the alternatives to that court, for switch-court conflict
// resolution.
func (h *Handler) ListCourts(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var (
		courts []*field.Court
		err    error
	)
	if exclude := c.Query("exclude"); exclude != "" {
		courts, err = h.service.AlternateCourts(c.Request.Context(), fieldID, exclude)
	} else {
		courts, err = h.service.ListCourts(c.Request.Context(), fieldID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, court := range courts {
		items[i] = NewCourtResponse(court)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) DeleteCourt(c *gin.Context) {
	courtID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCourt(c.Request.Context(), courtID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	photo, err := h.photoService.Upload(c.Request.Context(), fieldID, header)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(photo))
}

func (h *Handler) ListPhotos(c *gin.Context) {
	fieldID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	photos, err := h.photoService.List(c.Request.Context(), fieldID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) DownloadPhoto(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	stream, photo, err := h.photoService.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", photo.ContentType)
	_, _ = io.Copy(c.Writer, stream)
}

func (h *Handler) DownloadPhotoThumbnail(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	stream, _, err := h.photoService.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	_, _ = io.Copy(c.Writer, stream)
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.photoService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
