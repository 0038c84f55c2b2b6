package handlers

import (
	"errors"
	"net/http"

	"parking_sms/internal/parking"
	"parking_sms/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK   = "ok"
	statusSent = "sent"

	errLoadView        = "failed to load parking state"
	errUpdateView      = "failed to update parking state"
	errInvalidBodyPref = "invalid body: "
	errNoUser          = "missing user"

	platformQuery = "platform"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// isUserInputError reports errors caused by the request rather than the server.
func isUserInputError(err error) bool {
	return errors.Is(err, parking.ErrUnknownZone) ||
		errors.Is(err, parking.ErrUnknownDuration) ||
		errors.Is(err, parking.ErrSendDisabled)
}

func (h *Handler) parkingError(c *gin.Context, logKey string, err error, uid int) {
	if isUserInputError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errUpdateView, logKey, err, "user_id", uid)
}

// viewParams picks the SMS URI form: an explicit ?platform= wins over the
// User-Agent guess. Unknown values are ignored.
func viewParams(c *gin.Context) service.ViewParams {
	if p, ok := parking.ParsePlatform(c.Query(platformQuery)); ok {
		return service.ViewParams{Platform: p}
	}
	return service.ViewParams{Platform: parking.DetectPlatform(c.Request.UserAgent())}
}

// userOrAbort returns the authenticated user id or answers 401.
func userOrAbort(c *gin.Context) (int, bool) {
	uid, ok := currentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errNoUser})
	}
	return uid, ok
}

// ZoneRequest selects a tariff zone.
type ZoneRequest struct {
	Zone string `json:"zone" binding:"required" example:"II"`
}

// DurationRequest selects a duration of the current zone.
type DurationRequest struct {
	DurationValue string `json:"duration_value" binding:"required" example:"1h"`
}

// PlateRequest carries raw plate input; it is normalized server-side.
type PlateRequest struct {
	Plate string `json:"plate" example:"cj 12 abc"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Tariff table
// @Tags         parking
// @Produce      json
// @Success      200  {object}  models.TariffTable
// @Router       /api/v1/tariffs [get]
func (h *Handler) getTariffs(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Parking.Tariffs())
}

// @Summary      Current parking view
// @Tags         parking
// @Produce      json
// @Param        platform  query  string  false  "SMS link form"  Enums(ios,android)
// @Success      200  {object}  models.View
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/parking/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	uid, ok := userOrAbort(c)
	if !ok {
		return
	}
	v, err := h.services.Parking.View(c.Request.Context(), uid, viewParams(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadView, "parking_view_failed", err, "user_id", uid)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Select zone
// @Description  Keeps the duration when the new zone offers it, otherwise selects the zone's first duration.
// @Tags         parking
// @Accept       json
// @Produce      json
// @Param        body  body  ZoneRequest  true  "Zone"
// @Success      200   {object}  models.View
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/parking/zone [put]
// @Security     BearerAuth
func (h *Handler) setZone(c *gin.Context) {
	uid, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req ZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	v, err := h.services.Parking.SetZone(c.Request.Context(), uid, req.Zone, viewParams(c))
	if err != nil {
		h.parkingError(c, "parking_set_zone_failed", err, uid)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Select duration
// @Tags         parking
// @Accept       json
// @Produce      json
// @Param        body  body  DurationRequest  true  "Duration"
// @Success      200   {object}  models.View
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/parking/duration [put]
// @Security     BearerAuth
func (h *Handler) setDuration(c *gin.Context) {
	uid, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	v, err := h.services.Parking.SetDuration(c.Request.Context(), uid, req.DurationValue, viewParams(c))
	if err != nil {
		h.parkingError(c, "parking_set_duration_failed", err, uid)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Type plate
// @Description  Called per keystroke. The plate is upper-cased and stripped to letters and digits.
// @Tags         parking
// @Accept       json
// @Produce      json
// @Param        body  body  PlateRequest  true  "Raw plate"
// @Success      200   {object}  models.View
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/parking/plate [put]
// @Security     BearerAuth
func (h *Handler) setPlate(c *gin.Context) {
	uid, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req PlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	v, err := h.services.Parking.SetPlate(c.Request.Context(), uid, req.Plate, viewParams(c))
	if err != nil {
		h.parkingError(c, "parking_set_plate_failed", err, uid)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Remember current plate
// @Description  Adds the current plate to the history when it has at least 4 characters.
// @Tags         parking
// @Produce      json
// @Success      200  {object}  models.View
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/parking/plates [post]
// @Security     BearerAuth
func (h *Handler) savePlate(c *gin.Context) {
	uid, ok := userOrAbort(c)
	if !ok {
		return
	}
	v, err := h.services.Parking.SavePlate(c.Request.Context(), uid, viewParams(c))
	if err != nil {
		h.parkingError(c, "parking_save_plate_failed", err, uid)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Pick plate from history
// @Tags         parking
// @Accept       json
// @Produce      json
// @Param        body  body  PlateRequest  true  "Plate"
// @Success      200   {object}  models.View
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/parking/plates/pick [post]
// @Security     BearerAuth
func (h *Handler) pickPlate(c *gin.Context) {
	uid, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req PlateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Plate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + "plate is required"})
		return
	}
	v, err := h.services.Parking.PickPlate(c.Request.Context(), uid, req.Plate, viewParams(c))
	if err != nil {
		h.parkingError(c, "parking_pick_plate_failed", err, uid)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Forget plate
// @Tags         parking
// @Produce      json
// @Param        plate  path  string  true  "Plate"
// @Success      200  {object}  models.View
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/parking/plates/{plate} [delete]
// @Security     BearerAuth
func (h *Handler) deletePlate(c *gin.Context) {
	uid, ok := userOrAbort(c)
	if !ok {
		return
	}
	v, err := h.services.Parking.DeletePlate(c.Request.Context(), uid, c.Param("plate"), viewParams(c))
	if err != nil {
		h.parkingError(c, "parking_delete_plate_failed", err, uid)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Confirm send
// @Description  Records the session and returns the sms: link to open. No SMS is sent by the server.
// @Tags         parking
// @Produce      json
// @Param        platform  query  string  false  "SMS link form"  Enums(ios,android)
// @Success      200  {object}  map[string]interface{}  "status, sms_uri, view"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/parking/send [post]
// @Security     BearerAuth
func (h *Handler) send(c *gin.Context) {
	uid, ok := userOrAbort(c)
	if !ok {
		return
	}
	v, err := h.services.Parking.Send(c.Request.Context(), uid, viewParams(c))
	if err != nil {
		h.parkingError(c, "parking_send_failed", err, uid)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  statusSent,
		"sms_uri": v.SMSURI,
		"view":    v,
	})
}
