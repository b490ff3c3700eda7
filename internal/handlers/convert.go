package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"temperature_converter/internal/converter"
	"temperature_converter/internal/models"
	"temperature_converter/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errConvert         = "failed to convert"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, ErrorResponse{Error: userMsg})
}

// invalidInput is the response for text that is not a number. The label is
// always cleared.
func invalidInput(c *gin.Context) {
	c.JSON(http.StatusBadRequest, InvalidInputResponse{Error: converter.InvalidInputMessage, Label: models.LabelNone})
}

// numberText accepts the value as a JSON string or a bare JSON number.
type numberText string

func (n *numberText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = numberText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("value must be a string or a number")
	}
	*n = numberText(num.String())
	return nil
}

type convertRequest struct {
	Value numberText `json:"value"`
	From  string     `json:"from" binding:"required"`
	To    string     `json:"to" binding:"required"`
}

// ConvertRequest is an exported model for Swagger docs of the convert payload.
type ConvertRequest struct {
	// Text as typed by the user; a bare number is accepted too
	Value string `json:"value" example:"212"`
	// Source scale: Celsius, Fahrenheit, Kelvin or C, F, K
	From string `json:"from" example:"Fahrenheit"`
	// Target scale
	To string `json:"to" example:"Celsius"`
}

type ConvertResponse struct {
	Result      string       `json:"result" example:"100"`
	OutputValue float64      `json:"output_value" example:"100"`
	Label       models.Label `json:"label" example:""`
	Record      HistoryEntry `json:"record"`
}

type ClassifyResponse struct {
	Label models.Label `json:"label" example:"It's hot!"`
}

type ScalesResponse struct {
	Scales []models.Scale `json:"scales"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type InvalidInputResponse struct {
	Error string       `json:"error" example:"Invalid input. Please enter a valid number."`
	Label models.Label `json:"label" example:""`
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

// @Summary      List scales
// @Description  Scales in picker order
// @Tags         converter
// @Produce      json
// @Success      200  {object}  ScalesResponse
// @Router       /api/v1/scales [get]
func (h *Handler) listScales(c *gin.Context) {
	c.JSON(http.StatusOK, ScalesResponse{Scales: models.Scales()})
}

// @Summary      Convert a temperature
// @Description  Parses the value, converts it, labels it and appends it to the history.
// @Description  Invalid input appends nothing.
// @Tags         converter
// @Accept       json
// @Produce      json
// @Param        body  body      ConvertRequest  true  "Conversion payload"
// @Success      200   {object}  ConvertResponse
// @Failure      400   {object}  InvalidInputResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/v1/convert [post]
func (h *Handler) convert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errInvalidBodyPref + err.Error()})
		return
	}
	from, err := models.ParseScale(req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	to, err := models.ParseScale(req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	conv, err := h.services.Convert(ctx, service.ConvertParams{Input: string(req.Value), From: from, To: to})
	switch {
	case err == nil:
	case errors.Is(err, converter.ErrInvalidInput):
		if h.log != nil {
			h.log.Debugw("convert_invalid_input", "input", string(req.Value))
		}
		invalidInput(c)
		return
	case errors.Is(err, models.ErrUnknownScale):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errConvert, "convert_failed", err,
			"from", from.String(), "to", to.String())
		return
	}

	c.JSON(http.StatusOK, ConvertResponse{
		Result:      conv.Display,
		OutputValue: conv.Record.OutputValue,
		Label:       conv.Record.Label,
		Record:      newHistoryEntry(conv.Record),
	})
}

// @Summary      Classify a temperature
// @Description  Comfort label for a value already in the target scale. Nothing is logged.
// @Tags         converter
// @Produce      json
// @Param        value  query     string  true  "Temperature"
// @Param        to     query     string  true  "Scale of the value"
// @Success      200    {object}  ClassifyResponse
// @Failure      400    {object}  InvalidInputResponse
// @Router       /api/v1/classify [get]
func (h *Handler) classify(c *gin.Context) {
	v, err := converter.ParseNumber(c.Query("value"))
	if err != nil {
		invalidInput(c)
		return
	}
	to, err := models.ParseScale(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ClassifyResponse{Label: h.services.Classify(v, to)})
}
