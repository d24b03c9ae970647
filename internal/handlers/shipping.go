package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/models"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

const (
	msgBodyMustBeJSON   = "Request body must be JSON"
	msgMethodNotAllowed = "method not allowed"
	serviceName         = "shipping-estimates"
	maxRequestBody      = 1 << 16
)

// ShippingEstimate serves the shipping function
// (GET|POST /, GET|POST /shipping-estimate)
func (h *Handler) ShippingEstimate(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.health(c)
	case http.MethodPost:
		h.estimate(c)
	default:
		c.JSON(http.StatusMethodNotAllowed, failure(msgMethodNotAllowed))
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"strategy": h.shippingSrv.Strategy(),
	})
}

func (h *Handler) estimate(c *gin.Context) {
	req, err := parseShippingRequest(c.Request.Body)
	if err != nil {
		c.JSON(statusFor(err), failure(err.Error()))
		return
	}

	estimate, err := h.shippingSrv.Estimate(c.Request.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			zap.S().Named("shipping_handler").Errorw("failed to estimate shipping", "error", err)
		}
		_ = c.Error(err)
		c.JSON(status, failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "estimate": estimate})
}

// parseShippingRequest reads a JSON object and applies the request defaults.
func parseShippingRequest(body io.Reader) (models.ShippingRequest, error) {
	req := models.ShippingRequest{
		FromCountry: models.DefaultFromCountry,
		ToCountry:   models.DefaultToCountry,
		WeightKg:    models.DefaultWeightKg,
	}
	if body == nil {
		return req, srvErrors.NewMalformedRequestError(msgBodyMustBeJSON)
	}

	data, err := io.ReadAll(io.LimitReader(body, maxRequestBody))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return req, srvErrors.NewMalformedRequestError(msgBodyMustBeJSON)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || len(fields) == 0 {
		return req, srvErrors.NewMalformedRequestError(msgBodyMustBeJSON)
	}
	if _, err := dec.Token(); err != io.EOF {
		return req, srvErrors.NewMalformedRequestError(msgBodyMustBeJSON)
	}

	for key, dst := range map[string]*string{
		"from_country":   &req.FromCountry,
		"to_country":     &req.ToCountry,
		"to_city":        &req.ToCity,
		"to_postal_code": &req.ToPostalCode,
		"to_state":       &req.ToState,
	} {
		raw, ok := fields[key]
		if !ok || raw == nil {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return req, srvErrors.NewMalformedRequestError(fmt.Sprintf("%s must be a string", key))
		}
		if s != "" {
			*dst = s
		}
	}

	if raw, ok := fields["weight_kg"]; ok && raw != nil {
		w, err := parseWeight(raw)
		if err != nil {
			return req, err
		}
		req.WeightKg = w
	}

	return req, nil
}

// parseWeight accepts a JSON number or a string holding one.
func parseWeight(raw any) (float64, error) {
	var (
		w   float64
		err error
	)
	switch v := raw.(type) {
	case json.Number:
		w, err = v.Float64()
	case string:
		w, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		err = fmt.Errorf("unsupported type %T", raw)
	}
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, srvErrors.NewMalformedRequestError("weight_kg must be a number")
	}
	return w, nil
}

func statusFor(err error) int {
	switch {
	case srvErrors.IsMalformedRequestError(err):
		return http.StatusBadRequest
	case srvErrors.IsNoRatesError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func failure(msg string) gin.H {
	return gin.H{"success": false, "error": msg}
}
