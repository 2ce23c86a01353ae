package http

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kisanmitra/backend/internal/domain"
	"github.com/kisanmitra/backend/internal/service"
	"github.com/kisanmitra/backend/internal/validation"
	"github.com/kisanmitra/backend/pkg/utils"
)

// CheckFunc probes one dependency for the health endpoint
type CheckFunc func(ctx context.Context) error

// Handler contains all HTTP handlers
type Handler struct {
	dashboardSvc *service.DashboardService
	schemeSvc    *service.SchemeService
	regionSvc    *service.RegionService
	chatSvc      *service.ChatService
	checks       map[string]CheckFunc
	log          *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(deps Dependencies) *Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		dashboardSvc: deps.Dashboard,
		schemeSvc:    deps.Schemes,
		regionSvc:    deps.Regions,
		chatSvc:      deps.Chat,
		checks:       deps.Checks,
		log:          log,
	}
}

// HealthCheck reports service health. Only the data store is critical;
// a failing model or cache leaves the service degraded but serving.
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	status := "ok"
	code := fiber.StatusOK
	checks := fiber.Map{}

	if err := h.dashboardSvc.Health(ctx); err != nil {
		checks["store"] = err.Error()
		status = "unavailable"
		code = fiber.StatusServiceUnavailable
	} else {
		checks["store"] = "ok"
	}

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			checks[name] = err.Error()
			if status == "ok" {
				status = "degraded"
			}
			continue
		}
		checks[name] = "ok"
	}

	if !h.chatSvc.ModelEnabled() {
		checks["model"] = "disabled"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"service": "kisan-e-mitra-backend",
		"version": "1.0.0",
		"checks":  checks,
	})
}

// GetDashboard returns every dashboard card
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.GetDashboardData(c.UserContext())
	if err != nil {
		return h.internal(err, "Failed to fetch dashboard data")
	}
	return c.JSON(data)
}

// GetFarmRisk returns the risk card
func (h *Handler) GetFarmRisk(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.FarmRisk(c.UserContext())
	if err != nil {
		return h.internal(err, "Failed to fetch farm risk data")
	}
	return c.JSON(data)
}

// GetIrrigation returns the irrigation card
func (h *Handler) GetIrrigation(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.Irrigation(c.UserContext())
	if err != nil {
		return h.internal(err, "Failed to fetch irrigation guidance")
	}
	return c.JSON(data)
}

// GetMarket returns the market timing card
func (h *Handler) GetMarket(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.Market(c.UserContext())
	if err != nil {
		return h.internal(err, "Failed to fetch market timing data")
	}
	return c.JSON(data)
}

// GetYield returns the yield outlook card
func (h *Handler) GetYield(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.YieldOutlook(c.UserContext())
	if err != nil {
		return h.internal(err, "Failed to fetch yield outlook")
	}
	return c.JSON(data)
}

// GetWeather returns the seven-day forecast
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.WeatherForecast(c.UserContext())
	if err != nil {
		return h.internal(err, "Failed to fetch weather data")
	}
	return c.JSON(data)
}

// GetSchemes lists schemes, optionally filtered by ?status= and ?category=
func (h *Handler) GetSchemes(c *fiber.Ctx) error {
	filter := service.SchemeFilter{
		Status:   domain.SchemeStatus(c.Query("status")),
		Category: c.Query("category"),
	}

	data, err := h.schemeSvc.List(c.UserContext(), filter)
	if err != nil {
		return h.internal(err, "Failed to fetch schemes")
	}
	return c.JSON(data)
}

// GetScheme returns one scheme
func (h *Handler) GetScheme(c *fiber.Ctx) error {
	data, err := h.schemeSvc.Get(c.UserContext(), c.Params("id"))
	if errors.Is(err, service.ErrSchemeNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Scheme not found")
	}
	if err != nil {
		return h.internal(err, "Failed to fetch scheme")
	}
	return c.JSON(data)
}

// GetStates returns every state profile for the regional map
func (h *Handler) GetStates(c *fiber.Ctx) error {
	data, err := h.regionSvc.States(c.UserContext())
	if err != nil {
		return h.internal(err, "Failed to fetch states data")
	}
	return c.JSON(data)
}

// GetState returns one state profile
func (h *Handler) GetState(c *fiber.Ctx) error {
	data, err := h.regionSvc.State(c.UserContext(), c.Params("id"))
	if errors.Is(err, service.ErrStateNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "State not found")
	}
	if err != nil {
		return h.internal(err, "Failed to fetch state data")
	}
	return c.JSON(data)
}

// GetNearestState returns the state closest to ?lat=&lng=
func (h *Handler) GetNearestState(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || !utils.ValidCoordinates(lat, lng) {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameters lat and lng must be valid coordinates")
	}

	data, err := h.regionSvc.Nearest(c.UserContext(), lat, lng)
	if err != nil {
		return h.internal(err, "Failed to fetch states data")
	}
	return c.JSON(data)
}

// Chat answers a farmer's question with the model or the fallback responder
func (h *Handler) Chat(c *fiber.Ctx) error {
	body := c.Body()
	if err := validation.ValidateChatRequest(body); err != nil {
		h.log.Debug("rejected chat request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	var req domain.ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	reply, err := h.chatSvc.Reply(c.UserContext(), req)
	if err != nil {
		h.log.Error("chat request failed", zap.Error(err))
		msg := service.ErrorMessage(req.Language.Normalize())
		return c.Status(fiber.StatusInternalServerError).JSON(domain.ChatErrorResponse{
			Error:    msg,
			Response: msg,
		})
	}

	c.Set("X-Reply-Source", string(reply.Source))
	return c.JSON(domain.ChatResponse{Response: reply.Text})
}

func (h *Handler) internal(err error, message string) error {
	h.log.Error(message, zap.Error(err))
	return fiber.NewError(fiber.StatusInternalServerError, message)
}
