package handler

import (
	"context"
	"time"

	"competency-matrix/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

type healthResponse struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	res := healthResponse{Database: "up", Cache: "up"}

	if h.db == nil || h.db.Ping(ctx) != nil {
		res.Database = "down"
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		// the cache is best-effort; a down cache does not fail the check
		res.Cache = "down"
	}

	if res.Database == "down" {
		return response.Error(c, fiber.StatusServiceUnavailable, "degraded", res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
