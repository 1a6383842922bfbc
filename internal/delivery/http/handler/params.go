package handler

import (
	"strconv"
	"strings"

	"competency-matrix/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// queryInt64 parses an optional positive integer query parameter. Absent
// means 0, which downstream layers treat as "no filter".
func queryInt64(c fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "invalid "+name, nil, err)
	}
	return v, nil
}

func queryFloat(c fiber.Ctx, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "invalid "+name, nil, err)
	}
	return v, nil
}
