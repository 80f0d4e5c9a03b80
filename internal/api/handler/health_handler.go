package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up. It never touches dependencies.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type HealthDependenciesHandler struct {
	db  *mongo.Database
	rdb *redis.Client
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db, rdb: rdb}
}

// Readiness checks the session store and the transcript store. Either one
// failing makes the instance not ready.
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	deps := map[string]string{"redis": "ok", "mongo": "ok"}
	status := http.StatusOK

	pingCtx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.rdb.Ping(pingCtx).Err(); err != nil {
		deps["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := h.db.Client().Ping(pingCtx, readpref.Primary()); err != nil {
		deps["mongo"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, deps)
}
