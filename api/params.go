package api

import (
	"fmt"
	"strconv"

	"mindwell/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// intQuery parses an integer query parameter and enforces its bounds
func intQuery(c *gin.Context, name string, def, min, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("%s must be an integer", name))
	}
	if v < min || v > max {
		return 0, errors.InvalidInput(fmt.Sprintf("%s must be between %d and %d", name, min, max))
	}
	return v, nil
}

// uuidParam parses a UUID path parameter
func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.InvalidInput(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}
