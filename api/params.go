package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id path parameter, writing a 400 response when it is invalid.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "id", "invalid id")
		return 0, false
	}
	return id, true
}

// parseIDList parses a comma separated list of positive ids such as "1,2,5".
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("expected comma separated ids, got %q", raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseIDRange accepts either a single id "7" or an inclusive range "3-9".
func parseIDRange(raw string) (from, to int64, err error) {
	lo, hi, isRange := strings.Cut(raw, "-")
	from, err = strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil || from <= 0 {
		return 0, 0, fmt.Errorf("expected an id or a range like 3-9, got %q", raw)
	}
	if !isRange {
		return from, from, nil
	}
	to, err = strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil || to < from {
		return 0, 0, fmt.Errorf("expected an id or a range like 3-9, got %q", raw)
	}
	return from, to, nil
}

// queryInt reads an optional integer query parameter bounded by [lo, hi].
func queryInt(c *gin.Context, name string, lo, hi int) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return nil, fmt.Errorf("must be an integer in range [%d, %d]", lo, hi)
	}
	return &v, nil
}

func queryDate(c *gin.Context, name string) (string, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return "", fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return raw, nil
}
