package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/ddsolutions/careers-api/internal/utils"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthHandler(s pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := s.Ping(r.Context())
		if err != nil {
			utils.WriteJSONResponse(w, http.StatusServiceUnavailable, false, "db unreachable", nil, err.Error())
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, true, "ok", map[string]interface{}{
			"service": "careers-api",
			"version": "1.0.0",
			"time":    time.Now(),
		}, nil)
	}
}
