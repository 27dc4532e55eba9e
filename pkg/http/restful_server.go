package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/edms-report-service/pkg/iot"
)

type RestfulServer struct {
	Server *gin.Engine
	Iot    *iot.IOT
}

// GetLimiter returns nil when the IOT core runs without a limiter store.
func (rs *RestfulServer) GetLimiter(identifier string) *rate.Limiter {
	if rs.Iot.RateLimiterStore == nil {
		return nil
	}
	return rs.Iot.RateLimiterStore.GetLimiter(identifier)
}

func (rs *RestfulServer) SetLimiter(identifier string, deviceRate float64, deviceBurst int) bool {
	if rs.Iot.RateLimiterStore == nil {
		return false
	}
	rs.Iot.RateLimiterStore.SetLimiter(identifier, rate.Limit(deviceRate), deviceBurst)
	return true
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/version", rs.Version)

	rs.Server.POST("/report", rs.PostReport)
	rs.Server.POST("/device/register", rs.PostReport)

	devices := rs.Server.Group("/devices/:identifier")
	{
		devices.GET("", rs.GetDevice)
		devices.GET("/properties", rs.GetProperties)
		devices.GET("/properties/:name/history", rs.GetPropertyHistory)
		devices.GET("/events", rs.GetEvents)
		devices.GET("/limiter", rs.GetLimiterSettings)
		devices.POST("/limiter", rs.PostLimiter)
	}
}
