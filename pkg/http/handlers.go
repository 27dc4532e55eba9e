package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/iot"
	"liyu1981.xyz/edms-report-service/pkg/report"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

const (
	MessageTooManyRequests = "Too many requests"
	MessageInternalError   = "Internal error"
	MessageDeviceNotFound  = "Device not found"
)

// LastBuild is stamped at link time, e.g.
// -ldflags "-X liyu1981.xyz/edms-report-service/pkg/http.LastBuild=2024-01-01".
var LastBuild = ""

func internalError(c *gin.Context, err error) {
	common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, report.ErrorBody(MessageInternalError))
}

func (rs *RestfulServer) PostReport(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, report.ErrorBody(report.MessageInvalidBody))
		return
	}

	result, err := rs.Iot.Report.SubmitReport(c.Request.Context(), iot.SourceHTTP, body)
	if err != nil {
		if errBody, ok := report.InputErrorBody(err); ok {
			c.JSON(http.StatusBadRequest, errBody)
			return
		}
		if errors.Is(err, iot.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, report.ErrorBody(MessageTooManyRequests))
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, report.OKBody(result))
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	identifier := c.Param("identifier")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.SetLimiter(identifier, req.Rate, req.Burst) {
		c.JSON(http.StatusOK, gin.H{"status": report.StatusOK, "effective": false})
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetLimiterSettings(c *gin.Context) {
	limiter := rs.GetLimiter(c.Param("identifier"))
	if limiter == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"enabled": true,
		"rate":    float64(limiter.Limit()),
		"burst":   limiter.Burst(),
	})
}

func (rs *RestfulServer) Version(c *gin.Context) {
	lastBuild := LastBuild
	if lastBuild == "" {
		lastBuild = time.Now().Format(time.DateOnly)
	}
	c.JSON(http.StatusOK, gin.H{"version": common.EDMSVersion, "last_build": lastBuild})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
