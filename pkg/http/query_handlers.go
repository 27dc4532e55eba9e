package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/iot"
	"liyu1981.xyz/edms-report-service/pkg/models"
	"liyu1981.xyz/edms-report-service/pkg/report"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type GroupResponse struct {
	Ident string `json:"ident"`
	Name  string `json:"name"`
	Depth int    `json:"depth"`
}

type DeviceResponse struct {
	Ident       string         `json:"ident"`
	Type        *string        `json:"type"`
	Group       *GroupResponse `json:"group"`
	DateCreated string         `json:"date_created"`
	DateUpdated string         `json:"date_updated"`
	DateSeen    *string        `json:"date_seen"`
}

type HistoryEntry struct {
	Timestamp string       `json:"timestamp"`
	Value     report.Value `json:"value"`
}

type EventEntry struct {
	Type      string         `json:"type"`
	Timestamp string         `json:"timestamp"`
	Source    string         `json:"source"`
	Payload   datatypes.JSON `json:"payload"`
}

type HistoryQuery struct {
	Limit int `json:"limit"`
}

var historyQuerySchema = z.Struct(z.Shape{
	"limit": z.Int().GT(0).LTE(1000).Default(100),
})

func toDeviceResponse(device *models.Device) DeviceResponse {
	resp := DeviceResponse{
		Ident:       device.Ident,
		Type:        device.Type,
		DateCreated: report.FormatDate(device.DateCreated),
		DateUpdated: report.FormatDate(device.DateUpdated),
	}
	if device.DateSeen != nil {
		seen := report.FormatDate(*device.DateSeen)
		resp.DateSeen = &seen
	}
	if device.Group != nil {
		resp.Group = &GroupResponse{
			Ident: device.Group.Ident,
			Name:  device.Group.Name,
			Depth: device.Group.Depth,
		}
	}
	return resp
}

// lookupDevice answers 404 or 500 itself and returns nil when it did.
func (rs *RestfulServer) lookupDevice(c *gin.Context) *models.Device {
	device, err := rs.Iot.Device.GetDevice(c.Param("identifier"))
	if errors.Is(err, iot.ErrDeviceNotFound) {
		c.JSON(http.StatusNotFound, report.ErrorBody(MessageDeviceNotFound))
		return nil
	}
	if err != nil {
		internalError(c, err)
		return nil
	}
	return device
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	device := rs.lookupDevice(c)
	if device == nil {
		return
	}
	c.JSON(http.StatusOK, toDeviceResponse(device))
}

func (rs *RestfulServer) GetProperties(c *gin.Context) {
	device := rs.lookupDevice(c)
	if device == nil {
		return
	}

	current, err := rs.Iot.Property.GetCurrentProperties(device.ID)
	if err != nil {
		internalError(c, err)
		return
	}

	properties := make(map[string]report.Value, len(current))
	for _, p := range current {
		v, err := report.Decode(p.Value)
		if err != nil {
			internalError(c, err)
			return
		}
		properties[p.Name] = v
	}

	c.JSON(http.StatusOK, gin.H{"ident": device.Ident, "properties": properties})
}

func (rs *RestfulServer) GetPropertyHistory(c *gin.Context) {
	var query HistoryQuery
	if err := historyQuerySchema.Parse(zhttp.Request(c.Request), &query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device := rs.lookupDevice(c)
	if device == nil {
		return
	}

	name := c.Param("name")
	history, err := rs.Iot.Property.GetPropertyHistory(device.ID, name, query.Limit)
	if err != nil {
		internalError(c, err)
		return
	}

	entries := make([]HistoryEntry, 0, len(history))
	for _, h := range history {
		v, err := report.Decode(h.Value)
		if err != nil {
			internalError(c, err)
			return
		}
		entries = append(entries, HistoryEntry{Timestamp: report.FormatDate(h.Timestamp), Value: v})
	}

	c.JSON(http.StatusOK, gin.H{"ident": device.Ident, "name": name, "history": entries})
}

func (rs *RestfulServer) GetEvents(c *gin.Context) {
	device := rs.lookupDevice(c)
	if device == nil {
		return
	}

	events, err := rs.Iot.EventLog.GetDeviceEvents(device.ID, c.Query("type"))
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ident": device.Ident,
		"events": common.Mapper(events, func(e models.EventLog) EventEntry {
			return EventEntry{
				Type:      e.Type,
				Timestamp: report.FormatDate(e.Timestamp),
				Source:    e.Source,
				Payload:   e.Payload,
			}
		}),
	})
}
