package grpc

import (
	"golang.org/x/time/rate"
	pb "liyu1981.xyz/edms-report-service/pkg/grpc/edms_v1"

	"liyu1981.xyz/edms-report-service/pkg/iot"
)

type ReportServer struct {
	Iot *iot.IOT
	pb.UnimplementedReportServiceServer
}

func (s *ReportServer) GetLimiter(identifier string) *rate.Limiter {
	if s.Iot.RateLimiterStore == nil {
		return nil
	}
	return s.Iot.RateLimiterStore.GetLimiter(identifier)
}
