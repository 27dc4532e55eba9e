package grpc

import (
	"context"
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/iot"
	"liyu1981.xyz/edms-report-service/pkg/report"
)

// SubmitReport answers input errors with the agent error body and a nil
// error, the same body POST /report answers with a 400.
func (s *ReportServer) SubmitReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	body, err := protojson.Marshal(req)
	if err != nil {
		return structpb.NewStruct(report.ErrorBody(report.MessageInvalidBody))
	}

	result, err := s.Iot.Report.SubmitReport(ctx, iot.SourceGRPC, body)
	if err != nil {
		if errBody, ok := report.InputErrorBody(err); ok {
			return structpb.NewStruct(errBody)
		}
		if errors.Is(err, iot.ErrRateLimited) {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
		}
		common.GetLoggerWith(common.LoggerNameGrpcServer).Error("SubmitReport failed", zap.Error(err))
		return nil, status.Errorf(codes.Internal, "internal error")
	}

	return structpb.NewStruct(report.OKBody(result))
}

type limiterArgs struct {
	Identifier string
	Rate       float64
	Burst      int
}

var limiterArgsSchema = z.Struct(z.Shape{
	"identifier": z.String().Min(1).Required(),
	"rate":       z.Float64().GTE(0),
	"burst":      z.Int().GTE(0),
})

func (s *ReportServer) SetLimiter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	args := limiterArgs{
		Identifier: fields["identifier"].GetStringValue(),
		Rate:       fields["rate"].GetNumberValue(),
		Burst:      int(fields["burst"].GetNumberValue()),
	}
	if err := limiterArgsSchema.Validate(&args); err != nil {
		return structpb.NewStruct(report.ErrorBody(fmt.Sprintf("validation error: %v", err)))
	}

	if s.Iot.RateLimiterStore == nil {
		return structpb.NewStruct(map[string]any{
			report.KeyStatus:  report.StatusOK,
			report.KeyMessage: "RateLimiterStore is not used. No effect.",
		})
	}

	s.Iot.RateLimiterStore.SetLimiter(args.Identifier, rate.Limit(args.Rate), args.Burst)
	limiter := s.GetLimiter(args.Identifier)
	return structpb.NewStruct(map[string]any{
		report.KeyStatus: report.StatusOK,
		"rate":           float64(limiter.Limit()),
		"burst":          limiter.Burst(),
	})
}
