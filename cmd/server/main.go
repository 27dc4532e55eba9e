package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/edms-report-service/pkg/common"
	"liyu1981.xyz/edms-report-service/pkg/db"
	iotGrpc "liyu1981.xyz/edms-report-service/pkg/grpc"
	pb "liyu1981.xyz/edms-report-service/pkg/grpc/edms_v1"
	iotHttp "liyu1981.xyz/edms-report-service/pkg/http"
	"liyu1981.xyz/edms-report-service/pkg/iot"
	iotMqtt "liyu1981.xyz/edms-report-service/pkg/mqtt"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	iotDbType := os.Getenv(common.EnvKeyIOTDBType)
	switch iotDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	default:
		log.Fatal("Unknown IOT_DB_TYPE: " + iotDbType)
	}

	grpcHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyIOTGrpcHostPort))
	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyIOTHttpHostPort))
	mqttBroker := strings.TrimSpace(os.Getenv(common.EnvKeyIOTMqttBroker))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyIOTDefaultRate), 64); err != nil {
		log.Fatal("Invalid IOT_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyIOTDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid IOT_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	iotCore := iot.IOT{
		Db:               *dbInstance,
		RateLimiterStore: iot.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	iotCore.WithDefaultServices()

	logger.Info("IOT core created with:",
		zap.String("db_type", iotDbType),
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	if grpcHostPort != "" {
		go func() {
			reportServer := iotGrpc.ReportServer{Iot: &iotCore}
			interceptor := reportServer.CreateLoggingInterceptor([]string{
				pb.ReportService_SubmitReport_FullMethodName,
				pb.ReportService_SetLimiter_FullMethodName,
			})
			s := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
			pb.RegisterReportServiceServer(s, &reportServer)

			listener, err := net.Listen("tcp", grpcHostPort)
			if err != nil {
				log.Fatalf("failed to listen: %v", err)
			}

			logger.Info("Starting gRPC server on: " + grpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	if mqttBroker != "" {
		subscriber, err := iotMqtt.NewSubscriber(&iotCore, iotMqtt.Config{
			Broker:   mqttBroker,
			Topic:    strings.TrimSpace(os.Getenv(common.EnvKeyIOTMqttTopic)),
			ClientID: strings.TrimSpace(os.Getenv(common.EnvKeyIOTMqttClientID)),
			Username: os.Getenv(common.EnvKeyIOTMqttUsername),
			Password: os.Getenv(common.EnvKeyIOTMqttPassword),
		})
		if err != nil {
			log.Fatalf("mqtt subscriber failed to start: %v", err)
		}
		defer subscriber.Stop()
		logger.Info("Started MQTT subscriber on: " + mqttBroker)
	}

	if httpHostPort == "" {
		// fallback to the port reporting agents post to
		httpHostPort = ":8888"
	}

	rs := &iotHttp.RestfulServer{
		Server: gin.Default(),
		Iot:    &iotCore,
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
