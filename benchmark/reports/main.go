package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
	pb "liyu1981.xyz/edms-report-service/pkg/grpc/edms_v1"
	"liyu1981.xyz/edms-report-service/pkg/report"
)

var maxDevices int = 2000
var reportsPerDevice int = 3
var httpHostPort string = "127.0.0.1:8888"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient pb.ReportServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var alreadySent atomic.Int64
var failed atomic.Int64

func main() {
	hostnames := make([]string, maxDevices)
	for i := range maxDevices {
		hostnames[i] = "bench-" + uuid.NewString()
	}
	fmt.Printf("generated %v hostnames\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = pb.NewReportServiceClient(conn)

	fmt.Printf("gRPC client created\n")

	start := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reportDevice(hostnames[i])
		}()
	}
	wg.Wait()
	usedTime := time.Since(start)

	total := maxDevices * (reportsPerDevice + 1)
	fmt.Printf(
		"\rsent %v reports for %v devices: used time=%v seconds, throughput=%v reports/second\n",
		total, maxDevices, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)
	fmt.Printf("already_sent=%v (expected %v), failed=%v\n", alreadySent.Load(), maxDevices, failed.Load())
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

// reportDevice sends reportsPerDevice reports with fresh timestamps and then
// repeats the last one, which must come back as already sent.
func reportDevice(hostname string) {
	var last map[string]any
	for i := range reportsPerDevice {
		last = map[string]any{
			"hostname": hostname,
			"date":     report.FormatDate(time.Now().UTC().Add(time.Duration(i) * time.Millisecond)),
			"type":     "bench",
			"load":     rndFloat64(0.0, 8.0, 2),
			"mem":      map[string]any{"free": rndFloat64(0.0, 100.0, 2), "total": 100},
		}
		send(last)
	}
	send(last)
	fmt.Printf("\rreported device %v", hostname)
}

func send(body map[string]any) {
	var answer map[string]any
	if flipCoin() {
		jsonData, _ := json.Marshal(body)
		resp, err := http.Post(fmt.Sprintf("http://%s/report", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			failed.Add(1)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
			failed.Add(1)
			return
		}
		if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
			failed.Add(1)
			return
		}
	} else {
		req, err := structpb.NewStruct(body)
		if err != nil {
			panic(err)
		}
		resp, err := grpcClient.SubmitReport(context.Background(), req)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			failed.Add(1)
			return
		}
		answer = resp.AsMap()
	}

	if answer[report.KeyAlreadySent] == true {
		alreadySent.Add(1)
	}
}
