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
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"liyu1981.xyz/aquarium-service/pkg/models"
)

var maxAquariums int = 1000
var readingsPerAquarium int = 5
var httpHostPort string = "127.0.0.1:3001"
var grpcHostPort string = "127.0.0.1:30011"

var healthClient healthpb.HealthClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}
	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err == nil {
		defer conn.Close()
		healthClient = healthpb.NewHealthClient(conn)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		hr, err := healthClient.Check(ctx, &healthpb.HealthCheckRequest{})
		cancel()
		if err != nil {
			fmt.Printf("gRPC health not reachable, skipping: %v\n", err)
			healthClient = nil
		} else {
			fmt.Printf("gRPC server verified: %v\n", hr.Status)
		}
	}

	ids := make([]uint, maxAquariums)

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxAquariums {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = createAquarium()
			fmt.Printf("\rcreated aquarium %v", i)
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\rcreated %v aquariums: used time=%v seconds, throughput=%v action/second\n",
		maxAquariums, usedTime.Seconds(), float64(maxAquariums)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxAquariums {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doActions(ids[i])
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v aquariums: used time=%v seconds, throughput=%v action/second\n",
		maxAquariums, usedTime.Seconds(), float64(maxAquariums*(readingsPerAquarium+2))/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func rndTipo() models.MeasurementType {
	rndMu.Lock()
	defer rndMu.Unlock()
	return models.MeasurementTypes[rnd.Intn(len(models.MeasurementTypes))]
}

func postJSON(path string, payload any, out any) int {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return 0
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func createAquarium() uint {
	var created models.Aquarium
	code := postJSON("/api/aquariums", map[string]any{
		"name":   "bench-" + uuid.NewString(),
		"volume": rndFloat64(10, 500, 1),
	}, &created)
	if code != http.StatusCreated {
		panic(fmt.Sprintf("create aquarium: status %v", code))
	}
	return created.ID
}

func doActions(id uint) {
	code := postJSON("/api/fish", map[string]any{
		"name":       "fish-" + uuid.NewString(),
		"species":    "Paracheirodon innesi",
		"aquariumId": id,
	}, nil)
	if code != http.StatusCreated {
		fmt.Printf("\ncreate fish: status %v\n", code)
	}

	for range readingsPerAquarium {
		code := postJSON(fmt.Sprintf("/api/aquariums/%d/params", id), map[string]any{
			"tipo":   rndTipo(),
			"valore": rndFloat64(0, 30, 2),
			"data":   time.Now().UTC().Format(time.RFC3339),
		}, nil)
		if code != http.StatusOK {
			fmt.Printf("\nadd measurement: status %v\n", code)
		}
	}

	if healthClient != nil {
		if _, err := healthClient.Check(context.Background(), &healthpb.HealthCheckRequest{}); err != nil {
			fmt.Printf("\nhealth check error: %v\n", err)
		}
	} else {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/aquariums/%d/params", httpHostPort, id))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		resp.Body.Close()
	}
	fmt.Printf("\rexecuted actions for aquarium %v", id)
}
