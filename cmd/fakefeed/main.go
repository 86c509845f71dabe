// Command fakefeed serves the synthetic stats API payloads so the
// tracker can run locally without hitting the real feed:
//
//	go run ./cmd/fakefeed -addr :9090
//	LGT_API_BASE_URL=http://localhost:9090/api/v1 go run ./cmd
package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mlbdw/livetracker/internal/fixture"
	"github.com/mlbdw/livetracker/pkg/logger"
)

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get().Named("fakefeed")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/schedule/", func(w http.ResponseWriter, r *http.Request) {
		writePayload(w, fixture.SchedulePayload())
	})
	mux.HandleFunc("/api/v1/game/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/boxscore"):
			writePayload(w, fixture.BoxscorePayload())
		case strings.HasSuffix(r.URL.Path, "/playByPlay"):
			writePayload(w, fixture.PlayByPlayPayload())
		default:
			http.NotFound(w, r)
		}
	})

	srv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		log.Info(ctx, "serving synthetic feed", logger.String("addr", *addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("fake feed failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	_ = srv.Shutdown(context.Background())
}

func writePayload(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
