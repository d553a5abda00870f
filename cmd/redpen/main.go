package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xcorail/redpen/internal/api"
	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/distributor"
	"github.com/xcorail/redpen/internal/engine"

	_ "github.com/xcorail/redpen/internal/validator/section"
	_ "github.com/xcorail/redpen/internal/validator/sentence"
)

func main() {
	confPath := flag.String("conf", "", "path to the YAML rule configuration")
	asJSON := flag.Bool("json", false, "emit findings as JSON")
	serve := flag.Bool("serve", false, "run the HTTP API instead of validating files")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	conf, err := loadConfiguration(*confPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if *serve {
		runServer(conf, log)
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: redpen [-conf config.yml] [-json] file...")
		os.Exit(2)
	}

	var dist distributor.ResultDistributor = distributor.NewPlain(os.Stdout)
	if *asJSON {
		dist = distributor.NewJSON(os.Stdout)
	}

	eng, err := engine.New(conf, dist, log)
	if err != nil {
		log.Error("failed to build engine", "error", err)
		os.Exit(1)
	}

	collection, err := eng.ParseFiles(files)
	if err != nil {
		log.Error("failed to parse input", "error", err)
		os.Exit(1)
	}

	results := eng.Validate(collection)
	total := 0
	for _, doc := range collection.Documents {
		total += len(results[doc])
	}
	if total > 0 {
		os.Exit(1)
	}
}

// loadConfiguration reads the YAML rule file, or falls back to the default
// rule set when no path is given.
func loadConfiguration(path string) (*config.Configuration, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.New("en", []config.Rule{
		{Name: "SentenceLength", Options: map[string]string{"max_len": "120"}},
		{Name: "CommaNumber"},
		{Name: "WordNumber"},
		{Name: "SectionLength"},
		{Name: "ParagraphNumber"},
	}, nil), nil
}

func runServer(conf *config.Configuration, log *slog.Logger) {
	srvCfg := config.LoadServer()
	srv := api.NewServer(conf, srvCfg, log)

	httpServer := &http.Server{
		Addr:         ":" + srvCfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting redpen server", "port", srvCfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
