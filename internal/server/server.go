// Package server exposes the estimator over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/iwvelando/take-home/internal/config"
	"github.com/iwvelando/take-home/internal/estimate"
	"github.com/iwvelando/take-home/pkg/constants"
	"github.com/iwvelando/take-home/pkg/output"
	"github.com/iwvelando/take-home/pkg/paycheck"
	"github.com/iwvelando/take-home/pkg/tradeoff"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	generator   tradeoff.Generator
}

// NewHandler constructs the HTTP handler that serves the estimate API. A nil
// generator falls back to the static starter cards.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, generator tradeoff.Generator) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxUploadSizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}
	if generator == nil {
		generator = tradeoff.NewStaticGenerator()
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion, generator: generator}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(h.accessLog)
	r.Use(h.recoverer)
	r.Use(h.limitBody)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/estimate", h.handleEstimate)
		r.Post("/estimates", h.handleEstimates)
		r.Post("/tradeoffs", h.handleTradeoffs)
		r.Post("/profiles/export", h.handleProfileExport)
		r.Get("/states", h.handleStates)
		r.Get("/version", h.handleVersion)
	})

	return r
}

func (h *handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
		}
		next.ServeHTTP(w, r)
	})
}

// estimateRequest is a salary input with an optional label.
type estimateRequest struct {
	Name string `json:"name,omitempty"`
	paycheck.SalaryInput
}

type estimatesResponse struct {
	Estimates []estimate.Estimate `json:"estimates"`
	Warnings  []string            `json:"warnings,omitempty"`
	CSV       string              `json:"csv"`
	Duration  string              `json:"duration"`
}

type tradeoffRequest struct {
	estimateRequest
	LivingSituation string   `json:"livingSituation,omitempty"`
	Goals           []string `json:"goals,omitempty"`
}

type tradeoffResponse struct {
	MonthlyTakeHome float64                  `json:"monthlyTakeHome"`
	Cards           []tradeoff.Card          `json:"cards"`
	Affordability   []tradeoff.Affordability `json:"affordability"`
}

type stateRate struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEstimate"

	var req estimateRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	h.writeJSON(w, http.StatusOK, estimate.Run(h.logger, req.Name, req.SalaryInput))
}

func (h *handler) handleEstimates(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEstimates"
	start := time.Now()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondBodyError(w, err, op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(body))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()
	results, err := estimate.GetEstimates(h.logger, *cfg)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("estimates computed",
		zap.String("op", op),
		zap.Int("profiles", len(results)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, estimatesResponse{
		Estimates: results,
		Warnings:  warnings,
		CSV:       output.CsvString(results),
		Duration:  elapsed.String(),
	})
}

func (h *handler) handleTradeoffs(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleTradeoffs"

	var req tradeoffRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	cards, err := h.generator.Generate(r.Context(), tradeoff.Request{
		Name:            req.Name,
		Salary:          req.SalaryInput,
		LivingSituation: req.LivingSituation,
		Goals:           req.Goals,
	})
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to generate tradeoffs: %v", err), op)
		return
	}

	breakdown := paycheck.EstimateTakeHome(req.SalaryInput)
	monthly := tradeoff.MonthlyTakeHome(breakdown, req.PayFrequency)

	resp := tradeoffResponse{
		MonthlyTakeHome: monthly,
		Cards:           cards,
		Affordability:   make([]tradeoff.Affordability, 0, len(cards)),
	}
	for _, card := range cards {
		resp.Affordability = append(resp.Affordability, tradeoff.Assess(card, monthly))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleStates(w http.ResponseWriter, _ *http.Request) {
	states := paycheck.States()
	rates := make([]stateRate, 0, len(states))
	for _, name := range states {
		rate, _ := paycheck.StateRate(name)
		rates = append(rates, stateRate{Name: name, Rate: rate})
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"states":      rates,
		"defaultRate": constants.DefaultStateTaxRate,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleProfileExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProfileExport"

	var payload map[string]interface{}
	if !h.decodeJSON(w, r, &payload, op) {
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// marshalOrderedConfigYAML writes logging and output first so exported files
// read like the example config; remaining keys follow alphabetically.
func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	mapNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := keyRank(keys[i]), keyRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})

	for _, key := range keys {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(payload[key]); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode,
		)
	}

	return yaml.Marshal(mapNode)
}

func keyRank(key string) int {
	switch key {
	case "logging":
		return 0
	case "output":
		return 1
	default:
		return 2
	}
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondBodyError(w, err, op)
		return false
	}
	return true
}

func (h *handler) respondBodyError(w http.ResponseWriter, err error, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
