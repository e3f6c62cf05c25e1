package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/dotX12/subnetcalc/internal/subnet"
)

// Server serves the subnet calculator as an HTML form.
type Server struct {
	logger zerolog.Logger
	calc   *subnet.Calculator
	srv    *http.Server
}

// NewServer creates a server listening on addr.
func NewServer(logger zerolog.Logger, calc *subnet.Calculator, addr string) *Server {
	s := &Server{
		logger: logger,
		calc:   calc,
	}

	router := mux.NewRouter()
	router.HandleFunc("/", s.handleForm).Methods(http.MethodGet)
	router.HandleFunc("/subnets", s.handleCalculate).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.srv.Addr).Msg("Starting web interface")

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// formValues echoes the submitted inputs back into the form.
type formValues struct {
	CIDR    string
	Address string
	Mask    string
	Count   string
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, formValues{}, nil, "")
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	values := formValues{
		CIDR:    strings.TrimSpace(r.PostFormValue("cidr")),
		Address: strings.TrimSpace(r.PostFormValue("address")),
		Mask:    strings.TrimSpace(r.PostFormValue("mask")),
		Count:   strings.TrimSpace(r.PostFormValue("count")),
	}

	result, err := s.calculate(values)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Calculation rejected")
		s.writePage(w, http.StatusUnprocessableEntity, values, nil, err.Error())
		return
	}

	s.writePage(w, http.StatusOK, values, result, "")
}

// calculate runs the engine for the submitted form. An empty count yields the
// single-block summary; a count partitions the block.
func (s *Server) calculate(values formValues) (*subnet.Result, error) {
	if values.Count == "" {
		var (
			info *subnet.Info
			err  error
		)
		if values.CIDR != "" {
			info, err = s.calc.DescribeCIDR(values.CIDR)
		} else {
			info, err = s.calc.Describe(values.Address, values.Mask)
		}
		if err != nil {
			return nil, err
		}
		return &subnet.Result{Info: info}, nil
	}

	count, err := strconv.Atoi(values.Count)
	if err != nil {
		return nil, fmt.Errorf("subnet count %q is not an integer", values.Count)
	}

	if values.CIDR != "" {
		return s.calc.PartitionCIDR(values.CIDR, count)
	}
	return s.calc.Partition(values.Address, values.Mask, count)
}
