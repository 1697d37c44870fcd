package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geo-nav/api/model"
	"github.com/a-bouts/geo-nav/latlon"
	"github.com/a-bouts/geo-nav/unit"
	"github.com/gorilla/mux"
)

const notPossible = "calculation not possible"

type server struct {
	stats *Stats
}

func InitServer(stats *Stats) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := server{stats: stats}

	router.HandleFunc("/geo/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/geo/api/v1").Subrouter()
	apiV1.HandleFunc("/distance", s.distance).Methods(http.MethodPost)
	apiV1.HandleFunc("/bearing/{kind:initial|final|mid}", s.bearing).Methods(http.MethodPost)
	apiV1.HandleFunc("/midpoint", s.midpoint).Methods(http.MethodPost)
	apiV1.HandleFunc("/between", s.between).Methods(http.MethodPost)
	apiV1.HandleFunc("/destination", s.destination).Methods(http.MethodPost)
	apiV1.HandleFunc("/coordinate", s.coordinate).Methods(http.MethodPost)
	apiV1.HandleFunc("/convert", s.conversions).Methods(http.MethodGet)
	apiV1.HandleFunc("/convert/{conversion}/{value}", s.convert).Methods(http.MethodGet)

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	writeJSON(w, http.StatusOK, health{Status: "Ok"})
}

func (s *server) distance(w http.ResponseWriter, req *http.Request) {
	requestLogger := logger(req, "distance")

	var l model.Leg
	if err := decode(req, &l); err != nil {
		s.badRequest(w, requestLogger, "distance", err)
		return
	}
	model.WithRadius(l.EarthRadius, l.From, l.To)
	path := model.Path(l.Loxodrome)

	d, ok := l.From.DistanceTo(l.To, path)
	if !ok {
		s.notPossible(w, requestLogger, "distance")
		return
	}

	requestLogger.Debugf("Distance %s -> %s on %s : %.0f m", l.From, l.To, path, d)
	s.stats.count("distance", true)

	writeJSON(w, http.StatusOK, model.Distance{
		Path:          path.String(),
		Meters:        d,
		Kilometers:    unit.MeterToKm(d),
		NauticalMiles: unit.KmToNm(unit.MeterToKm(d)),
	})
}

func (s *server) bearing(w http.ResponseWriter, req *http.Request) {
	kind := mux.Vars(req)["kind"]
	action := "bearing/" + kind
	requestLogger := logger(req, action)

	var l model.Leg
	if err := decode(req, &l); err != nil {
		s.badRequest(w, requestLogger, action, err)
		return
	}
	model.WithRadius(l.EarthRadius, l.From, l.To)
	path := model.Path(l.Loxodrome)

	var b float64
	var ok bool
	switch kind {
	case "initial":
		b, ok = l.From.InitialBearingTo(l.To, path)
	case "final":
		b, ok = l.From.FinalBearingTo(l.To, path)
	case "mid":
		b, ok = l.From.MidBearingTo(l.To, path)
	}
	if !ok {
		s.notPossible(w, requestLogger, action)
		return
	}

	requestLogger.Debugf("Bearing %s %s -> %s on %s : %.1f°", kind, l.From, l.To, path, b)
	s.stats.count(action, true)

	writeJSON(w, http.StatusOK, model.Bearing{Path: path.String(), Kind: kind, Bearing: b})
}

func (s *server) midpoint(w http.ResponseWriter, req *http.Request) {
	requestLogger := logger(req, "midpoint")

	var l model.Leg
	if err := decode(req, &l); err != nil {
		s.badRequest(w, requestLogger, "midpoint", err)
		return
	}
	model.WithRadius(l.EarthRadius, l.From, l.To)

	s.point(w, requestLogger, "midpoint", l.From.MidPointTo(l.To, model.Path(l.Loxodrome)))
}

func (s *server) between(w http.ResponseWriter, req *http.Request) {
	requestLogger := logger(req, "between")

	var b model.Between
	if err := decode(req, &b); err != nil {
		s.badRequest(w, requestLogger, "between", err)
		return
	}
	model.WithRadius(b.EarthRadius, b.From, b.To)

	s.point(w, requestLogger, "between", b.From.PointBetween(b.To, model.Value(b.Fraction)))
}

func (s *server) destination(w http.ResponseWriter, req *http.Request) {
	requestLogger := logger(req, "destination")

	var d model.Destination
	if err := decode(req, &d); err != nil {
		s.badRequest(w, requestLogger, "destination", err)
		return
	}
	model.WithRadius(d.EarthRadius, d.From)

	p := d.From.DestinationPoint(model.Value(d.Distance), model.Value(d.Bearing), model.Path(d.Loxodrome))
	s.point(w, requestLogger, "destination", p)
}

// coordinate echoes a coordinate once validated by the setters. Unknown
// positions are not an error here.
func (s *server) coordinate(w http.ResponseWriter, req *http.Request) {
	requestLogger := logger(req, "coordinate")

	var c model.Coordinate
	if err := decode(req, &c); err != nil {
		s.badRequest(w, requestLogger, "coordinate", err)
		return
	}
	if c.Coordinate == nil {
		c.Coordinate = &latlon.GeoCoordinate{}
	}
	model.WithRadius(c.EarthRadius, c.Coordinate)

	s.stats.count("coordinate", true)

	writeJSON(w, http.StatusOK, model.Point{
		Point: c.Coordinate,
		Known: c.Coordinate.IsKnown(),
		Text:  c.Coordinate.StringWithUnits(),
	})
}

func (s *server) point(w http.ResponseWriter, requestLogger *log.Entry, action string, p *latlon.GeoCoordinate) {
	if p == nil {
		s.notPossible(w, requestLogger, action)
		return
	}

	requestLogger.Debugf("Point %s", p)
	s.stats.count(action, true)

	writeJSON(w, http.StatusOK, model.Point{Point: p, Known: true, Text: p.StringWithUnits()})
}

func (s *server) conversions(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, unit.Conversions())
}

func (s *server) convert(w http.ResponseWriter, req *http.Request) {
	conversion := mux.Vars(req)["conversion"]
	requestLogger := logger(req, "convert")

	v, err := strconv.ParseFloat(mux.Vars(req)["value"], 64)
	if err != nil {
		s.badRequest(w, requestLogger, "convert", err)
		return
	}
	if !finite(v) {
		s.badRequest(w, requestLogger, "convert", fmt.Errorf("value %v is not finite", v))
		return
	}

	res, err := unit.Convert(conversion, v)
	if errors.Is(err, unit.ErrUnknownConversion) {
		requestLogger.Warn(err)
		s.stats.count("convert", false)
		writeJSON(w, http.StatusNotFound, model.Error{Error: err.Error()})
		return
	}
	if !finite(res) {
		s.notPossible(w, requestLogger, "convert")
		return
	}

	s.stats.count("convert", true)

	writeJSON(w, http.StatusOK, model.Conversion{Conversion: conversion, Value: v, Result: res})
}

func (s *server) badRequest(w http.ResponseWriter, requestLogger *log.Entry, action string, err error) {
	requestLogger.Warnf("Bad request : %v", err)
	s.stats.count(action, false)
	writeJSON(w, http.StatusBadRequest, model.Error{Error: err.Error()})
}

func (s *server) notPossible(w http.ResponseWriter, requestLogger *log.Entry, action string) {
	requestLogger.Info(notPossible)
	s.stats.count(action, false)
	writeJSON(w, http.StatusUnprocessableEntity, model.Error{Error: notPossible})
}

func decode(req *http.Request, v interface{}) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// writeJSON only commits status once v is encoded, a failed encoding is
// answered with a 500.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("Encode response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(model.Error{Error: "could not encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.WithError(err).Debug("Write response")
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func logger(req *http.Request, action string) *log.Entry {
	fields := log.Fields{
		"action": action,
	}
	if ip, err := clientIP(req); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

// clientIP prefers the addresses set by a reverse proxy over the peer
// address.
func clientIP(r *http.Request) (string, error) {
	candidates := []string{r.Header.Get("X-Real-Ip")}
	candidates = append(candidates, strings.Split(r.Header.Get("X-Forwarded-For"), ",")...)

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		candidates = append(candidates, host)
	}

	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if net.ParseIP(c) != nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("no valid ip in request from %q", r.RemoteAddr)
}
