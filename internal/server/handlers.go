package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/wetonku/go-weton/internal/config"
	"github.com/wetonku/go-weton/internal/data"
	"github.com/wetonku/go-weton/internal/engine"
	"github.com/wetonku/go-weton/internal/export"
)

const (
	defaultSpecialDateCount = 5
	defaultBirthdayYears    = 3
	maxBirthdayYears        = 10
)

// Query payloads are validated as structs so the rules live in one place.
type dateQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

type rangeQuery struct {
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
}

type specialDatesQuery struct {
	From    string `validate:"required,datetime=2006-01-02"`
	Day     string `validate:"required"`
	Pasaran string `validate:"required"`
	Count   int    `validate:"min=1,max=24"`
}

type retirementQuery struct {
	Birth string `validate:"required,datetime=2006-01-02"`
	Age   int    `validate:"min=30,max=100"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": config.Version})
}

// parseBirth resolves the birth query parameter through the engine's
// validation so the response carries the exact user-facing reason.
func (s *Server) parseBirth(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	now := s.clock.Now()
	birth, err := engine.ParseBirthDate(r.URL.Query().Get(config.ParamBirth), now)
	if err != nil {
		s.writeEngineError(w, err)
		return time.Time{}, time.Time{}, false
	}
	return birth, now, true
}

func (s *Server) parseDate(w http.ResponseWriter, r *http.Request, param string) (time.Time, bool) {
	q := dateQuery{Date: r.URL.Query().Get(param)}
	if err := s.validate.Struct(q); err != nil {
		s.writeError(w, http.StatusBadRequest, config.ErrBirthDateFormat)
		return time.Time{}, false
	}
	d, err := time.Parse(config.DateFormatFullDash, q.Date)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, config.ErrBirthDateFormat)
		return time.Time{}, false
	}
	return d, true
}

func (s *Server) handleAge(w http.ResponseWriter, r *http.Request) {
	birth, now, ok := s.parseBirth(w, r)
	if !ok {
		return
	}

	b, err := engine.CalculateAge(birth, now)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"breakdown":   b,
		"description": engine.DescribeAge(b, birth, now),
		"weton":       engine.CalculateWeton(birth),
		"zodiac":      engine.CalculateZodiac(birth),
		"shio":        engine.CalculateShio(birth),
	})
}

func (s *Server) handleWeton(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseDate(w, r, config.ParamDate)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, engine.CalculateWeton(d))
}

func (s *Server) handleZodiac(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseDate(w, r, config.ParamDate)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, engine.CalculateZodiac(d))
}

func (s *Server) handleShio(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseDate(w, r, config.ParamDate)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, engine.CalculateShio(d))
}

func (s *Server) handleHaul(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseDate(w, r, config.ParamDate)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, engine.CalculateHaul(d))
}

func (s *Server) handleHaulICS(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseDate(w, r, config.ParamDate)
	if !ok {
		return
	}

	feed, err := export.HaulCalendar(engine.CalculateHaul(d), s.clock.Now())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, config.HTTPMsgInternalErr)
		return
	}
	s.writeICS(w, feed)
}

func (s *Server) handleBirthdayICS(w http.ResponseWriter, r *http.Request) {
	birth, now, ok := s.parseBirth(w, r)
	if !ok {
		return
	}

	years := queryInt(r, config.ParamCount, defaultBirthdayYears)
	if years < 1 || years > maxBirthdayYears {
		years = defaultBirthdayYears
	}

	feed, err := export.BirthdayCalendar(birth, now, years, r.URL.Query().Get(config.ParamReminder))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeICS(w, feed)
}

func (s *Server) handleSpecialDates(w http.ResponseWriter, r *http.Request) {
	q := specialDatesQuery{
		From:    r.URL.Query().Get(config.ParamFrom),
		Day:     r.URL.Query().Get(config.ParamDay),
		Pasaran: r.URL.Query().Get(config.ParamPasaran),
		Count:   queryInt(r, config.ParamCount, defaultSpecialDateCount),
	}
	if err := s.validate.Struct(q); err != nil {
		s.writeError(w, http.StatusBadRequest, config.ErrBirthDateFormat)
		return
	}

	from, err := time.Parse(config.DateFormatFullDash, q.From)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, config.ErrBirthDateFormat)
		return
	}

	criteria := engine.WetonCriteria{Day: q.Day, Pasaran: q.Pasaran}
	if err := engine.ValidCriteria(criteria); err != nil {
		s.writeEngineError(w, err)
		return
	}

	// An empty result is a valid response, not an error.
	s.writeJSON(w, http.StatusOK, map[string]any{
		"criteria": criteria,
		"dates":    engine.FindSpecialDates(from, criteria, q.Count),
	})
}

func (s *Server) handleMilestones(w http.ResponseWriter, r *http.Request) {
	birth, now, ok := s.parseBirth(w, r)
	if !ok {
		return
	}

	b, err := engine.CalculateAge(birth, now)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, engine.ScanMilestones(b, now))
}

func (s *Server) handleWorkingDays(w http.ResponseWriter, r *http.Request) {
	q := rangeQuery{
		Start: r.URL.Query().Get(config.ParamStart),
		End:   r.URL.Query().Get(config.ParamEnd),
	}
	if err := s.validate.Struct(q); err != nil {
		s.writeError(w, http.StatusBadRequest, config.ErrBirthDateFormat)
		return
	}

	start, _ := time.Parse(config.DateFormatFullDash, q.Start)
	end, _ := time.Parse(config.DateFormatFullDash, q.End)

	result, err := engine.CalculateWorkingDays(start, end, s.holidays)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRetirement(w http.ResponseWriter, r *http.Request) {
	q := retirementQuery{
		Birth: r.URL.Query().Get(config.ParamBirth),
		Age:   queryInt(r, config.ParamAge, config.DefaultRetirementAge),
	}
	if err := s.validate.Struct(q); err != nil {
		s.writeError(w, http.StatusBadRequest, config.ErrBirthDateFormat)
		return
	}

	birth, err := time.Parse(config.DateFormatFullDash, q.Birth)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, config.ErrBirthDateFormat)
		return
	}

	result, err := engine.CalculateRetirement(birth, q.Age, s.clock.Now(), s.holidays)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleEstimates(w http.ResponseWriter, r *http.Request) {
	birth, now, ok := s.parseBirth(w, r)
	if !ok {
		return
	}

	b, err := engine.CalculateAge(birth, now)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"biological": engine.EstimateBiological(b),
		"relativity": engine.EstimateRelativity(birth, now, s.releases),
	})
}

func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	birth, now, ok := s.parseBirth(w, r)
	if !ok {
		return
	}

	b, err := engine.CalculateAge(birth, now)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	facts, err := data.FactsForAge(b.Years)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, config.HTTPMsgInternalErr)
		return
	}
	if facts == nil {
		facts = []data.AgeFact{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"age": b.Years, "facts": facts})
}

// -----------------------------------------------------------------------------
// Response helpers
// -----------------------------------------------------------------------------

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

func (s *Server) writeICS(w http.ResponseWriter, feed []byte) {
	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	if _, err := w.Write(feed); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{
		"error": s.translator.MsgData(config.TKeyErrValidation, map[string]any{"Reason": msg}),
	})
}

// writeEngineError maps engine errors onto HTTP statuses: user input problems
// are 400s with their reason, anything else is a 500.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	if engine.IsValidationError(err) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Error(config.ErrAppFailed,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyError, err,
	)
	s.writeError(w, http.StatusInternalServerError, config.HTTPMsgInternalErr)
}

func queryInt(r *http.Request, param string, fallback int) int {
	v := r.URL.Query().Get(param)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
