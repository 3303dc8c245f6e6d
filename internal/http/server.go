package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/comparison"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/export"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/storage"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/validation"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/visual"
)

const (
	// maxComparePhones bounds a single /compare request.
	maxComparePhones = 5
	maxBodyBytes     = 1 << 20
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// PhoneRepository is the phone catalog the API reads from and writes to.
type PhoneRepository interface {
	ListPhones(ctx context.Context, f storage.ListFilter) ([]domain.Phone, int, error)
	GetPhone(ctx context.Context, id string) (domain.Phone, bool, error)
	GetPhones(ctx context.Context, ids []string) ([]domain.Phone, []string, error)
	CreatePhone(ctx context.Context, p domain.Phone) (domain.Phone, error)
	DeletePhone(ctx context.Context, id string) (bool, error)
}

type Server struct {
	Engine *comparison.Engine
	Repo   PhoneRepository
}

func NewServer(engine *comparison.Engine, repo PhoneRepository) *Server {
	return &Server{Engine: engine, Repo: repo}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/phones", s.handlePhonesList)
	mux.HandleFunc("/phones/", s.handlePhoneByID)
	mux.HandleFunc("/compare", s.handleCompare)
	mux.HandleFunc("/compare/export", s.handleCompareExport)
	return withRequestID(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- Phones API ----

type PhoneSummary struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Brand        string              `json:"brand"`
	Model        string              `json:"model"`
	Variant      string              `json:"variant,omitempty"`
	Price        float64             `json:"price"`
	Availability domain.Availability `json:"availability"`
	Image        string              `json:"image,omitempty"`
}

type PhonesListResponse struct {
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
	Total  int            `json:"total"`
	Items  []PhoneSummary `json:"items"`
}

func summarize(p domain.Phone) PhoneSummary {
	out := PhoneSummary{
		ID:           p.ID,
		Name:         p.DisplayName(),
		Brand:        p.Brand,
		Model:        p.Model,
		Variant:      p.Variant,
		Price:        p.Pricing.CurrentPrice,
		Availability: p.Availability,
	}
	if len(p.Images) > 0 {
		out.Image = p.Images[0]
	}
	return out
}

func (s *Server) handlePhonesList(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		s.handlePhoneCreate(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f := parseListFilter(r)
	phones, total, err := s.Repo.ListPhones(r.Context(), f)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, "storage_error", err)
		return
	}

	items := make([]PhoneSummary, 0, len(phones))
	for _, p := range phones {
		items = append(items, summarize(p))
	}
	writeJSON(w, http.StatusOK, PhonesListResponse{
		Limit:  f.Limit,
		Offset: f.Offset,
		Total:  total,
		Items:  items,
	})
}

// PhoneDetail is a phone record, with its category scores when requested
// through ?scores=1.
type PhoneDetail struct {
	domain.Phone
	Scores *domain.PhoneScores `json:"scores,omitempty"`
}

func (s *Server) handlePhoneByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/phones/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing_id"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, ok, err := s.Repo.GetPhone(r.Context(), id)
		if err != nil {
			s.fail(w, r, http.StatusInternalServerError, "storage_error", err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found"})
			return
		}
		detail := PhoneDetail{Phone: p}
		if withScores, _ := strconv.ParseBool(r.URL.Query().Get("scores")); withScores {
			scores := s.Engine.Score(p)
			detail.Scores = &scores
		}
		writeJSON(w, http.StatusOK, detail)

	case http.MethodDelete:
		ok, err := s.Repo.DeletePhone(r.Context(), id)
		if err != nil {
			s.fail(w, r, http.StatusInternalServerError, "storage_error", err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handlePhoneCreate validates the posted record against the phone schema
// before storing it. A missing id is generated.
func (s *Server) handlePhoneCreate(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil || doc == nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_json"})
		return
	}
	if id, _ := doc["id"].(string); strings.TrimSpace(id) == "" {
		doc["id"] = uuid.New().String()
	}

	if errs := validation.ValidatePhone(doc); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_phone", Details: errs})
		return
	}

	var p domain.Phone
	b, err := json.Marshal(doc)
	if err == nil {
		err = json.Unmarshal(b, &p)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_phone", Details: []string{err.Error()}})
		return
	}

	if _, exists, err := s.Repo.GetPhone(r.Context(), p.ID); err != nil {
		s.fail(w, r, http.StatusInternalServerError, "storage_error", err)
		return
	} else if exists {
		writeJSON(w, http.StatusConflict, errorBody{Error: "already_exists"})
		return
	}

	created, err := s.Repo.CreatePhone(r.Context(), p)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, "storage_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ---- Compare API ----

type CompareRequest struct {
	PhoneIDs      []string `json:"phone_ids"`
	IncludeVisual bool     `json:"include_visual"`
}

// CompareResponse carries Result for two phones and Results (every pair, in
// i<j order) for three to five.
type CompareResponse struct {
	Result  *domain.ComparisonResult   `json:"result,omitempty"`
	Results []*domain.ComparisonResult `json:"results,omitempty"`
	Visual  *visual.Comparison         `json:"visual,omitempty"`
	Visuals []visual.Comparison        `json:"visuals,omitempty"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, phones, ok := s.loadComparePhones(w, r)
	if !ok {
		return
	}

	if len(phones) == 2 {
		res, err := s.Engine.ComparePhones(phones[0], phones[1])
		if err != nil {
			s.compareFailed(w, r, err)
			return
		}
		out := CompareResponse{Result: res}
		if req.IncludeVisual {
			v := visual.Format(res)
			out.Visual = &v
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	results, err := s.Engine.CompareMultiplePhones(phones)
	if err != nil {
		s.compareFailed(w, r, err)
		return
	}
	out := CompareResponse{Results: results}
	if req.IncludeVisual {
		for _, res := range results {
			out.Visuals = append(out.Visuals, visual.Format(res))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCompareExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, phones, ok := s.loadComparePhones(w, r)
	if !ok {
		return
	}
	if len(req.PhoneIDs) != 2 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "export_requires_two_phones"})
		return
	}

	res, err := s.Engine.ComparePhones(phones[0], phones[1])
	if err != nil {
		s.compareFailed(w, r, err)
		return
	}
	b, err := export.BuildXLSX(res)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, "export_failed", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(res)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// loadComparePhones decodes a compare request and resolves its ids. It
// writes the error response itself and reports false on failure.
func (s *Server) loadComparePhones(w http.ResponseWriter, r *http.Request) (CompareRequest, []*domain.Phone, bool) {
	var req CompareRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_json"})
		return req, nil, false
	}
	if len(req.PhoneIDs) > maxComparePhones {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:   "too_many_phones",
			Details: []string{fmt.Sprintf("at most %d phones can be compared at once", maxComparePhones)},
		})
		return req, nil, false
	}

	found, missing, err := s.Repo.GetPhones(r.Context(), req.PhoneIDs)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, "storage_error", err)
		return req, nil, false
	}
	if len(missing) > 0 {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Details: missing})
		return req, nil, false
	}

	phones := make([]*domain.Phone, len(found))
	for i := range found {
		phones[i] = &found[i]
	}
	return req, phones, true
}

func (s *Server) compareFailed(w http.ResponseWriter, r *http.Request, err error) {
	var self *comparison.SelfComparisonError
	var insufficient *comparison.InsufficientOperandsError
	switch {
	case errors.As(err, &self):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "self_comparison", Details: []string{err.Error()}})
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "insufficient_phones", Details: []string{err.Error()}})
	case comparison.IsContractError(err):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_comparison", Details: []string{err.Error()}})
	default:
		s.fail(w, r, http.StatusInternalServerError, "comparison_failed", err)
	}
}

func exportFilename(res *domain.ComparisonResult) string {
	clean := func(p domain.Phone) string {
		return strings.Map(func(r rune) rune {
			if r == ' ' || r == '/' || r == '"' {
				return '-'
			}
			return r
		}, strings.ToLower(p.DisplayName()))
	}
	return clean(res.Phones[0]) + "-vs-" + clean(res.Phones[1]) + ".xlsx"
}

// ---- helpers ----

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// fail logs an unexpected failure with the request id and writes a generic
// error body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	slog.Error("request failed",
		"request_id", requestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"code", code,
		"error", err,
	)
	writeJSON(w, status, errorBody{Error: code})
}

func parseListFilter(r *http.Request) storage.ListFilter {
	q := r.URL.Query()
	limit, offset := parseLimitOffset(r, 20, 0)
	minPrice, _ := strconv.ParseFloat(q.Get("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(q.Get("max_price"), 64)
	return storage.ListFilter{
		Limit:        limit,
		Offset:       offset,
		Brand:        q.Get("brand"),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Availability: q.Get("availability"),
		Sort:         q.Get("sort"),
	}
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

