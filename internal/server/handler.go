package server

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	resumeforgeErrors "resumeforge/internal/errors"
	"resumeforge/internal/market"
	"resumeforge/internal/observability"
	"resumeforge/internal/render"
	"resumeforge/internal/storage"
	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// createAnalyzeHandler wraps the analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if req.Resume == nil {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.skills_count", len(req.Resume.Skills)),
			attribute.String("operation", "analyze"),
		)

		metrics := om.GetMetrics()
		var result types.AnalysisResult
		_ = metrics.TrackOperation(ctx, "analyze", func(ctx context.Context) error {
			result = market.Analyze(req.Resume)
			return nil
		})

		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true,
			attribute.Int("completeness_score", result.CompletenessScore),
			attribute.Int("matched_industries", len(result.MatchedIndustries)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("completeness_score", result.CompletenessScore),
		)

		writeJSONResponse(w, http.StatusOK, result)
	}
}

// createSuggestHandler wraps the suggest handler with observability
func (s *Server) createSuggestHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.suggest")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req SuggestRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if req.Resume == nil {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Industry) == "" {
			err := fmt.Errorf("missing industry")
			span.RecordError(err)
			writeErrorResponse(w, "Missing industry", "industry field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.industry", req.Industry),
			attribute.String("operation", "suggest"),
		)

		metrics := om.GetMetrics()
		var result types.Improvements
		err := metrics.TrackOperation(ctx, "suggest", func(ctx context.Context) error {
			var opErr error
			result, opErr = market.SuggestImprovements(req.Resume, req.Industry)
			return opErr
		})

		if err != nil {
			span.RecordError(err)
			if isErrorCode(err, resumeforgeErrors.ErrCodeIndustryNotFound) {
				writeErrorResponse(w, "Unknown industry", err.Error(), http.StatusNotFound)
				return
			}
			writeErrorResponse(w, "Failed to suggest improvements", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("skills_to_add", len(result.SkillsToAdd)),
		)

		writeJSONResponse(w, http.StatusOK, result)
	}
}

// createRenderHandler wraps the render handler with observability
func (s *Server) createRenderHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.render")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		doc, ok := s.renderFromRequest(ctx, w, r, om)
		if !ok {
			return
		}

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "resume_rendered", true,
			attribute.String("template", doc.Template))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("template", doc.Template),
		)

		writeJSONResponse(w, http.StatusOK, doc)
	}
}

// createExportHandler wraps the PDF export handler with observability
func (s *Server) createExportHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.export")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Each export gets its own ID so failed Chrome runs can be
		// correlated across logs and traces.
		requestID := uuid.NewString()
		span.SetAttributes(attribute.String("export.request_id", requestID))
		w.Header().Set("X-Request-ID", requestID)

		doc, ok := s.renderFromRequest(ctx, w, r, om)
		if !ok {
			return
		}

		metrics := om.GetMetrics()
		var data []byte
		err := metrics.TrackOperation(ctx, "export", func(ctx context.Context) error {
			var opErr error
			data, opErr = s.Exporter.Export(ctx, doc)
			return opErr
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "export"))
			metrics.RecordBusinessMetric(ctx, "resume_exported", false,
				attribute.String("template", doc.Template))
			s.Logger.LogError(err, "PDF export failed", "request_id", requestID)
			writeErrorResponse(w, "Failed to export PDF", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_exported", true,
			attribute.String("template", doc.Template),
			attribute.Int("pdf_bytes", len(data)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("pdf_bytes", len(data)),
		)

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
		if _, err := w.Write(data); err != nil {
			span.RecordError(err)
		}
	}
}

// renderFromRequest parses a render request and produces the document.
// Writes the error response itself and returns false on failure.
func (s *Server) renderFromRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, om *observability.ObservabilityManager) (*render.Document, bool) {
	var req RenderRequest
	if err := parseJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return nil, false
	}

	if req.Resume == nil {
		writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
		return nil, false
	}

	if req.Template != "" {
		req.Resume.Template = req.Template
	}

	customization := style.Customization{}
	if req.Customization != nil {
		customization = *req.Customization
	}

	metrics := om.GetMetrics()
	var doc *render.Document
	err := metrics.TrackOperation(ctx, "render", func(ctx context.Context) error {
		var opErr error
		doc, opErr = render.Render(req.Resume, customization)
		return opErr
	})

	if err != nil {
		if isErrorCode(err, resumeforgeErrors.ErrCodeTemplateNotFound) {
			writeErrorResponse(w, "Unknown template", err.Error(), http.StatusBadRequest)
			return nil, false
		}
		metrics.RecordBusinessMetric(ctx, "resume_rendered", false)
		writeErrorResponse(w, "Failed to render resume", err.Error(), http.StatusInternalServerError)
		return nil, false
	}

	return doc, true
}

// createResumesHandler serves the saved-resume collection: GET lists
// (optionally filtered by ?q=), POST saves
func (s *Server) createResumesHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumeforge.api")
		_, span := tracer.Start(r.Context(), "api.resumes")
		defer span.End()

		switch r.Method {
		case http.MethodGet:
			s.handleListResumes(w, r)
		case http.MethodPost:
			s.handleSaveResume(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")

	var (
		records []storage.SavedResume
		err     error
	)
	if keyword != "" {
		records, err = s.Store.Search(keyword)
	} else {
		records, err = s.Store.List()
	}
	if err != nil {
		writeErrorResponse(w, "Failed to list resumes", err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, http.StatusOK, records)
}

func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	var req SaveResumeRequest
	if err := parseJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeErrorResponse(w, "Missing name", "name field is required", http.StatusBadRequest)
		return
	}
	if req.Resume == nil {
		writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
		return
	}

	customization := style.Customization{}
	if req.Customization != nil {
		customization = *req.Customization
	}

	saved, err := s.Store.Save(req.Name, *req.Resume, customization)
	if err != nil {
		writeErrorResponse(w, "Failed to save resume", err.Error(), http.StatusInternalServerError)
		return
	}

	s.Logger.Info("Resume saved", "name", saved.Name)
	writeJSONResponse(w, http.StatusCreated, saved)
}

// createResumeItemHandler serves a single saved resume by name:
// GET loads, DELETE removes
func (s *Server) createResumeItemHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumeforge.api")
		_, span := tracer.Start(r.Context(), "api.resume_item")
		defer span.End()

		name := strings.TrimPrefix(r.URL.Path, "/resumes/")
		if name == "" {
			writeErrorResponse(w, "Missing name", "resume name is required in the path", http.StatusBadRequest)
			return
		}

		span.SetAttributes(attribute.String("resume.name", name))

		switch r.Method {
		case http.MethodGet:
			record, err := s.Store.Load(name)
			if err != nil {
				if isErrorCode(err, resumeforgeErrors.ErrCodeResumeNotFound) {
					writeErrorResponse(w, "Resume not found", err.Error(), http.StatusNotFound)
					return
				}
				writeErrorResponse(w, "Failed to load resume", err.Error(), http.StatusInternalServerError)
				return
			}
			writeJSONResponse(w, http.StatusOK, record)

		case http.MethodDelete:
			deleted, err := s.Store.Delete(name)
			if err != nil {
				writeErrorResponse(w, "Failed to delete resume", err.Error(), http.StatusInternalServerError)
				return
			}
			if !deleted {
				writeErrorResponse(w, "Resume not found", fmt.Sprintf("no saved resume named %q", name), http.StatusNotFound)
				return
			}
			s.Logger.Info("Resume deleted", "name", name)
			w.WriteHeader(http.StatusNoContent)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// createStoreExportHandler streams all saved resumes as a JSON backup
func (s *Server) createStoreExportHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumeforge.api")
		_, span := tracer.Start(r.Context(), "api.resumes_export")
		defer span.End()

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		data, err := s.Store.ExportAll()
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to export resumes", err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="resumes.json"`)
		if _, err := w.Write(data); err != nil {
			span.RecordError(err)
		}
	}
}

// createStoreImportHandler merges an uploaded JSON backup into the store
func (s *Server) createStoreImportHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumeforge.api")
		_, span := tracer.Start(r.Context(), "api.resumes_import")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to read request body", err.Error(), http.StatusBadRequest)
			return
		}

		records, err := s.Store.ImportAll(body)
		if err != nil {
			span.RecordError(err)
			if isErrorCode(err, resumeforgeErrors.ErrCodeInvalidImport) {
				writeErrorResponse(w, "Invalid import payload", err.Error(), http.StatusBadRequest)
				return
			}
			writeErrorResponse(w, "Failed to import resumes", err.Error(), http.StatusInternalServerError)
			return
		}

		s.Logger.Info("Resumes imported", "count", len(records))
		writeJSONResponse(w, http.StatusOK, records)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// isErrorCode reports whether err is an AppError with the given code
func isErrorCode(err error, code string) bool {
	var appErr *resumeforgeErrors.AppError
	return goerrors.As(err, &appErr) && appErr.Code == code
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
