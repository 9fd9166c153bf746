package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/batch"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/certificate"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer"
)

const (
	maxUploadBytes = 16 << 20 // whole multipart request
	maxSubjectLen  = 100

	defaultSubject = "Your Certificate"
	defaultBody    = "Please find your certificate attached."
)

var (
	cordsPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*$`)

	sheetExtensions    = map[string]bool{".xlsx": true, ".xls": true}
	templateExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}
)

// handleSubmit accepts a multipart job submission and returns a job ID.
// Form fields: cords ("X,Y"), fonts, subject, body, service; files: sheet, template.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	point, err := parseCords(r.FormValue("cords"))
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	subject := strings.TrimSpace(r.FormValue("subject"))
	if subject == "" {
		subject = defaultSubject
	}
	if len(subject) > maxSubjectLen {
		respondError(w, http.StatusUnprocessableEntity, "subject is too long (max 100 characters)")
		return
	}

	body := strings.TrimSpace(r.FormValue("body"))
	if body == "" {
		body = defaultBody
	}

	if !certificate.ValidFontKey(r.FormValue("fonts")) {
		respondError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("unsupported font, allowed: %s", strings.Join(certificate.FontKeys(), ", ")))
		return
	}

	sheetPath, err := s.saveUpload(r, "sheet", sheetExtensions)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	templatePath, err := s.saveUpload(r, "template", templateExtensions)
	if err != nil {
		os.Remove(sheetPath)
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	jobID, err := s.processor.Submit(r.Context(), batch.JobRequest{
		SheetPath:    sheetPath,
		TemplatePath: templatePath,
		FontKey:      r.FormValue("fonts"),
		Point:        point,
		Subject:      subject,
		Body:         body,
		Provider:     r.FormValue("service"),
	})
	if err != nil {
		os.Remove(sheetPath)
		os.Remove(templatePath)
		s.log.Warn("submission rejected", slog.String("error", err.Error()))
		respondError(w, submitStatusCode(err), err.Error())
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{"job_id": jobID})
}

// submitStatusCode maps submission failures onto HTTP status codes.
func submitStatusCode(err error) int {
	switch {
	case errors.Is(err, mailer.ErrUnknownProvider),
		errors.Is(err, certificate.ErrUnknownFont):
		return http.StatusUnprocessableEntity
	case errors.Is(err, mailer.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, batch.ErrQueueFull):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// parseCords parses "X,Y" with numeric (possibly fractional) coordinates.
func parseCords(raw string) (certificate.Point, error) {
	m := cordsPattern.FindStringSubmatch(raw)
	if m == nil {
		return certificate.Point{}, fmt.Errorf("invalid cords format, expected 'X,Y' with numeric values")
	}
	x, _ := strconv.ParseFloat(m[1], 64)
	y, _ := strconv.ParseFloat(m[2], 64)
	return certificate.Point{X: x, Y: y}, nil
}

// saveUpload streams one uploaded file into the upload directory under a
// unique name, keeping the original extension.
func (s *Server) saveUpload(r *http.Request, field string, allowed map[string]bool) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("%s file required", field)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowed[ext] {
		return "", fmt.Errorf("%s has unsupported file type %q", field, ext)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("could not store %s upload", field)
	}

	path := filepath.Join(s.uploadDir, uuid.NewString()+ext)
	if err := writeUpload(file, path); err != nil {
		s.log.Error("upload save failed",
			slog.String("field", field),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("could not store %s upload", field)
	}
	return path, nil
}

func writeUpload(src multipart.File, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	return dst.Close()
}
