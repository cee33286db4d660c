// Package report renders symptom analyses as PDF summaries a patient can
// bring to an appointment.
package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/signintech/gopdf"
	"go.uber.org/zap"

	"tmj-platform/internal/browse"
)

const (
	fontName  = "DejaVu"
	textWidth = 500
)

var ErrNoFont = errors.New("no usable font found")

type Service struct {
	fontPaths []string
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(fontPaths []string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fontPaths: fontPaths,
		logger:    logger,
		now:       time.Now,
	}
}

// Render implements browse.ReportRenderer.
func (s *Service) Render(ctx context.Context, resp *browse.Response) ([]byte, error) {
	id := uuid.New()
	s.logger.Debug("generating analysis report", zap.String("report.id", id.String()))

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := s.loadFont(&pdf); err != nil {
		return nil, err
	}

	if err := pdf.SetFont(fontName, "", 20); err != nil {
		return nil, err
	}
	if err := pdf.Cell(nil, resp.PersonalizedContent.Title); err != nil {
		return nil, err
	}
	pdf.Br(30)

	if err := pdf.SetFont(fontName, "", 10); err != nil {
		return nil, err
	}
	if err := writeLines(&pdf, fmt.Sprintf("Date: %s   Reference: %s", s.now().Format("02.01.2006 15:04"), id), 12); err != nil {
		return nil, err
	}
	if resp.RPMSuggestion != nil {
		if err := writeLines(&pdf, fmt.Sprintf("Suggested starting RPM: %d", *resp.RPMSuggestion), 12); err != nil {
			return nil, err
		}
	}
	pdf.Br(15)

	for _, section := range resp.PersonalizedContent.Sections {
		if strings.TrimSpace(section.Content) == "" {
			continue
		}
		if err := pdf.SetFont(fontName, "", 14); err != nil {
			return nil, err
		}
		if err := pdf.Cell(nil, section.Heading); err != nil {
			return nil, err
		}
		pdf.Br(18)

		if err := pdf.SetFont(fontName, "", 11); err != nil {
			return nil, err
		}
		for _, line := range strings.Split(section.Content, "\n") {
			if err := writeLines(&pdf, line, 14); err != nil {
				return nil, err
			}
		}
		pdf.Br(12)
	}

	if len(resp.Patterns) == 0 {
		if err := writeLines(&pdf, "No symptom patterns were identified in your description.", 14); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Service) loadFont(pdf *gopdf.GoPdf) error {
	var lastErr error
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont(fontName, path); err != nil {
			lastErr = err
			continue
		}
		s.logger.Debug("loaded report font", zap.String("path", path))
		return nil
	}
	if lastErr == nil {
		return ErrNoFont
	}
	return fmt.Errorf("%w: %v", ErrNoFont, lastErr)
}

// writeLines wraps text to the page width.
func writeLines(pdf *gopdf.GoPdf, text string, lineHeight float64) error {
	if text == "" {
		pdf.Br(lineHeight)
		return nil
	}
	lines, err := pdf.SplitText(text, textWidth)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if err := pdf.Cell(nil, l); err != nil {
			return err
		}
		pdf.Br(lineHeight)
	}
	return nil
}
