package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/resume-formatter/internal/document"
	"github.com/jonathan/resume-formatter/internal/types"
)

// Engine drives the multi-pass extraction of one document view into an
// ExtractionResult. An Engine is stateless across runs; each run owns its
// own result, so a single Engine may be reused for many documents.
type Engine struct {
	log   zerolog.Logger
	now   func() time.Time
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for pass progress and warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock overrides the time source used for the extraction timestamp and
// for open-ended experience durations. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides the extraction-run ID source. Intended for tests.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// New creates an extraction engine. Without options it logs nothing and uses
// wall-clock time and random run IDs.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:   zerolog.Nop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the four passes in fixed order (headers/footers, body,
// tables, text frames), then resolves duplicates and scores the result.
// It always returns a complete result; every extraction gap is recorded in
// the metadata warnings instead of failing the run.
func (e *Engine) Extract(view document.View) *types.ExtractionResult {
	result := types.NewExtractionResult(view.Name(), e.newID(), e.now())
	acc := newAccumulator(result)

	e.log.Info().Str("source", view.Name()).Msg("parsing resume")

	e.headerFooterPass(view, acc)
	e.bodyPass(view, acc)
	e.tablePass(view, acc)
	e.textFramePass(view, acc)

	e.resolve(acc)

	e.log.Info().
		Float64("confidence", result.Metadata.OverallConfidence).
		Int("experience_entries", len(result.Experience)).
		Int("warnings", len(result.Metadata.Warnings)).
		Msg("extraction complete")

	return result
}

// accumulator is the single mutable store shared by the passes. Contact
// fields subject to cross-source arbitration collect candidates; everything
// else is written straight into the result.
type accumulator struct {
	result     *types.ExtractionResult
	candidates map[string][]types.ScoredValue
}

func newAccumulator(result *types.ExtractionResult) *accumulator {
	return &accumulator{
		result:     result,
		candidates: make(map[string][]types.ScoredValue),
	}
}

func (a *accumulator) addCandidate(field string, sv types.ScoredValue) {
	a.candidates[field] = append(a.candidates[field], sv)
}

func (a *accumulator) hasCandidate(field string) bool {
	return len(a.candidates[field]) > 0
}

func (a *accumulator) setField(field string, sv types.ScoredValue) {
	a.result.PersonalInfo[field] = sv
}

func (a *accumulator) warn(msg string) {
	a.result.Metadata.Warnings = append(a.result.Metadata.Warnings, msg)
}

// headerFooterPass mines header and footer paragraphs for contact fields.
// Footers are additionally scanned for portfolio URLs.
func (e *Engine) headerFooterPass(view document.View, acc *accumulator) {
	e.log.Debug().Msg("checking headers and footers")

	for _, p := range view.HeaderParagraphs() {
		if text := strings.TrimSpace(p.Text); text != "" {
			acc.extractContactInfo(text, types.SourceHeader)
		}
	}

	for _, p := range view.FooterParagraphs() {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}
		acc.extractContactInfo(text, types.SourceFooter)

		for _, url := range urlRe.FindAllString(text, -1) {
			lower := strings.ToLower(url)
			switch {
			case strings.Contains(lower, "linkedin"):
				acc.setField(types.FieldLinkedIn, types.ScoredValue{Value: url, Confidence: 0.9, Source: types.SourceFooter})
			case strings.Contains(lower, "github"):
				acc.setField(types.FieldGitHub, types.ScoredValue{Value: url, Confidence: 0.9, Source: types.SourceFooter})
			}
		}
	}
}

// bodyPass walks the body paragraphs keeping a current-section state. Lines
// ahead of the first section heading are probed as name/contact candidates,
// which covers resumes that open with an unlabeled name block.
func (e *Engine) bodyPass(view document.View, acc *accumulator) {
	e.log.Debug().Msg("parsing main body")

	var (
		current     Section
		haveSection bool
		buffer      []string
	)

	for _, p := range view.Paragraphs() {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}

		if section, ok := ClassifySection(text, p.Emphasized); ok {
			if haveSection && len(buffer) > 0 {
				e.flushSection(acc, current, buffer)
			}
			buffer = nil
			current = section
			haveSection = true
			continue
		}

		if haveSection {
			buffer = append(buffer, text)
		} else {
			acc.extractContactInfo(text, types.SourceBody)
		}
	}

	if haveSection && len(buffer) > 0 {
		e.flushSection(acc, current, buffer)
	}
}

// flushSection hands buffered section content to the matching segmenter.
// Content of a labeled personal-information section is not routed anywhere;
// contact fields come from the other passes.
func (e *Engine) flushSection(acc *accumulator, section Section, content []string) {
	e.log.Debug().Str("section", string(section)).Int("lines", len(content)).Msg("flushing section")

	switch section {
	case SectionExperience:
		acc.result.Experience = append(acc.result.Experience, segmentExperience(content)...)
	case SectionEducation:
		acc.result.Education = append(acc.result.Education, segmentEducation(content)...)
	case SectionSkills:
		acc.result.Skills = segmentSkills(content)
	case SectionSummary:
		acc.result.Summary = strings.Join(content, " ")
	}
}

var (
	nameLabels    = []string{"이름", "성명", "name"}
	phoneLabels   = []string{"전화", "연락", "phone", "tel"}
	addressLabels = []string{"주소", "address"}

	// cellPhoneRe is stricter than the free-text phone pattern: table cells
	// carry a bare local number, not an international prefix.
	cellPhoneRe = regexp.MustCompile(`\d{2,3}[-.\s]?\d{3,4}[-.\s]?\d{4}`)
)

// tablePass treats each two-or-more-column row as a label/value pair and maps
// the label through a bilingual keyword lookup. Structured rows are more
// reliable than free text, so table-sourced fields carry confidence >= 0.9
// (address 0.85) and always enter arbitration against earlier passes.
func (e *Engine) tablePass(view document.View, acc *accumulator) {
	tables := view.Tables()
	if len(tables) == 0 {
		return
	}
	e.log.Debug().Int("tables", len(tables)).Msg("parsing tables")

	for _, table := range tables {
		for _, row := range table.Rows {
			if len(row) < 2 {
				continue
			}
			label := strings.TrimSpace(row[0])
			value := strings.TrimSpace(row[1])
			if label == "" || value == "" {
				continue
			}

			lower := strings.ToLower(label)
			switch {
			case containsAny(lower, nameLabels):
				acc.addCandidate(types.FieldName, types.ScoredValue{Value: value, Confidence: 0.95, Source: types.SourceTable})
			case containsAny(lower, phoneLabels):
				// Korean table rows often pack phone and email into one cell.
				if phone := cellPhoneRe.FindString(value); phone != "" {
					acc.addCandidate(types.FieldPhone, types.ScoredValue{Value: phone, Confidence: 0.9, Source: types.SourceTable})
				}
				if email := emailRe.FindString(value); email != "" {
					acc.addCandidate(types.FieldEmail, types.ScoredValue{Value: email, Confidence: 0.9, Source: types.SourceTable})
				}
			case strings.Contains(lower, "email") || strings.Contains(value, "@"):
				if email := emailRe.FindString(value); email != "" {
					acc.addCandidate(types.FieldEmail, types.ScoredValue{Value: email, Confidence: 0.9, Source: types.SourceTable})
				}
			case containsAny(lower, addressLabels):
				acc.setField(types.FieldAddress, types.ScoredValue{Value: value, Confidence: 0.85, Source: types.SourceTable})
			}
		}
	}
}

// textFramePass scans embedded text-frame content as loose contact text.
// Text-frame access is best-effort: a failure becomes a warning and the pass
// contributes nothing.
func (e *Engine) textFramePass(view document.View, acc *accumulator) {
	e.log.Debug().Msg("checking for text boxes")

	frames, err := view.TextFrames()
	if err != nil {
		e.log.Warn().Err(err).Msg("text frame access failed")
		acc.warn(fmt.Sprintf("Could not extract text boxes: %v", err))
		return
	}

	for _, frame := range frames {
		for _, line := range strings.Split(frame, "\n") {
			if text := strings.TrimSpace(line); text != "" {
				acc.extractContactInfo(text, types.SourceTextbox)
			}
		}
	}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
