// Package portal renders the static candidate-facing HTML page: the language
// intro, the research summary, and every assignment with download links to
// its fabricated datasets and starter code.
package portal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hireloop/takehome-forge/pkg/assignments"
	"github.com/hireloop/takehome-forge/pkg/datasets"
	"github.com/hireloop/takehome-forge/pkg/payload"
	"github.com/hireloop/takehome-forge/pkg/starter"
	"github.com/pkg/errors"
)

// Options configures the page build.
type Options struct {
	OutputPath      string
	Language        string
	Title           string // page title; derived from the document when empty
	ResearchSummary string // free text shown in the background section
	DatasetDir      string // where fabricated datasets live; links resolve relative to the HTML
	StarterDir      string // where starter files live
	ApplyURL        string
	SiteURL         string
}

type resourceView struct {
	Name        string
	Href        string
	Meta        string
	Description string
}

type assignmentView struct {
	Title               string
	Summary             string
	Mission             string
	Timeline            string
	Requirements        []string
	Deliverables        []string
	Evaluation          []string
	DiscussionQuestions []string
	Datasets            []resourceView
	Starter             *resourceView
}

type pageData struct {
	UI          uiStrings
	Intro       introContent
	Title       string
	Company     string
	HeroRole    string
	Research    []string
	Assignments []assignmentView
	ApplyURL    string
	SiteURL     string
}

// Build renders the portal page for a document and writes it to
// opts.OutputPath. All model-produced text is sanitized again before
// rendering; html/template handles escaping.
func Build(doc assignments.Document, opts Options) (err error) {
	htmlDir, err := filepath.Abs(filepath.Dir(opts.OutputPath))
	if err != nil {
		err = errors.Wrapf(err, "failed to resolve portal output directory: %s", opts.OutputPath)
		return err
	}

	data := pageData{
		UI:       uiForLanguage(opts.Language),
		Intro:    introForLanguage(opts.Language, clean(doc.Company)),
		Company:  clean(doc.Company),
		HeroRole: strings.TrimSpace(clean(doc.JobLevel) + " " + clean(doc.JobRole)),
		Research: paragraphs(opts.ResearchSummary),
		ApplyURL: opts.ApplyURL,
		SiteURL:  opts.SiteURL,
	}

	data.Title = opts.Title
	if data.Title == "" {
		data.Title = strings.TrimSpace(fmt.Sprintf("%s %s Take-Home Portal", data.Company, data.HeroRole))
	}

	for _, assignment := range doc.Assignments {
		data.Assignments = append(data.Assignments, buildAssignmentView(assignment, htmlDir, opts))
	}

	var out strings.Builder
	err = pageTemplate.Execute(&out, data)
	if err != nil {
		err = errors.Wrap(err, "failed to render portal page")
		return err
	}

	err = os.WriteFile(opts.OutputPath, []byte(out.String()), 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write portal page: %s", opts.OutputPath)
		return err
	}

	fmt.Printf("--- Portal page saved to: %s ---\n", opts.OutputPath)

	return err
}

func buildAssignmentView(assignment assignments.Assignment, htmlDir string, opts Options) (view assignmentView) {
	view = assignmentView{
		Title:               clean(assignment.Title),
		Summary:             clean(assignment.Summary),
		Mission:             clean(assignment.Mission),
		Timeline:            clean(assignment.Timeline),
		Requirements:        cleanAll(assignment.Requirements),
		Deliverables:        cleanAll(assignment.Deliverables),
		Evaluation:          cleanAll(assignment.Evaluation),
		DiscussionQuestions: cleanAll(assignment.DiscussionQuestions),
	}

	for _, dataset := range assignment.Datasets {
		meta := strings.ToUpper(dataset.Format)
		if dataset.Records > 0 {
			meta = fmt.Sprintf("%s · %d rows", meta, dataset.Records)
		}

		view.Datasets = append(view.Datasets, resourceView{
			Name:        clean(dataset.Name),
			Href:        relativeHref(filepath.Join(opts.DatasetDir, datasets.Filename(dataset)), htmlDir),
			Meta:        meta,
			Description: clean(dataset.Description),
		})
	}

	if filename := starter.Filename(assignment); filename != "" {
		view.Starter = &resourceView{
			Name:        filename,
			Href:        relativeHref(filepath.Join(opts.StarterDir, filename), htmlDir),
			Meta:        strings.ToUpper(assignment.StarterCode.Language),
			Description: clean(assignment.StarterCode.Description),
		}
	}

	return view
}

// relativeHref turns a local artifact path into a link relative to the HTML
// directory so the page works from disk and from any static host. Paths that
// cannot be made relative are used as-is.
func relativeHref(target, htmlDir string) (href string) {
	if target == "" {
		return href
	}

	absolute, err := filepath.Abs(target)
	if err != nil {
		href = filepath.ToSlash(target)
		return href
	}

	relative, err := filepath.Rel(htmlDir, absolute)
	if err != nil {
		href = filepath.ToSlash(absolute)
		return href
	}

	href = filepath.ToSlash(relative)
	return href
}

// paragraphs splits free text into renderable paragraphs on blank lines.
func paragraphs(text string) (result []string) {
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(clean(block))
		if block != "" {
			result = append(result, block)
		}
	}
	return result
}

func clean(value string) (cleaned string) {
	cleaned = payload.SanitizeString(value)
	return cleaned
}

func cleanAll(values []string) (cleaned []string) {
	for _, value := range values {
		value = clean(value)
		if value != "" {
			cleaned = append(cleaned, value)
		}
	}
	return cleaned
}
