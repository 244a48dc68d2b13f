// Package render turns stored section documents into ordered, render-ready
// view-models for the public page.
package render

import (
	"regexp"
	"sort"
	"strings"

	"github.com/amigdala/cms-backend/internal/content"
)

// Resolver maps a stored image path to a servable URL. An empty result means
// the caller omits the image entirely.
type Resolver func(path string) string

// ViewModel is one render-ready section projection.
type ViewModel interface {
	SectionKey() string
}

type AboutView struct {
	Section      string `json:"section"`
	Heading      string `json:"heading"`
	ProfileImage string `json:"profileImage,omitempty"`
	// Paragraph1/2 and ClosingText carry the emphasis markup applied.
	Paragraph1  string `json:"paragraph1,omitempty"`
	Paragraph2  string `json:"paragraph2,omitempty"`
	Paragraph3  string `json:"paragraph3,omitempty"`
	ClosingText string `json:"closingText,omitempty"`
	Quote       string `json:"quote,omitempty"`
}

func (v AboutView) SectionKey() string { return v.Section }

type ServiceCard struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	AdditionalText string `json:"additionalText,omitempty"`
}

type ServicesView struct {
	Section       string        `json:"section"`
	Heading       string        `json:"heading"`
	Introduction  string        `json:"introduction,omitempty"`
	Services      []ServiceCard `json:"services,omitempty"`
	FeaturedImage string        `json:"featuredImage,omitempty"`
}

func (v ServicesView) SectionKey() string { return v.Section }

type PrincipleItem struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type ApproachView struct {
	Section       string          `json:"section"`
	Heading       string          `json:"heading"`
	Intro         string          `json:"intro,omitempty"`
	Principles    []PrincipleItem `json:"principles,omitempty"`
	Closing       string          `json:"closing,omitempty"`
	FeaturedImage string          `json:"featuredImage,omitempty"`
}

func (v ApproachView) SectionKey() string { return v.Section }

type ExperienceView struct {
	Section       string `json:"section"`
	Heading       string `json:"heading"`
	LeftText      string `json:"leftText,omitempty"`
	RightText     string `json:"rightText,omitempty"`
	FeaturedImage string `json:"featuredImage,omitempty"`
}

func (v ExperienceView) SectionKey() string { return v.Section }

type ContactView struct {
	Section   string              `json:"section"`
	Heading   string              `json:"heading"`
	Lines     []string            `json:"lines,omitempty"`
	Contact   content.ContactInfo `json:"contactInfo"`
	Closing   string              `json:"closing,omitempty"`
	Signature string              `json:"signature,omitempty"`
}

func (v ContactView) SectionKey() string { return v.Section }

// Render orders documents by the fixed display sequence and dispatches each
// to its section-specific view builder. Documents with unknown section keys
// are excluded from the output; their sort position would otherwise be
// undefined. Stored documents are never mutated.
func Render(docs []*content.Document, resolve Resolver) []ViewModel {
	if resolve == nil {
		resolve = func(p string) string { return p }
	}
	ordered := make([]*content.Document, 0, len(docs))
	for _, d := range docs {
		if content.DisplayIndex(d.Section) >= 0 {
			ordered = append(ordered, d)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return content.DisplayIndex(ordered[i].Section) < content.DisplayIndex(ordered[j].Section)
	})

	out := make([]ViewModel, 0, len(ordered))
	for _, d := range ordered {
		build, ok := builders[d.Section]
		if !ok {
			continue
		}
		if vm, ok := build(d, resolve); ok {
			out = append(out, vm)
		}
	}
	return out
}

var builders = map[string]func(*content.Document, Resolver) (ViewModel, bool){
	content.SectionAbout:      buildAbout,
	content.SectionServices:   buildServices,
	content.SectionApproach:   buildApproach,
	content.SectionExperience: buildExperience,
	content.SectionContact:    buildContact,
}

func buildAbout(d *content.Document, resolve Resolver) (ViewModel, bool) {
	c, ok := d.Body.(*content.AboutContent)
	if !ok {
		return nil, false
	}
	return AboutView{
		Section:      d.Section,
		Heading:      c.Heading,
		ProfileImage: resolve(c.ProfileImage),
		Paragraph1:   emphasize(c.Paragraph1, paragraph1Terms),
		Paragraph2:   emphasize(c.Paragraph2, paragraph2Terms),
		Paragraph3:   c.Paragraph3,
		ClosingText:  emphasize(c.ClosingText, closingTerms),
		Quote:        c.Quote,
	}, true
}

func buildServices(d *content.Document, resolve Resolver) (ViewModel, bool) {
	c, ok := d.Body.(*content.ServicesContent)
	if !ok {
		return nil, false
	}
	cards := make([]ServiceCard, 0, len(c.Services))
	for _, s := range c.Services {
		cards = append(cards, ServiceCard{ID: s.ID, Title: s.Title, Description: s.Description, AdditionalText: s.AdditionalText})
	}
	return ServicesView{
		Section:       d.Section,
		Heading:       c.Heading,
		Introduction:  c.Introduction,
		Services:      cards,
		FeaturedImage: resolve(c.FeaturedImage),
	}, true
}

func buildApproach(d *content.Document, resolve Resolver) (ViewModel, bool) {
	c, ok := d.Body.(*content.ApproachContent)
	if !ok {
		return nil, false
	}
	items := make([]PrincipleItem, 0, len(c.Principles))
	for _, p := range c.Principles {
		items = append(items, PrincipleItem{Number: p.Number, Title: p.Title, Description: p.Description})
	}
	return ApproachView{
		Section:       d.Section,
		Heading:       c.Heading,
		Intro:         c.Intro,
		Principles:    items,
		Closing:       c.Closing,
		FeaturedImage: resolve(c.FeaturedImage),
	}, true
}

func buildExperience(d *content.Document, resolve Resolver) (ViewModel, bool) {
	c, ok := d.Body.(*content.ExperienceContent)
	if !ok {
		return nil, false
	}
	return ExperienceView{
		Section:       d.Section,
		Heading:       c.Heading,
		LeftText:      c.LeftText,
		RightText:     c.RightText,
		FeaturedImage: resolve(c.FeaturedImage),
	}, true
}

func buildContact(d *content.Document, resolve Resolver) (ViewModel, bool) {
	c, ok := d.Body.(*content.ContactContent)
	if !ok {
		return nil, false
	}
	return ContactView{
		Section:   d.Section,
		Heading:   c.Heading,
		Lines:     append([]string(nil), c.Lines...),
		Contact:   c.ContactInfo,
		Closing:   c.Closing,
		Signature: c.Signature,
	}, true
}

// Cosmetic emphasis: a few hard-coded phrases in the about copy render bold.
// Matching is case-insensitive and the matched text keeps its original case.
var (
	paragraph1Terms = mustTerms("casi 20 años", "autoconocimiento", "transformación")
	paragraph2Terms = mustTerms("más de 13 años", "crecimiento humano")
	closingTerms    = mustTerms("AMIGDALA")
)

func mustTerms(terms ...string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile("(?i)(" + strings.Join(quoted, "|") + ")")
}

func emphasize(text string, re *regexp.Regexp) string {
	if text == "" {
		return ""
	}
	return re.ReplaceAllString(text, "<b>$1</b>")
}
