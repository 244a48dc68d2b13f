package content

import (
	"encoding/json"
	"fmt"
	"time"
)

// Section keys form a closed set. Storage tolerates other keys (they round-trip
// as generic documents) but the renderer ignores them.
const (
	SectionAbout      = "about"
	SectionServices   = "services"
	SectionApproach   = "approach"
	SectionExperience = "experience"
	SectionContact    = "contact"
)

// DisplayOrder is the fixed sequence sections appear in on the public page.
var DisplayOrder = []string{
	SectionAbout,
	SectionServices,
	SectionApproach,
	SectionExperience,
	SectionContact,
}

// DisplayIndex returns the position of a section key in DisplayOrder,
// or -1 for unknown keys.
func DisplayIndex(section string) int {
	for i, s := range DisplayOrder {
		if s == section {
			return i
		}
	}
	return -1
}

// AboutContent is the typed payload for the "about" section.
type AboutContent struct {
	Heading      string `json:"heading" bson:"heading"`
	ProfileImage string `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	Paragraph1   string `json:"paragraph1,omitempty" bson:"paragraph1,omitempty"`
	Paragraph2   string `json:"paragraph2,omitempty" bson:"paragraph2,omitempty"`
	Paragraph3   string `json:"paragraph3,omitempty" bson:"paragraph3,omitempty"`
	ClosingText  string `json:"closingText,omitempty" bson:"closingText,omitempty"`
	Quote        string `json:"quote,omitempty" bson:"quote,omitempty"`
}

// ServiceEntry is one offered service card. Entries render in stored order.
type ServiceEntry struct {
	ID             string `json:"id" bson:"id"`
	Title          string `json:"title" bson:"title"`
	Description    string `json:"description,omitempty" bson:"description,omitempty"`
	AdditionalText string `json:"additionalText,omitempty" bson:"additionalText,omitempty"`
}

type ServicesContent struct {
	Heading       string         `json:"heading" bson:"heading"`
	Introduction  string         `json:"introduction,omitempty" bson:"introduction,omitempty"`
	Services      []ServiceEntry `json:"services,omitempty" bson:"services,omitempty"`
	FeaturedImage string         `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`
}

// Principle is one numbered item of the approach section.
type Principle struct {
	Number      int    `json:"number" bson:"number"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type ApproachContent struct {
	Heading       string      `json:"heading" bson:"heading"`
	Intro         string      `json:"intro,omitempty" bson:"intro,omitempty"`
	Principles    []Principle `json:"principles,omitempty" bson:"principles,omitempty"`
	Closing       string      `json:"closing,omitempty" bson:"closing,omitempty"`
	FeaturedImage string      `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`
}

type ExperienceContent struct {
	Heading       string `json:"heading" bson:"heading"`
	LeftText      string `json:"leftText,omitempty" bson:"leftText,omitempty"`
	RightText     string `json:"rightText,omitempty" bson:"rightText,omitempty"`
	FeaturedImage string `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`
}

type ContactInfo struct {
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
}

type ContactContent struct {
	Heading     string      `json:"heading" bson:"heading"`
	Lines       []string    `json:"lines,omitempty" bson:"lines,omitempty"`
	ContactInfo ContactInfo `json:"contactInfo" bson:"contactInfo"`
	Closing     string      `json:"closing,omitempty" bson:"closing,omitempty"`
	Signature   string      `json:"signature,omitempty" bson:"signature,omitempty"`
}

// Document is one stored section: its key, the server-stamped modification
// time, and the section-shaped body. Body is a pointer to one of the typed
// content structs for known sections, or a map[string]interface{} for
// tolerated unknown keys.
type Document struct {
	Section   string
	UpdatedAt time.Time
	Body      interface{}
}

// bodyFactories drives the tagged-union decode: one constructor per known key.
var bodyFactories = map[string]func() interface{}{
	SectionAbout:      func() interface{} { return &AboutContent{} },
	SectionServices:   func() interface{} { return &ServicesContent{} },
	SectionApproach:   func() interface{} { return &ApproachContent{} },
	SectionExperience: func() interface{} { return &ExperienceContent{} },
	SectionContact:    func() interface{} { return &ContactContent{} },
}

// NewBody returns an empty typed body for a known section key.
func NewBody(section string) (interface{}, bool) {
	f, ok := bodyFactories[section]
	if !ok {
		return nil, false
	}
	return f(), true
}

// DecodeBody parses a raw JSON payload into the section's typed shape.
// Unknown section keys decode into a generic map so storage can still keep
// them. Extra fields on known sections are ignored; type mismatches are
// reported as errors.
func DecodeBody(section string, raw json.RawMessage) (interface{}, error) {
	if body, ok := NewBody(section); ok {
		if err := json.Unmarshal(raw, body); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", section, err)
		}
		return body, nil
	}
	m := map[string]interface{}{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return m, nil
}

// MarshalJSON flattens the body fields alongside the section key and
// timestamp, matching the wire shape stored in the database.
func (d *Document) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{}
	if d.Body != nil {
		b, err := json.Marshal(d.Body)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, err
		}
	}
	m["section"] = d.Section
	m["updatedAt"] = d.UpdatedAt
	return json.Marshal(m)
}
