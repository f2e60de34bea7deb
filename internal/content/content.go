// Package content holds the portfolio's reference data: profile, navigation,
// experience, projects, testimonials, technologies, FAQ and contact copy.
//
// A Site is loaded once at startup, validated, and treated as read-only for
// the life of the process.
package content

import "errors"

var (
	// ErrNotFound is returned when a content source does not exist.
	ErrNotFound = errors.New("content: not found")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("content: invalid")
)

// Site is the complete content of the page.
type Site struct {
	Profile      Profile           `yaml:"profile" json:"profile"`
	Nav          []NavItem         `yaml:"nav" json:"nav" validate:"required,min=1,unique=ID,dive"`
	Socials      []SocialLink      `yaml:"socials" json:"socials" validate:"unique=Label,dive"`
	Experience   []ExperienceEntry `yaml:"experience" json:"experience" validate:"unique=Company,dive"`
	Projects     []Project         `yaml:"projects" json:"projects" validate:"unique=Title,dive"`
	Testimonials []Testimonial     `yaml:"testimonials" json:"testimonials" validate:"unique=AuthorName,dive"`
	Technologies []Technology      `yaml:"technologies" json:"technologies" validate:"unique=Name,dive"`
	FAQ          []FAQItem         `yaml:"faq" json:"faq" validate:"unique=ID,dive"`
	Contact      Contact           `yaml:"contact" json:"contact"`
}

// Profile is the hero and about copy. About paragraphs are markdown.
type Profile struct {
	Brand       string   `yaml:"brand" json:"brand" validate:"required"`
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Role        string   `yaml:"role" json:"role"`
	Tagline     string   `yaml:"tagline" json:"tagline"`
	Email       string   `yaml:"email" json:"email" validate:"required,email"`
	PortraitRef string   `yaml:"portrait" json:"portrait,omitempty"`
	ResumeRef   string   `yaml:"resume" json:"resume,omitempty"`
	Since       string   `yaml:"since" json:"since,omitempty"`
	About       []string `yaml:"about" json:"about"`
}

// NavItem is an in-page anchor. ID doubles as the section id.
type NavItem struct {
	ID    string `yaml:"id" json:"id" validate:"required,excludesall=#/? "`
	Label string `yaml:"label" json:"label" validate:"required"`
}

// Href is the in-page link to the section.
func (n NavItem) Href() string {
	return "#" + n.ID
}

// SocialLink is an outbound profile link. Footer marks the links repeated in
// the page footer.
type SocialLink struct {
	Label  string `yaml:"label" json:"label" validate:"required"`
	URL    string `yaml:"url" json:"url" validate:"required,url"`
	Icon   string `yaml:"icon" json:"icon"`
	Footer bool   `yaml:"footer" json:"footer"`
}

// ExperienceEntry is one row of the experience list. Link is optional.
type ExperienceEntry struct {
	Company     string `yaml:"company" json:"company" validate:"required"`
	Role        string `yaml:"role" json:"role" validate:"required"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link,omitempty" validate:"omitempty,url"`
}

// Project is a showcased piece of work.
type Project struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
	ImageRef    string `yaml:"image" json:"image"`
	Link        string `yaml:"link" json:"link" validate:"required,url"`
}

// Testimonial is a client quote. ImageRef is optional.
type Testimonial struct {
	Quote             string `yaml:"quote" json:"quote" validate:"required"`
	AuthorName        string `yaml:"author" json:"author" validate:"required"`
	AuthorAffiliation string `yaml:"affiliation" json:"affiliation"`
	ImageRef          string `yaml:"image" json:"image,omitempty"`
}

// Technology is an entry of the tech stack grid. Invert puts the icon on a
// light tile for logos that vanish on the dark background.
type Technology struct {
	Name    string `yaml:"name" json:"name" validate:"required"`
	IconURL string `yaml:"icon" json:"icon" validate:"required"`
	Invert  bool   `yaml:"invert" json:"invert"`
}

// FAQItem is a question and its markdown answer. Whether it is expanded is
// page state, not content.
type FAQItem struct {
	ID       string `yaml:"id" json:"id" validate:"required,excludesall=#/? "`
	Question string `yaml:"question" json:"question" validate:"required"`
	Answer   string `yaml:"answer" json:"answer" validate:"required"`
}

// Contact is the closing call to action.
type Contact struct {
	Heading string `yaml:"heading" json:"heading"`
	Blurb   string `yaml:"blurb" json:"blurb"`
}

// FAQIDs returns the FAQ ids in page order.
func (s *Site) FAQIDs() []string {
	ids := make([]string, 0, len(s.FAQ))
	for _, item := range s.FAQ {
		ids = append(ids, item.ID)
	}
	return ids
}

// FAQByID looks up a FAQ item.
func (s *Site) FAQByID(id string) (FAQItem, bool) {
	for _, item := range s.FAQ {
		if item.ID == id {
			return item, true
		}
	}
	return FAQItem{}, false
}

// FooterSocials returns the links flagged for the footer.
func (s *Site) FooterSocials() []SocialLink {
	var out []SocialLink
	for _, l := range s.Socials {
		if l.Footer {
			out = append(out, l)
		}
	}
	return out
}

// Social looks up a social link by label, case-sensitively. It returns nil
// when the site has no such link.
func (s *Site) Social(label string) *SocialLink {
	for i := range s.Socials {
		if s.Socials[i].Label == label {
			return &s.Socials[i]
		}
	}
	return nil
}
