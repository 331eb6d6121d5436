package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// IconTag identifies a frontend icon. The set is closed on purpose: the
// dashboard offers a fixed palette and the SPA resolves tags with a switch,
// not a dynamic lookup.
type IconTag string

const (
	IconCode      IconTag = "code"
	IconBrush     IconTag = "brush"
	IconMobile    IconTag = "mobile"
	IconSearch    IconTag = "search"
	IconInstagram IconTag = "instagram"
	IconLinkedIn  IconTag = "linkedin"
	IconGitHub    IconTag = "github"
	IconEnvelope  IconTag = "envelope"
)

// Valid reports whether the tag belongs to the closed icon set.
func (t IconTag) Valid() bool {
	switch t {
	case IconCode, IconBrush, IconMobile, IconSearch,
		IconInstagram, IconLinkedIn, IconGitHub, IconEnvelope:
		return true
	}
	return false
}

// Profile is the hero block of the site.
type Profile struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Quote       string `json:"quote"`
	QuoteAuthor string `json:"quote_author"`
}

// EducationEntry is one line of the bio's education list.
type EducationEntry struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

// Bio is the long-form about section.
type Bio struct {
	About     string           `json:"about"`
	Mission   string           `json:"mission"`
	Education []EducationEntry `json:"education"`
}

// Service is one offered-services card.
type Service struct {
	ID    int64   `json:"id"`
	Icon  IconTag `json:"icon"`
	Title string  `json:"title"`
	Short string  `json:"short"`
	Desc  string  `json:"desc"`
}

// Social is one social-link entry. Hidden entries (Show=false) stay in the
// document but are not rendered and not fed to the chat persona.
type Social struct {
	ID       int64   `json:"id"`
	Platform string  `json:"platform"`
	URL      string  `json:"url"`
	Icon     IconTag `json:"icon"`
	Color    string  `json:"color"`
	Show     bool    `json:"show"`
	Image    string  `json:"image"`
}

// SiteContent is the single mutable content document driving the marketing
// page and the chat persona. It is stored as one JSONB value; last write
// wins.
type SiteContent struct {
	Profile  Profile   `json:"profile"`
	Bio      Bio       `json:"bio"`
	Services []Service `json:"services"`
	Socials  []Social  `json:"socials"`
}

// Value implements the driver.Valuer interface
func (c SiteContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface
func (c *SiteContent) Scan(value interface{}) error {
	if value == nil {
		*c = SiteContent{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported site content column type %T", value)
	}

	return json.Unmarshal(bytes, c)
}

// SiteContentRecord is the storage row wrapping the content document.
// The running application only ever touches the row with key "main".
type SiteContentRecord struct {
	Key       string      `gorm:"primarykey;size:64" json:"key"`
	Document  SiteContent `gorm:"type:jsonb;not null" json:"document"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SiteContentKey is the document key of the live content row.
const SiteContentKey = "main"
