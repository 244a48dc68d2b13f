package settings

import "time"

// Settings is the site-wide singleton configuration document.
type Settings struct {
	General    General   `json:"general" bson:"general"`
	SEO        SEO       `json:"seo" bson:"seo"`
	Appearance Appearance `json:"appearance" bson:"appearance"`
	Advanced   Advanced  `json:"advanced" bson:"advanced"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

type General struct {
	SiteName string `json:"siteName,omitempty" bson:"siteName,omitempty"`
	Tagline  string `json:"tagline,omitempty" bson:"tagline,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
}

type SEO struct {
	MetaTitle       string `json:"metaTitle,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	Keywords        string `json:"keywords,omitempty" bson:"keywords,omitempty"`
	OGImage         string `json:"ogImage,omitempty" bson:"ogImage,omitempty"`
}

type Appearance struct {
	PrimaryColor string `json:"primaryColor,omitempty" bson:"primaryColor,omitempty"`
	AccentColor  string `json:"accentColor,omitempty" bson:"accentColor,omitempty"`
	FontFamily   string `json:"fontFamily,omitempty" bson:"fontFamily,omitempty"`
}

type Advanced struct {
	CustomCSS         string `json:"customCss,omitempty" bson:"customCss,omitempty"`
	CustomJS          string `json:"customJs,omitempty" bson:"customJs,omitempty"`
	GoogleAnalyticsID string `json:"googleAnalyticsId,omitempty" bson:"googleAnalyticsId,omitempty"`
}
