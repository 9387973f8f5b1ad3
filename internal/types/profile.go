// Package types provides type definitions for the CV data graph consumed by the document engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile holds the identity and contact attributes of the CV owner.
// Every field is optional; an absent field suppresses its fragment in the
// rendered output and is never an error.
type Profile struct {
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Photo       string `json:"photo,omitempty"` // base64 data URI or URL
	LinkedInURL string `json:"linkedin_url,omitempty"`
}
