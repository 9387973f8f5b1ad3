package types

// Color roles shared by every template palette. Individual templates may add
// extra roles (for example "skillBg" for skill tile backgrounds).
const (
	ColorHeader  = "header"
	ColorBody    = "body"
	ColorAccent  = "accent"
	ColorMuted   = "muted"
	ColorDivider = "divider"
	ColorLink    = "link"
	ColorSkillBg = "skillBg"
)

// Template is a named visual design: an identifier plus a fixed color palette.
// Customization.Colors may override palette entries key-by-key; the base
// palette itself is never mutated.
type Template struct {
	ID     string            `json:"id"`
	Colors map[string]string `json:"colors"`
}
