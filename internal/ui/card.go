package ui

import (
	"strconv"
	"strings"

	"ghprofile/internal/github"
	"ghprofile/internal/ui/textutil"
)

const (
	errorText   = "Something went wrong..."
	loadingText = "Loading..."
	emptyText   = "No profile loaded yet. Type a username and press enter."
)

// labelWidth is the column width of card field labels.
const labelWidth = 11

// cardChrome is the horizontal space the card border and padding take.
const cardChrome = 6

type cardField struct {
	label string
	value string
	link  bool
}

// cardFields lists the fields shown on the card, in display order.
// Optional fields are only included when the payload carries them.
func cardFields(p *github.UserProfile) []cardField {
	fields := []cardField{
		{label: "ID", value: p.IDString()},
		{label: "Location", value: p.Location},
		{label: "Avatar", value: p.AvatarURL, link: true},
		{label: "Profile", value: p.HTMLURL, link: true},
		{label: "Repos", value: p.ReposURL, link: true},
		{label: "Followers", value: p.FollowersString()},
		{label: "Following", value: p.FollowingString()},
	}
	if p.PublicRepos > 0 {
		fields = append(fields, cardField{label: "Public", value: strconv.Itoa(p.PublicRepos) + " repos"})
	}
	return fields
}

// renderCard renders the profile card. width is the terminal width, 0 if unknown.
// A nil profile renders the empty state.
func renderCard(p *github.UserProfile, width int) string {
	if p == nil {
		return Styles.Empty.Render(emptyText)
	}

	valueWidth := 0
	if width > 0 {
		valueWidth = max(width-cardChrome-labelWidth, 1)
	}
	fit := func(s string) string {
		if valueWidth == 0 {
			return s
		}
		return textutil.Truncate(s, valueWidth)
	}

	var b strings.Builder
	header := p.Login
	if p.Name != "" {
		header += "  " + p.Name
	}
	b.WriteString(Styles.Login.Render(fit(header)))
	if p.Bio != "" {
		b.WriteString("\n" + Styles.Hint.Render(fit(p.Bio)))
	}
	b.WriteString("\n")

	for _, f := range cardFields(p) {
		style := Styles.Value
		if f.link {
			style = Styles.Link
		}
		b.WriteString("\n")
		b.WriteString(Styles.Label.Render(textutil.PadRightVisual(f.label+":", labelWidth)))
		b.WriteString(style.Render(fit(f.value)))
	}
	return Styles.Card.Render(b.String())
}
