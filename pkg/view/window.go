package view

import "github.com/user/riskdash/pkg/model"

// DefaultWindowSize caps the rendered table to protect the terminal from very
// large result sets unless the user explicitly asks for everything.
const DefaultWindowSize = 10

// Window truncates a post-sort list to the first DefaultWindowSize entries
// unless showAll is set. It never refetches or re-sorts.
func Window(findings []model.Finding, showAll bool) []model.Finding {
	if showAll || len(findings) <= DefaultWindowSize {
		return findings
	}
	return findings[:DefaultWindowSize]
}
