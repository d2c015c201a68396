package components

import "github.com/Veraticus/dataact/internal/model"

// CompanySelectedMsg requests the details overlay for a company.
type CompanySelectedMsg struct {
	Company model.Company
}

// BackToListMsg closes the details overlay.
type BackToListMsg struct{}

// SearchChangedMsg is sent while the search term is edited.
type SearchChangedMsg struct {
	Term string
}
