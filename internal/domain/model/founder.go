package model

// NotFound is the designated sentinel used in place of absent contact data.
// The front-end renders it verbatim, so every optional field carries either a
// real value or this exact string, never an empty one.
const NotFound = "Not Found"

type ResultStatus string

const (
	ResultStatusCompleted ResultStatus = "completed"
	ResultStatusError     ResultStatus = "error"
)

// Founder is one person associated with a company, as assembled by the
// enrichment pipeline.
type Founder struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	LinkedInURL string `json:"linkedinUrl"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// SentinelFounder is the placeholder appended when enrichment fails for a
// company, so downstream consumers never see a gap in shape.
func SentinelFounder() Founder {
	return Founder{
		Name:        NotFound,
		Role:        NotFound,
		LinkedInURL: NotFound,
		Email:       NotFound,
		Phone:       NotFound,
	}
}

// FounderLead is a name/role pair produced by the discovery step, before
// profile and contact lookup fill in the rest.
type FounderLead struct {
	Name string
	Role string
}

// CompanyResult is one entry in a job's results, in submission order.
type CompanyResult struct {
	CompanyName  string       `json:"companyName"`
	FoundersData []Founder    `json:"foundersData"`
	Status       ResultStatus `json:"status"`
}

func (r CompanyResult) clone() CompanyResult {
	cp := r
	cp.FoundersData = append([]Founder(nil), r.FoundersData...)
	return cp
}
