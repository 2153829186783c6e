package types

// AnalyzeRequest is the inbound body of POST /api/analyze.
type AnalyzeRequest struct {
	Skills           []string `json:"skills" validate:"required,min=1,dive,required"`
	Hobbies          []string `json:"hobbies" validate:"required,min=1,dive,required"`
	Occupation       string   `json:"occupation" validate:"required"`
	TwitterUsername  string   `json:"twitterUsername,omitempty"`
	LinkedinUsername string   `json:"linkedinUsername,omitempty"`
	UserID           string   `json:"userId,omitempty" validate:"omitempty,uuid"`
}

// Attributes extracts the analysis input from the request.
func (r *AnalyzeRequest) Attributes() UserAttributes {
	return UserAttributes{
		Skills:     r.Skills,
		Hobbies:    r.Hobbies,
		Occupation: r.Occupation,
	}
}
