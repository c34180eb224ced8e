package dtos

// ProfileUpdateRequest covers both roles; role-specific fields are applied
// only where they make sense.
type ProfileUpdateRequest struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`

	// Freelancer-only.
	Skills []string `json:"skills"`

	// Recruiter-only.
	Company    string `json:"company"`
	Experience string `json:"experience"`
}
