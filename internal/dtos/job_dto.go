package dtos

// JobRequest carries job fields for both create and update. Required-field
// checks live in the lifecycle service so violations surface as structured
// validation failures rather than bind errors.
type JobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	SkillsRequired []string `json:"skillsRequired"`
	Budget         string   `json:"budget"`
	Deadline       string   `json:"deadline"`

	// Update-only; ignored on create (new jobs always start active).
	Status string `json:"status"`
}

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ProjectProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}
