package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Account roles. An email belongs to exactly one of the two tables.
const (
	RoleFreelancer = "freelancer"
	RoleRecruiter  = "recruiter"
)

// Job statuses.
const (
	JobStatusActive    = "active"
	JobStatusCompleted = "completed"
	JobStatusCancelled = "cancelled"
)

// Application statuses. Accepted and rejected are terminal in intended use,
// but nothing below blocks a later rewrite (see LifecycleService).
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Project statuses used inside a freelancer's activeProjects entries.
const (
	ProjectStatusInProgress = "In Progress"
	ProjectStatusCompleted  = "Completed"
)

type Freelancer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'freelancer'" json:"role"`
	Location string `json:"location"`
	Bio      string `gorm:"type:text" json:"bio"`

	Skills        pq.StringArray `gorm:"type:text[]" json:"skills"`
	Rating        float64        `json:"rating"`
	TotalEarnings string         `json:"totalEarnings"`
	HoursWorked   int            `json:"hoursWorked"`

	ActiveProjects  ProjectList        `gorm:"type:jsonb" json:"activeProjects"`
	RecommendedJobs RecommendationList `gorm:"type:jsonb" json:"recommendedJobs"`
}

type Recruiter struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'recruiter'" json:"role"`
	Location string `json:"location"`
	Bio      string `gorm:"type:text" json:"bio"`

	Company    string `json:"company"`
	Experience string `json:"experience"`

	TotalListings   int         `json:"totalListings"`
	SuccessfulHires int         `json:"successfulHires"`
	ActiveListings  ListingList `gorm:"type:jsonb" json:"activeListings"`
}

type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RecruiterID   uuid.UUID `gorm:"type:uuid;not null;index" json:"recruiterId"`
	RecruiterName string    `json:"recruiterName"`

	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	Company        string         `gorm:"not null" json:"company"`
	Location       string         `json:"location"`
	SkillsRequired pq.StringArray `gorm:"type:text[]" json:"skillsRequired"`

	// Budget and deadline are free text, not validated amounts or dates.
	Budget   string `gorm:"not null" json:"budget"`
	Deadline string `gorm:"not null" json:"deadline"`

	Status string `gorm:"not null;default:'active'" json:"status"`

	// Ids of the applications received for this job.
	Applications UUIDList `gorm:"type:jsonb" json:"applications"`
}

// Application is deliberately not foreign-keyed to Job: deleting a job
// leaves its applications behind, and listing code must tolerate that.
type Application struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID        uuid.UUID `gorm:"type:uuid;not null;index" json:"jobId"`
	FreelancerID uuid.UUID `gorm:"type:uuid;not null;index" json:"freelancerId"`
	CoverLetter  string    `gorm:"type:text" json:"coverLetter"`
	Status       string    `gorm:"not null;default:'pending'" json:"status"`
	AppliedAt    time.Time `json:"appliedAt"`
}

func (f *Freelancer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (r *Recruiter) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
