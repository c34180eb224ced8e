package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Denormalized snapshots embedded in account records as jsonb columns.
// They are patched by the operation that mutates the source entity; there is
// no background re-sync, so a failed write can leave them stale.

// ActiveProject is one entry of a freelancer's activeProjects cache.
// Its ID is the id of the accepted job.
type ActiveProject struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Client   string    `json:"client"`
	DueDate  string    `json:"dueDate"`
	Status   string    `json:"status"`
	Progress int       `json:"progress"`
}

// ActiveListing is one entry of a recruiter's activeListings cache.
type ActiveListing struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	SkillsRequired []string  `json:"skillsRequired"`
	Budget         string    `json:"budget"`
	Deadline       string    `json:"deadline"`
}

// RecommendedJob is one entry of a freelancer's recommendedJobs cache.
type RecommendedJob struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Company string    `json:"company"`
	Salary  string    `json:"salary"`
	Match   string    `json:"match"`
	Skills  []string  `json:"skills"`
}

type (
	ProjectList        []ActiveProject
	ListingList        []ActiveListing
	RecommendationList []RecommendedJob
	UUIDList           []uuid.UUID
)

func (l ProjectList) Value() (driver.Value, error)        { return jsonbValue(l) }
func (l ListingList) Value() (driver.Value, error)        { return jsonbValue(l) }
func (l RecommendationList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l UUIDList) Value() (driver.Value, error)           { return jsonbValue(l) }

func (l *ProjectList) Scan(src any) error        { return jsonbScan(src, l) }
func (l *ListingList) Scan(src any) error        { return jsonbScan(src, l) }
func (l *RecommendationList) Scan(src any) error { return jsonbScan(src, l) }
func (l *UUIDList) Scan(src any) error           { return jsonbScan(src, l) }

func jsonbValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	// A nil slice marshals to "null"; store an empty array instead so
	// clients always see a list.
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

func jsonbScan(src, dst any) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
