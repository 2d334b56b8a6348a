package domain

type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
)

// Project is a piece of work categorized by window style; feeds the
// popular-styles leaderboard on the dashboard.
type Project struct {
	ID          int64         `json:"id"`
	WindowStyle string        `json:"window_style"`
	Status      ProjectStatus `json:"status"`
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectInProgress, ProjectCompleted:
		return true
	}
	return false
}
