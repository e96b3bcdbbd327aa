package dto

// LogRequest is the body of log create and update requests. Unknown fields such as
// "user" are ignored; ownership always comes from the session.
type LogRequest struct {
	Date        Optional[string]   `json:"date"`
	Hours       FlexFloat          `json:"hours"`
	Description Optional[string]   `json:"description"`
	Project     Optional[string]   `json:"project"`
	Tags        Optional[[]string] `json:"tags"`
	Mood        Optional[string]   `json:"mood"`
}

// ProjectRequest is the body of project create and update requests.
type ProjectRequest struct {
	Name           Optional[string]   `json:"name"`
	Description    Optional[string]   `json:"description"`
	TechStack      Optional[[]string] `json:"techStack"`
	Status         Optional[string]   `json:"status"`
	StartDate      Optional[string]   `json:"startDate"`
	EstimatedHours Optional[float64]  `json:"estimatedHours"`
	ActualHours    Optional[float64]  `json:"actualHours"`
}

// SkillRequest is the body of skill create and update requests.
type SkillRequest struct {
	Name     Optional[string] `json:"name"`
	Level    Optional[int]    `json:"level"`
	Category Optional[string] `json:"category"`
}
