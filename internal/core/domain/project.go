package domain

// ProjectStatus represents the lifecycle state of a project.
//
// The nominal order is Upcoming → InProgress → Completed, but any status may
// be assigned from any other one; no transition table is enforced.
type ProjectStatus string

const (
	StatusUpcoming   ProjectStatus = "UPCOMING"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusCompleted  ProjectStatus = "COMPLETED"
)

// ProjectStatuses lists every status in nominal lifecycle order.
var ProjectStatuses = []ProjectStatus{StatusUpcoming, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Client is the customer a project is built for. It is owned by exactly one
// project and is not indexed on its own.
type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ClientDraft carries client contact details before an id is minted.
type ClientDraft struct {
	Name  string
	Email string
	Phone string
}

// NewClient mints a client id from the global client counter.
func NewClient(ids IDGenerator, draft ClientDraft) Client {
	return Client{
		ID:    ids.NextClientID(),
		Name:  draft.Name,
		Email: draft.Email,
		Phone: draft.Phone,
	}
}

// ProjectDraft carries everything needed to mint a project.
type ProjectDraft struct {
	Name        string
	Description string
	StartDate   Date
	EndDate     Date
	Status      ProjectStatus
	Client      Client
	BuilderID   string
	ManagerID   string
}

// Project is the aggregate root tying a client to one manager and one builder.
// AssignedBuilder and AssignedManager are user ids; they are not checked
// against the user store and may dangle.
type Project struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	StartDate       Date          `json:"start_date"`
	EndDate         Date          `json:"end_date"`
	Status          ProjectStatus `json:"status"`
	Client          Client        `json:"client"`
	AssignedBuilder string        `json:"assigned_builder"`
	AssignedManager string        `json:"assigned_manager"`
}

// NewProject mints a project id and embeds the draft's client by value.
func NewProject(ids IDGenerator, draft ProjectDraft) *Project {
	return &Project{
		ID:              ids.NextProjectID(),
		Name:            draft.Name,
		Description:     draft.Description,
		StartDate:       draft.StartDate,
		EndDate:         draft.EndDate,
		Status:          draft.Status,
		Client:          draft.Client,
		AssignedBuilder: draft.BuilderID,
		AssignedManager: draft.ManagerID,
	}
}

// Clone returns a copy that shares no memory with p.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
