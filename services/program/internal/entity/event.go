package entity

// Event is one celebration on the wedding weekend, with its venue details
// and a timed schedule of activities.
type Event struct {
	ID       int            `json:"id"`
	Title    string         `json:"title"`
	Date     string         `json:"date"`
	Venue    string         `json:"venue"`
	Location string         `json:"location"`
	MapURL   string         `json:"map_url"`
	Schedule []ScheduleItem `json:"schedule"`
}

// ScheduleItem is one activity within an event's program.
type ScheduleItem struct {
	ID          int    `json:"id"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
