package history

import "time"

// Run is the summary of one completed extraction run
type Run struct {
	ID        string    `json:"id"`
	Client    string    `json:"client"`
	Folder    string    `json:"folder"`
	Output    string    `json:"output"`
	Processed int       `json:"processed"`
	Included  int       `json:"included"`
	WithTotal int       `json:"with_total"`
	CreatedAt time.Time `json:"created_at"`
}
