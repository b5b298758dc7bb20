package models

// Todo is a single checkable item owned by exactly one user. Time is a
// free-form label and may be absent. IsChecked is persisted as 0/1 and
// surfaced as a boolean on the wire.
type Todo struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Time      *string `json:"time"`
	IsChecked bool    `json:"isChecked"`
	UserID    int64   `json:"userId"`
}
