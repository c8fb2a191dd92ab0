package models

// Task is a single to-do entry owned by one user. Date is the creation
// date as a display string ("January 02, 2006") and never changes after
// creation, even when the task is renamed.
type Task struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	UserID int64  `json:"userId"`
}
