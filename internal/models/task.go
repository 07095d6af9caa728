package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Priority is the urgency level assigned to a task.
type Priority string

const (
	PriorityHigh Priority = "HIGH"
	PriorityMid  Priority = "MID"
	PriorityLow  Priority = "LOW"
)

// ParsePriority converts a label to a Priority, rejecting anything outside
// the known set.
func ParsePriority(label string) (Priority, error) {
	switch p := Priority(label); p {
	case PriorityHigh, PriorityMid, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", label)
}

// UnmarshalJSON decodes a priority label, failing on unrecognized values so
// a document with an invalid priority is caught at decode time.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	parsed, err := ParsePriority(label)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Status tracks a task's lifecycle. Transitions are one-way: a task moves
// from PENDING to COMPLETED and is never reopened.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// ParseStatus converts a label to a Status, rejecting anything outside the
// known set.
func ParseStatus(label string) (Status, error) {
	switch s := Status(label); s {
	case StatusPending, StatusCompleted:
		return s, nil
	}
	return "", fmt.Errorf("unknown status %q", label)
}

// UnmarshalJSON decodes a status label, failing on unrecognized values.
func (s *Status) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	parsed, err := ParseStatus(label)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Task represents a single to-do item in the tasks document.
//
// ID and Owner are immutable after creation. Timestamps serialize as RFC 3339
// strings in the document.
type Task struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Title     string    `json:"title" validate:"required"`
	Details   string    `json:"details" validate:"required"`
	Priority  Priority  `json:"priority" validate:"required,oneof=HIGH MID LOW"`
	Status    Status    `json:"status" validate:"required,oneof=PENDING COMPLETED"`
	Owner     string    `json:"owner" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
