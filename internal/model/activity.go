package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCategory = errors.New("model: invalid activity category")
	ErrInvalidAction   = errors.New("model: invalid history action")
)

type Category string

const (
	CategoryPhysical  Category = "physical"
	CategoryMental    Category = "mental"
	CategoryCognitive Category = "cognitive"
	CategorySocial    Category = "social"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryPhysical, CategoryMental, CategoryCognitive, CategorySocial}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryPhysical, CategoryMental, CategoryCognitive, CategorySocial:
		return true
	default:
		return false
	}
}

func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

type Action string

const (
	ActionComplete Action = "complete"
	ActionSkip     Action = "skip"
)

func (a Action) IsValid() bool {
	return a == ActionComplete || a == ActionSkip
}

// Activity is a static catalog entry. Instances are immutable after load.
type Activity struct {
	ID              string   `json:"id" yaml:"id"`
	Category        Category `json:"category" yaml:"category"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	DurationSeconds int      `json:"durationSeconds" yaml:"durationSeconds"`
	VideoRef        string   `json:"videoRef,omitempty" yaml:"videoRef,omitempty"`
}

func (a Activity) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("model: activity id is required")
	}
	if !a.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, a.Category)
	}
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("model: activity title is required")
	}
	if a.DurationSeconds <= 0 {
		return errors.New("model: activity duration must be positive")
	}
	return nil
}

// CompletionEntry is one finished or skipped activity in the bounded history.
type CompletionEntry struct {
	ActivityID      string   `json:"activityId"`
	Category        Category `json:"category"`
	Title           string   `json:"title"`
	Timestamp       int64    `json:"timestamp"`
	DurationSeconds int      `json:"durationSeconds"`
	Action          Action   `json:"action"`
}

func (e CompletionEntry) Validate() error {
	if strings.TrimSpace(e.ActivityID) == "" {
		return errors.New("model: history activity id is required")
	}
	if !e.Action.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAction, e.Action)
	}
	if e.Timestamp <= 0 {
		return errors.New("model: history timestamp is required")
	}
	return nil
}
