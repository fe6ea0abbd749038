package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is one logged activity block within a day.
// Tags are informational only and never feed aggregation math.
type Session struct {
	Category    string   `json:"category" bson:"category"`
	SubCategory string   `json:"subCategory" bson:"subCategory"`
	Tags        []string `json:"tags" bson:"tags"`
	Focused     float64  `json:"focused" bson:"focused"`
	Assigned    float64  `json:"assigned" bson:"assigned"`
}

// Entry is one calendar day's log for one owner.
// Date is a YYYY-MM-DD string in the canonical time zone; it is compared
// as a string, never as a timestamp.
type Entry struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Owner    string             `json:"owner" bson:"owner"`
	Date     string             `json:"date" bson:"date"`
	Sessions []Session          `json:"sessions" bson:"sessions"`
	Notes    string             `json:"notes" bson:"notes"`
	Rev      int64              `json:"-" bson:"rev"`
}

// TotalFocused sums focused hours across all sessions.
func (e *Entry) TotalFocused() float64 {
	var total float64
	for _, s := range e.Sessions {
		total += s.Focused
	}
	return total
}

// TotalAssigned sums assigned hours across all sessions.
func (e *Entry) TotalAssigned() float64 {
	var total float64
	for _, s := range e.Sessions {
		total += s.Assigned
	}
	return total
}

// NormalizeSessions replaces nil tag slices so sessions always marshal
// with a "tags" array.
func NormalizeSessions(sessions []Session) []Session {
	out := make([]Session, len(sessions))
	copy(out, sessions)
	for i := range out {
		if out[i].Tags == nil {
			out[i].Tags = []string{}
		}
	}
	return out
}

// MergeSessions combines incoming sessions into an existing list.
// A session matching an existing one by exact (category, subCategory)
// equality adds its focused hours to it; anything else is appended.
// Assigned hours of an existing session are left as stored.
// Neither input slice is mutated.
func MergeSessions(existing, incoming []Session) []Session {
	merged := NormalizeSessions(existing)
	for _, in := range incoming {
		idx := -1
		for i, s := range merged {
			if s.Category == in.Category && s.SubCategory == in.SubCategory {
				idx = i
				break
			}
		}
		if idx >= 0 {
			merged[idx].Focused += in.Focused
		} else {
			if in.Tags == nil {
				in.Tags = []string{}
			}
			merged = append(merged, in)
		}
	}
	return merged
}
