package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"focusos/analytics"
	"focusos/models"
	"focusos/storage"
)

// LogFocusRequest is the JSON body for logging sessions against a day.
type LogFocusRequest struct {
	Date     string           `json:"date"`
	Sessions []models.Session `json:"sessions"`
	Notes    string           `json:"notes"`
}

// HandleLogFocus upserts the day's entry, merging sessions that match
// an existing (category, subCategory) pair. An omitted date means
// today in the canonical zone.
func (d *Deps) HandleLogFocus(w http.ResponseWriter, r *http.Request) {
	var req LogFocusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == "" {
		req.Date = d.Today().Format(analytics.DateFormat)
	} else if _, err := time.Parse(analytics.DateFormat, req.Date); err != nil {
		jsonError(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if len(req.Sessions) == 0 {
		jsonError(w, "Missing required field (sessions)", http.StatusBadRequest)
		return
	}

	entry, err := d.Entries.UpsertMerge(r.Context(), owner(r), req.Date, req.Sessions, req.Notes)
	if err != nil {
		log.Printf("focus log failed: %v", err)
		jsonError(w, "Failed to save entry", http.StatusInternalServerError)
		return
	}
	jsonOK(w, entry)
}

// HandleListFocus returns the owner's full history, newest day first.
func (d *Deps) HandleListFocus(w http.ResponseWriter, r *http.Request) {
	entries, err := d.Entries.ListAll(r.Context(), owner(r))
	if err != nil {
		log.Printf("focus list failed: %v", err)
		jsonError(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	jsonOK(w, entries)
}

// ReplaceFocusRequest is the JSON body for a manual correction.
type ReplaceFocusRequest struct {
	Sessions []models.Session `json:"sessions"`
	Notes    string           `json:"notes"`
}

// HandleReplaceFocus overwrites an entry's sessions and notes. Unlike
// the merge endpoint this is a full replacement, chosen deliberately
// by the caller.
func (d *Deps) HandleReplaceFocus(w http.ResponseWriter, r *http.Request) {
	var req ReplaceFocusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := d.Entries.Replace(r.Context(), owner(r), r.PathValue("entryId"), req.Sessions, req.Notes)
	if errors.Is(err, storage.ErrNotFound) {
		jsonError(w, "Log not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("focus replace failed: %v", err)
		jsonError(w, "Failed to update entry", http.StatusInternalServerError)
		return
	}
	jsonOK(w, entry)
}

// HandleDeleteFocus removes an entire day's log.
func (d *Deps) HandleDeleteFocus(w http.ResponseWriter, r *http.Request) {
	err := d.Entries.DeleteByID(r.Context(), owner(r), r.PathValue("entryId"))
	if errors.Is(err, storage.ErrNotFound) {
		jsonError(w, "Log not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("focus delete failed: %v", err)
		jsonError(w, "Failed to delete entry", http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]string{"msg": "Entry removed"})
}
