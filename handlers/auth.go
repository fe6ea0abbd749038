package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"focusos/models"
	"focusos/storage"
)

// CredentialsRequest is the JSON body for register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleRegister creates an account and returns a session token.
func (d *Deps) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		jsonError(w, "Missing required fields (username, password)", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	user, err := d.Users.Create(r.Context(), req.Username, string(hash))
	if errors.Is(err, storage.ErrUserExists) {
		jsonError(w, "User already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("register failed: %v", err)
		jsonError(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	jsonOK(w, map[string]string{"token": d.Tokens.Issue(user.ID.Hex())})
}

// HandleLogin verifies credentials and returns a session token.
func (d *Deps) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := d.Users.ByUsername(r.Context(), req.Username)
	if errors.Is(err, storage.ErrUserNotFound) {
		jsonError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("login failed: %v", err)
		jsonError(w, "Server error", http.StatusInternalServerError)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		jsonError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	jsonOK(w, map[string]string{"token": d.Tokens.Issue(user.ID.Hex())})
}

// HandleCurrentUser returns the authenticated user, without the
// password hash.
func (d *Deps) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := d.Users.ByID(r.Context(), owner(r))
	if err != nil {
		jsonError(w, "User not found", http.StatusNotFound)
		return
	}
	jsonOK(w, user)
}

// HandleUpdateTracks replaces the owner's track list.
func (d *Deps) HandleUpdateTracks(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tracks []models.Track `json:"tracks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Tracks == nil {
		req.Tracks = []models.Track{}
	}

	if err := d.Users.UpdateTracks(r.Context(), owner(r), req.Tracks); err != nil {
		jsonError(w, "Failed to update tracks", http.StatusInternalServerError)
		return
	}
	jsonOK(w, req.Tracks)
}

// HandleUpdateTodos replaces the owner's todo list.
func (d *Deps) HandleUpdateTodos(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Todos []models.Todo `json:"todos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Todos == nil {
		req.Todos = []models.Todo{}
	}

	if err := d.Users.UpdateTodos(r.Context(), owner(r), req.Todos); err != nil {
		jsonError(w, "Failed to update todos", http.StatusInternalServerError)
		return
	}
	jsonOK(w, req.Todos)
}
