package legacy

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves the three legacy endpoints. Response shapes and messages
// match what the old clients expect byte for byte.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes mounts the legacy endpoints on a fresh chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/signup", h.signup)
	r.Post("/signin", h.signin)
	r.Post("/addTenant", h.addTenant)
	return r
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // G117: legacy credential DTO
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // G117: legacy credential DTO
}

type userResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	users, err := h.store.loadUsers()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to load users")
		return
	}

	for _, u := range users {
		if u.Email == req.Email {
			writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
	}

	users = append(users, User{Name: req.Name, Email: req.Email, Password: req.Password})
	if err := h.store.saveUsers(users); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to save users")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Signup successful",
		"user":    userResponse{Name: req.Name, Email: req.Email},
	})
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	users, err := h.store.loadUsers()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to load users")
		return
	}

	for _, u := range users {
		if u.Email == req.Email && u.Password == req.Password {
			writeJSON(w, http.StatusOK, map[string]any{
				"message": "Signin successful",
				"user":    userResponse{Name: u.Name, Email: u.Email},
			})
			return
		}
	}

	writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
}

func (h *Handler) addTenant(w http.ResponseWriter, r *http.Request) {
	var req Tenant
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required tenant information.")
		return
	}

	if req.Name == "" || req.Address == "" || req.LeaseStart == "" || req.LeaseEnd == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required tenant information.")
		return
	}

	// Old clients sometimes omitted the field entirely; stored records always
	// carry an array.
	if req.UtilitiesIncluded == nil {
		req.UtilitiesIncluded = []string{}
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	tenants, err := h.store.loadTenants()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to load tenants")
		return
	}

	tenants = append(tenants, req)
	if err := h.store.saveTenants(tenants); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to save tenants")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Tenant added successfully",
		"tenant":  req,
	})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("legacy: failed to encode response")
	}
}
