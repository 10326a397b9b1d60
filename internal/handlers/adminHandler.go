package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	models "trafficmaster/internal/models"
	"trafficmaster/internal/store"
	utility "trafficmaster/internal/utility"
)

var validate = validator.New()

// HashPassword is used to encrypt the password before it is stored in the DB.
func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Panic(err)
	}

	return string(bytes)
}

// VerifyPassword checks the input password against the hash stored in the DB.
func VerifyPassword(providedPassword string, hashedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
	return err == nil
}

type AdminHandler struct {
	admins store.AdminStore
	tokens *utility.TokenManager
}

func NewAdminHandler(admins store.AdminStore, tokens *utility.TokenManager) *AdminHandler {
	return &AdminHandler{admins: admins, tokens: tokens}
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Fields not valid")
		return
	}

	admin, err := h.admins.FindByUsername(ctx, req.Username)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Admin not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if !VerifyPassword(req.Password, admin.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := h.tokens.GenerateAdminToken(admin.Username)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var req models.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Fields not valid")
		return
	}

	// Check-then-insert; two concurrent creates for one username can race.
	_, err := h.admins.FindByUsername(ctx, req.Username)
	if err == nil {
		respondError(w, http.StatusBadRequest, "Admin already exists")
		return
	}
	if err != store.ErrNotFound {
		respondError(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	admin := &models.Admin{
		ID:       primitive.NewObjectID(),
		Username: req.Username,
		Password: HashPassword(req.Password),
		Role:     req.Role,
	}

	insertResult, err := h.admins.Insert(ctx, admin)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	respondJSON(w, http.StatusOK, insertResult)
}

func (h *AdminHandler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	admins, err := h.admins.All(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve admins")
		return
	}

	respondJSON(w, http.StatusOK, admins)
}

func (h *AdminHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete admin")
		return
	}

	// Deleting an unknown id is a success with a zero-effect result.
	deleteResult, err := h.admins.Delete(ctx, id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete admin")
		return
	}

	respondJSON(w, http.StatusOK, deleteResult)
}

func (h *AdminHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var req models.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Fields not valid")
		return
	}

	// An unknown username matches nothing and still reports success.
	if _, err := h.admins.SetPassword(ctx, req.Username, HashPassword(req.NewPassword)); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// ForgotPassword resets a password without any prior authentication. This
// mirrors the upstream contract; gate it behind out-of-band verification
// before exposing it anywhere untrusted.
func (h *AdminHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var req models.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Fields not valid")
		return
	}

	if _, err := h.admins.FindByUsername(ctx, req.Username); err != nil {
		if err == store.ErrNotFound {
			respondError(w, http.StatusNotFound, "Admin not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	if _, err := h.admins.SetPassword(ctx, req.Username, HashPassword(req.NewPassword)); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}
