package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "trafficmaster/internal/models"
	"trafficmaster/internal/store"
)

// ImageUploader stores an uploaded image and returns its public URL.
type ImageUploader interface {
	SaveImage(fileHeader *multipart.FileHeader, name string) (string, error)
}

type QuestionHandler struct {
	questions store.QuestionStore
	images    ImageUploader
}

func NewQuestionHandler(questions store.QuestionStore, images ImageUploader) *QuestionHandler {
	return &QuestionHandler{questions: questions, images: images}
}

var optionIndexPattern = regexp.MustCompile(`\d+`)

// collectOptions rebuilds the ordered option list from indexed request fields
// like "options[2]". Order comes from the embedded index, never from field
// arrival order.
func collectOptions(body map[string]interface{}) []string {
	type indexedOption struct {
		index int
		value string
	}

	indexed := []indexedOption{}
	for key, raw := range body {
		if !strings.HasPrefix(key, "options[") {
			continue
		}
		index, err := strconv.Atoi(optionIndexPattern.FindString(key))
		if err != nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			value = fmt.Sprint(raw)
		}
		indexed = append(indexed, indexedOption{index: index, value: value})
	}

	sort.Slice(indexed, func(i, j int) bool { return indexed[i].index < indexed[j].index })

	options := make([]string, 0, len(indexed))
	for _, option := range indexed {
		options = append(options, option.value)
	}
	return options
}

func stringField(body map[string]interface{}, key string) string {
	if value, ok := body[key].(string); ok {
		return value
	}
	return ""
}

func (h *QuestionHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	question := &models.Question{
		ID:       primitive.NewObjectID(),
		Question: stringField(body, "question"),
		Options:  collectOptions(body),
		Answer:   body["correctOption"],
		Topics:   stringField(body, "topic"),
		Image:    stringField(body, "imageUrl"),
	}

	insertResult, err := h.questions.Insert(ctx, question)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to add question")
		return
	}

	respondJSON(w, http.StatusOK, insertResult)
}

func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	var req models.UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// An unknown id matches nothing; the zero-match result is still a success.
	updateResult, err := h.questions.Update(ctx, id, req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	respondJSON(w, http.StatusOK, updateResult)
}

func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	deleteResult, err := h.questions.Delete(ctx, id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	respondJSON(w, http.StatusOK, deleteResult)
}

func (h *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	questions, err := h.questions.All(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve questions")
		return
	}

	respondJSON(w, http.StatusOK, questions)
}

// UploadImage stores an illustrative image and returns the URL to use as the
// imageUrl field when adding a question.
func (h *QuestionHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "No image provided")
		return
	}

	imageName := primitive.NewObjectID().Hex()
	imageURL, err := h.images.SaveImage(files[0], imageName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"imageUrl": imageURL})
}
