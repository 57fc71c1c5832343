// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webui

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/pdiddy/pace-engine/internal/form"
	"github.com/pdiddy/pace-engine/internal/predictor"
	"github.com/pdiddy/pace-engine/pkg/types"
)

// validationMessage is the fixed message shown for any input that fails
// adapter validation. Individual field errors go to the log, not the page.
const validationMessage = "Please enter a valid VO2 max, a whole-number age, and a gender."

const resultPrefix = "Predicted 5K Time: "

// Handler holds the web UI's routes and logger.
type Handler struct {
	logger hclog.Logger
}

func NewHandler(logger hclog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Router wires the form page, the form submission, and the JSON API.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.FormPage).Methods(http.MethodGet)
	r.HandleFunc("/predict", h.PredictForm).Methods(http.MethodPost)
	r.HandleFunc("/api/predict", h.PredictJSON).Methods(http.MethodPost)
	return r
}

// FormPage renders the empty input form.
func (h *Handler) FormPage(rw http.ResponseWriter, r *http.Request) {
	renderPage(rw, pageData{})
}

// PredictForm handles a form submission and re-renders the page with
// either the prediction line or an error message.
func (h *Handler) PredictForm(rw http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	if err := r.ParseForm(); err != nil {
		h.logger.Error("malformed form body", "request_id", requestID, "error", err)
		rw.WriteHeader(http.StatusBadRequest)
		renderPage(rw, pageData{Message: validationMessage})
		return
	}

	data := pageData{
		VO2Max: r.PostFormValue("vo2max"),
		Gender: r.PostFormValue("gender"),
		Age:    r.PostFormValue("age"),
	}

	in, err := form.ParseInput(data.VO2Max, data.Gender, data.Age)
	if err != nil {
		h.logger.Info("rejected input", "request_id", requestID, "error", err)
		data.Message = validationMessage
		renderPage(rw, data)
		return
	}

	result, err := predictor.Predict(in)
	if err != nil {
		h.logger.Info("degenerate input", "request_id", requestID, "error", err)
		data.Message = validationMessage
		renderPage(rw, data)
		return
	}

	h.logger.Info("prediction served", "request_id", requestID,
		"vo2_max", in.VO2Max, "gender", string(in.Gender), "age", in.Age,
		"display", result.Display)
	data.Message = resultPrefix + result.Display
	renderPage(rw, data)
}

// predictRequest is the JSON API request body.
type predictRequest struct {
	VO2Max float64 `json:"vo2_max"`
	Gender string  `json:"gender"`
	Age    int     `json:"age"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// PredictJSON handles programmatic prediction requests. Invalid or
// degenerate inputs map to 400 with a JSON error body.
func (h *Handler) PredictJSON(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Add("Content-Type", "application/json")
	requestID := uuid.New().String()

	req := &predictRequest{}
	if err := fromJSON(req, r.Body); err != nil {
		h.logger.Error("malformed request body", "request_id", requestID, "error", err)
		rw.WriteHeader(http.StatusBadRequest)
		toJSON(errorResponse{Error: "malformed request body"}, rw)
		return
	}

	if req.Age < 0 {
		rw.WriteHeader(http.StatusBadRequest)
		toJSON(errorResponse{Error: "age must not be negative"}, rw)
		return
	}

	in := types.PredictionInput{
		VO2Max: req.VO2Max,
		Gender: types.ParseGender(req.Gender),
		Age:    req.Age,
	}

	result, err := predictor.Predict(in)
	if err != nil {
		var degenerate *predictor.DegenerateComputationError
		if errors.As(err, &degenerate) {
			h.logger.Info("degenerate input", "request_id", requestID, "error", err)
			rw.WriteHeader(http.StatusBadRequest)
			toJSON(errorResponse{Error: err.Error()}, rw)
			return
		}
		h.logger.Error("prediction failed", "request_id", requestID, "error", err)
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.logger.Info("prediction served", "request_id", requestID,
		"vo2_max", in.VO2Max, "gender", string(in.Gender), "age", in.Age,
		"display", result.Display)
	toJSON(result, rw)
}
