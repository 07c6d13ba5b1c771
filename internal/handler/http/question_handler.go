// Package httphandler exposes the board's use cases over HTTP.
package httphandler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	participationapp "questboard/internal/application/participation"
	questionapp "questboard/internal/application/question"
	"questboard/internal/domain/question"
	"questboard/internal/domain/uuid"
	"questboard/internal/infrastructure/httpserver"
	"questboard/internal/middleware"
)

// QuestionRequest carries the question form fields for create and update.
type QuestionRequest struct {
	Title                string `json:"title"`
	Location             string `json:"location"`
	Starts               string `json:"starts"`
	Ends                 string `json:"ends"`
	StartsTime           string `json:"starts_time"`
	EndsTime             string `json:"ends_time"`
	EventDescription     string `json:"event_description"`
	OrganizerName        string `json:"organizer_name"`
	OrganizerDescription string `json:"organizer_description"`
	Price                string `json:"price"`
	EventType            string `json:"event_type"`
	EventTopic           string `json:"event_topic"`
}

func (r *QuestionRequest) details() question.Details {
	return question.Details{
		Title:                r.Title,
		Location:             r.Location,
		Starts:               r.Starts,
		Ends:                 r.Ends,
		StartsTime:           r.StartsTime,
		EndsTime:             r.EndsTime,
		EventDescription:     r.EventDescription,
		OrganizerName:        r.OrganizerName,
		OrganizerDescription: r.OrganizerDescription,
		Price:                r.Price,
		EventType:            r.EventType,
		EventTopic:           r.EventTopic,
	}
}

// AuthorResponse identifies the user behind a question or participation.
type AuthorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// QuestionResponse represents a question in API responses.
type QuestionResponse struct {
	ID                   string          `json:"id"`
	Author               *AuthorResponse `json:"author,omitempty"`
	Title                string          `json:"title"`
	Location             string          `json:"location"`
	Starts               string          `json:"starts"`
	Ends                 string          `json:"ends"`
	StartsTime           string          `json:"starts_time"`
	EndsTime             string          `json:"ends_time"`
	EventDescription     string          `json:"event_description"`
	OrganizerName        string          `json:"organizer_name"`
	OrganizerDescription string          `json:"organizer_description"`
	Price                string          `json:"price"`
	EventType            string          `json:"event_type"`
	EventTopic           string          `json:"event_topic"`
	NumLikes             int             `json:"num_likes"`
	NumParticipations    int             `json:"num_participations"`
	NumReads             int             `json:"num_reads"`
	CreatedAt            string          `json:"created_at"`
}

// ParticipationResponse represents a participation in API responses.
type ParticipationResponse struct {
	ID        string          `json:"id"`
	Author    *AuthorResponse `json:"author,omitempty"`
	Note      string          `json:"note"`
	Age       string          `json:"age"`
	Name      string          `json:"name"`
	Motive    string          `json:"motive"`
	CreatedAt string          `json:"created_at"`
}

// QuestionListResponse represents one page of the question listing.
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
	Term      string             `json:"term,omitempty"`
}

// QuestionShowResponse represents a question page: the question and its
// participations, authors resolved.
type QuestionShowResponse struct {
	Question       QuestionResponse        `json:"question"`
	Participations []ParticipationResponse `json:"participations"`
}

// ParticipationRequest carries the participation form fields.
type ParticipationRequest struct {
	Note   string `json:"note"`
	Age    string `json:"age"`
	Name   string `json:"name"`
	Motive string `json:"motive"`
}

// QuestionHandler handles question-related HTTP requests.
type QuestionHandler struct {
	listQuestions *questionapp.ListQuestionsUseCase
	showQuestion  *questionapp.ShowQuestionUseCase
	createQ       *questionapp.CreateQuestionUseCase
	updateQ       *questionapp.UpdateQuestionUseCase
	deleteQ       *questionapp.DeleteQuestionUseCase
	register      *participationapp.RegisterParticipationUseCase
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(
	listQuestions *questionapp.ListQuestionsUseCase,
	showQuestion *questionapp.ShowQuestionUseCase,
	createQ *questionapp.CreateQuestionUseCase,
	updateQ *questionapp.UpdateQuestionUseCase,
	deleteQ *questionapp.DeleteQuestionUseCase,
	register *participationapp.RegisterParticipationUseCase,
) *QuestionHandler {
	return &QuestionHandler{
		listQuestions: listQuestions,
		showQuestion:  showQuestion,
		createQ:       createQ,
		updateQ:       updateQ,
		deleteQ:       deleteQ,
		register:      register,
	}
}

// RegisterRoutes registers question routes with the router. Reading is
// public; every mutation sits behind the auth gate.
func (h *QuestionHandler) RegisterRoutes(r *httpserver.Router) {
	r.Public().GET("/questions", h.List)
	r.Public().GET("/questions/:id", h.Show)

	r.Auth().POST("/questions", h.Create)
	r.Auth().PUT("/questions/:id", h.Update)
	r.Auth().DELETE("/questions/:id", h.Delete)
	r.Auth().POST("/questions/:id/participations", h.RegisterParticipation)
}

// List handles GET /api/v1/questions.
// Supports ?term= for search and ?page=/&limit= for pagination.
func (h *QuestionHandler) List(c echo.Context) error {
	query := questionapp.ListQuestionsQuery{
		Term: c.QueryParam("term"),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		query.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		query.Limit = limit
	}

	result, err := h.listQuestions.Execute(c.Request().Context(), query)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	resp := QuestionListResponse{
		Questions: make([]QuestionResponse, 0, len(result.Questions)),
		Total:     result.TotalCount,
		Page:      result.Page,
		Limit:     result.Limit,
		Term:      result.Term,
	}
	for _, qa := range result.Questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(qa.Question, qa.Author))
	}
	return httpserver.RespondOK(c, resp)
}

// Show handles GET /api/v1/questions/:id.
// Displays the question and bumps its read counter.
func (h *QuestionHandler) Show(c echo.Context) error {
	questionID, err := uuid.ParseUUID(c.Param("id"))
	if err != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_QUESTION_ID", "invalid question ID format")
	}

	result, err := h.showQuestion.Execute(c.Request().Context(), questionapp.ShowQuestionQuery{
		QuestionID: questionID,
	})
	if err != nil {
		if errors.Is(err, questionapp.ErrQuestionNotFound) {
			return httpserver.RespondErrorFlash(c, err,
				httpserver.DangerFlash("Question is not found.", "/questions"))
		}
		return httpserver.RespondError(c, err)
	}

	resp := QuestionShowResponse{
		Question:       toQuestionResponse(result.Question, result.Author),
		Participations: make([]ParticipationResponse, 0, len(result.Participations)),
	}
	for _, pa := range result.Participations {
		resp.Participations = append(resp.Participations, ParticipationResponse{
			ID:        pa.Participation.ID().String(),
			Author:    toAuthorResponse(pa.Author),
			Note:      pa.Participation.Note(),
			Age:       pa.Participation.Age(),
			Name:      pa.Participation.Name(),
			Motive:    pa.Participation.Motive(),
			CreatedAt: pa.Participation.CreatedAt().Format(time.RFC3339),
		})
	}
	return httpserver.RespondOK(c, resp)
}

// Create handles POST /api/v1/questions.
func (h *QuestionHandler) Create(c echo.Context) error {
	var req QuestionRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
	}

	result, err := h.createQ.Execute(c.Request().Context(), questionapp.CreateQuestionCommand{
		AuthorID: middleware.GetUserID(c),
		Details:  req.details(),
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondWithFlash(c, http.StatusCreated,
		toQuestionResponse(result.Question, questionapp.Author{}),
		httpserver.SuccessFlash("New question has been posted.", "/questions"))
}

// Update handles PUT /api/v1/questions/:id.
func (h *QuestionHandler) Update(c echo.Context) error {
	questionID, err := uuid.ParseUUID(c.Param("id"))
	if err != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_QUESTION_ID", "invalid question ID format")
	}

	var req QuestionRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
	}

	result, err := h.updateQ.Execute(c.Request().Context(), questionapp.UpdateQuestionCommand{
		QuestionID:  questionID,
		RequestedBy: middleware.GetUserID(c),
		Details:     req.details(),
	})
	if err != nil {
		if errors.Is(err, questionapp.ErrQuestionNotFound) {
			return httpserver.RespondErrorFlash(c, err,
				httpserver.DangerFlash("Question is not found.", "/questions"))
		}
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondWithFlash(c, http.StatusOK,
		toQuestionResponse(result.Question, questionapp.Author{}),
		httpserver.SuccessFlash("Question has been updated.", "/questions/"+questionID.String()))
}

// Delete handles DELETE /api/v1/questions/:id.
func (h *QuestionHandler) Delete(c echo.Context) error {
	questionID, err := uuid.ParseUUID(c.Param("id"))
	if err != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_QUESTION_ID", "invalid question ID format")
	}

	err = h.deleteQ.Execute(c.Request().Context(), questionapp.DeleteQuestionCommand{
		QuestionID:  questionID,
		RequestedBy: middleware.GetUserID(c),
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondWithFlash(c, http.StatusOK, nil,
		httpserver.SuccessFlash("Question has been deleted.", "/questions"))
}

// RegisterParticipation handles POST /api/v1/questions/:id/participations.
func (h *QuestionHandler) RegisterParticipation(c echo.Context) error {
	questionID, err := uuid.ParseUUID(c.Param("id"))
	if err != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_QUESTION_ID", "invalid question ID format")
	}

	var req ParticipationRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
	}

	result, err := h.register.Execute(c.Request().Context(), participationapp.RegisterParticipationCommand{
		QuestionID: questionID,
		AuthorID:   middleware.GetUserID(c),
		Note:       req.Note,
		Age:        req.Age,
		Name:       req.Name,
		Motive:     req.Motive,
	})
	if err != nil {
		if errors.Is(err, questionapp.ErrQuestionNotFound) {
			return httpserver.RespondErrorFlash(c, err,
				httpserver.DangerFlash("Question is not found.", "/questions"))
		}
		return httpserver.RespondError(c, err)
	}

	p := result.Participation
	return httpserver.RespondWithFlash(c, http.StatusCreated,
		ParticipationResponse{
			ID:        p.ID().String(),
			Note:      p.Note(),
			Age:       p.Age(),
			Name:      p.Name(),
			Motive:    p.Motive(),
			CreatedAt: p.CreatedAt().Format(time.RFC3339),
		},
		httpserver.SuccessFlash("Your participation has been registered.", "/questions/"+questionID.String()))
}

func toAuthorResponse(author questionapp.Author) *AuthorResponse {
	if author.ID.IsZero() {
		return nil
	}
	return &AuthorResponse{
		ID:    author.ID.String(),
		Name:  author.Name,
		Email: author.Email,
	}
}

func toQuestionResponse(q *question.Question, author questionapp.Author) QuestionResponse {
	d := q.Details()
	return QuestionResponse{
		ID:                   q.ID().String(),
		Author:               toAuthorResponse(author),
		Title:                d.Title,
		Location:             d.Location,
		Starts:               d.Starts,
		Ends:                 d.Ends,
		StartsTime:           d.StartsTime,
		EndsTime:             d.EndsTime,
		EventDescription:     d.EventDescription,
		OrganizerName:        d.OrganizerName,
		OrganizerDescription: d.OrganizerDescription,
		Price:                d.Price,
		EventType:            d.EventType,
		EventTopic:           d.EventTopic,
		NumLikes:             q.NumLikes(),
		NumParticipations:    q.NumParticipations(),
		NumReads:             q.NumReads(),
		CreatedAt:            q.CreatedAt().Format(time.RFC3339),
	}
}
