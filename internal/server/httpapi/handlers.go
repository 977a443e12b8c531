package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/godsapp/freizeit-server/internal/common"
	"github.com/godsapp/freizeit-server/internal/server/models"
	"github.com/godsapp/freizeit-server/internal/server/services"
)

// Multipart forms are buffered in memory up to this many bytes; larger parts
// spill to temp files.
const maxMultipartMemory = 32 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsLeader bool   `json:"is_leader"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "user not found")
		case errors.Is(err, common.ErrInvalidPassword):
			writeError(w, http.StatusUnauthorized, "invalid password")
		default:
			s.logger.Error(r.Context(), "login failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: res.Token,
		User: loginUser{
			ID:       res.User.ID,
			Username: res.User.Username,
			IsLeader: res.User.IsLeader,
		},
	})
}

type createUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	IsLeader  bool   `json:"is_leader"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	callerID, _ := UserIDFromContext(r.Context())

	user, err := s.users.Create(r.Context(), services.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
		IsLeader:  req.IsLeader,
		CreatedBy: callerID,
	})
	if err != nil {
		s.logger.Error(r.Context(), "creating user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": user.ID})
}

// formUpload wraps a multipart file part as an upload, or returns nil when
// the field is absent.
func formUpload(r *http.Request, field string) (*services.Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return &services.Upload{Filename: header.Filename, Body: file}, nil
}

func (s *Server) handleCreateFreizeit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	f := &models.Freizeit{
		Title:          r.FormValue("title"),
		Location:       r.FormValue("location"),
		AddressStreet:  r.FormValue("address_street"),
		AddressNumber:  r.FormValue("address_number"),
		AddressZip:     r.FormValue("address_zip"),
		AddressCity:    r.FormValue("address_city"),
		AddressCountry: r.FormValue("address_country"),
		StartDate:      r.FormValue("start_date"),
		EndDate:        r.FormValue("end_date"),
		Theme:          r.FormValue("theme"),
		ChurchName:     r.FormValue("church_name"),
		ChurchStreet:   r.FormValue("church_street"),
		ChurchNumber:   r.FormValue("church_number"),
		ChurchZip:      r.FormValue("church_zip"),
		ChurchCity:     r.FormValue("church_city"),
		ChurchCountry:  r.FormValue("church_country"),
	}
	if f.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	logo, err := formUpload(r, "logo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid logo upload")
		return
	}
	churchLogo, err := formUpload(r, "church_logo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid church logo upload")
		return
	}

	f, err = s.freizeiten.Create(r.Context(), f, logo, churchLogo)
	if err != nil {
		s.logger.Error(r.Context(), "creating freizeit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": f.ID})
}

type addParticipantRequest struct {
	UserID             int64  `json:"user_id"`
	FreizeitID         int64  `json:"freizeit_id"`
	Role               string `json:"role"`
	AddressStreet      string `json:"address_street"`
	AddressNumber      string `json:"address_number"`
	AddressZip         string `json:"address_zip"`
	AddressCity        string `json:"address_city"`
	AddressCountry     string `json:"address_country"`
	Phone              string `json:"phone"`
	Allergies          string `json:"allergies"`
	FoodPreferences    string `json:"food_preferences"`
	SwimmingPermission bool   `json:"swimming_permission"`
	Medications        string `json:"medications"`
	SpecialNeeds       string `json:"special_needs"`
	Motto              string `json:"motto"`
}

func (s *Server) handleAddParticipant(w http.ResponseWriter, r *http.Request) {
	var req addParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.FreizeitID == 0 {
		writeError(w, http.StatusBadRequest, "user_id and freizeit_id are required")
		return
	}

	p, err := s.participants.AddParticipant(r.Context(), &models.Participant{
		UserID:             req.UserID,
		FreizeitID:         req.FreizeitID,
		Role:               req.Role,
		AddressStreet:      req.AddressStreet,
		AddressNumber:      req.AddressNumber,
		AddressZip:         req.AddressZip,
		AddressCity:        req.AddressCity,
		AddressCountry:     req.AddressCountry,
		Phone:              req.Phone,
		Allergies:          req.Allergies,
		FoodPreferences:    req.FoodPreferences,
		SwimmingPermission: req.SwimmingPermission,
		Medications:        req.Medications,
		SpecialNeeds:       req.SpecialNeeds,
		Motto:              req.Motto,
	})
	if err != nil {
		s.logger.Error(r.Context(), "adding participant failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": p.ID})
}

type addGuardianRequest struct {
	UserFreizeitID int64  `json:"user_freizeit_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	AddressStreet  string `json:"address_street"`
	AddressNumber  string `json:"address_number"`
	AddressZip     string `json:"address_zip"`
	AddressCity    string `json:"address_city"`
	AddressCountry string `json:"address_country"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

func (s *Server) handleAddGuardian(w http.ResponseWriter, r *http.Request) {
	var req addGuardianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserFreizeitID == 0 {
		writeError(w, http.StatusBadRequest, "user_freizeit_id is required")
		return
	}

	g, err := s.participants.AddGuardian(r.Context(), &models.Guardian{
		UserFreizeitID: req.UserFreizeitID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		AddressStreet:  req.AddressStreet,
		AddressNumber:  req.AddressNumber,
		AddressZip:     req.AddressZip,
		AddressCity:    req.AddressCity,
		AddressCountry: req.AddressCountry,
		Phone:          req.Phone,
		Email:          req.Email,
	})
	if err != nil {
		s.logger.Error(r.Context(), "adding guardian failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": g.ID})
}

type addLeaderInfoRequest struct {
	UserFreizeitID int64  `json:"user_freizeit_id"`
	Church         string `json:"church"`
	Occupation     string `json:"occupation"`
}

func (s *Server) handleAddLeaderInfo(w http.ResponseWriter, r *http.Request) {
	var req addLeaderInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserFreizeitID == 0 {
		writeError(w, http.StatusBadRequest, "user_freizeit_id is required")
		return
	}

	li, err := s.participants.AddLeaderInfo(r.Context(), &models.LeaderInfo{
		UserFreizeitID: req.UserFreizeitID,
		Church:         req.Church,
		Occupation:     req.Occupation,
	})
	if err != nil {
		s.logger.Error(r.Context(), "adding leader info failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": li.ID})
}

type createAccessRequestRequest struct {
	UserID      int64 `json:"user_id"`
	RequestedBy int64 `json:"requested_by"`
}

func (s *Server) handleCreateAccessRequest(w http.ResponseWriter, r *http.Request) {
	var req createAccessRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.RequestedBy == 0 {
		writeError(w, http.StatusBadRequest, "user_id and requested_by are required")
		return
	}

	ar, err := s.access.Create(r.Context(), req.UserID, req.RequestedBy)
	if err != nil {
		s.logger.Error(r.Context(), "creating access request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": ar.ID})
}

type accessRequestResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	RequestedBy int64     `json:"requested_by"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Server) handleListAccessRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := s.access.ListPending(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing access requests failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]accessRequestResponse, 0, len(requests))
	for _, ar := range requests {
		out = append(out, accessRequestResponse{
			ID:          ar.ID,
			UserID:      ar.UserID,
			RequestedBy: ar.RequestedBy,
			Status:      string(ar.Status),
			CreatedAt:   ar.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleApproveAccessRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "access request not found")
		return
	}

	if err := s.access.Approve(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "access request not found")
			return
		}
		s.logger.Error(r.Context(), "approving access request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "access request approved"})
}
