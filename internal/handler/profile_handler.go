package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"devconnect/internal/errors"
	"devconnect/internal/github"
	"devconnect/internal/model"
	"devconnect/internal/service"
)

// ProfileHandler handles profile endpoints, including the GitHub proxy.
type ProfileHandler struct {
	profileService service.ProfileService
	githubClient   *github.Client
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService, githubClient *github.Client) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		githubClient:   githubClient,
	}
}

// SkillList accepts either a pre-split list or a comma-delimited string.
type SkillList []string

// UnmarshalJSON implements the dual accepted shapes.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = SkillList(list)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SkillList(service.SplitSkills(raw))
	return nil
}

// ProfileRequest represents the create/update payload.
type ProfileRequest struct {
	Company        string    `json:"company"`
	Website        string    `json:"website"`
	Location       string    `json:"location"`
	Status         string    `json:"status" validate:"required"`
	Skills         SkillList `json:"skills" validate:"required,min=1"`
	Bio            string    `json:"bio"`
	GithubUsername string    `json:"githubusername"`
	Youtube        string    `json:"youtube"`
	Twitter        string    `json:"twitter"`
	Instagram      string    `json:"instagram"`
	Linkedin       string    `json:"linkedin"`
	Facebook       string    `json:"facebook"`
}

var profileMessages = map[string]string{
	"Status": "Status is required",
	"Skills": "Skills is required",
}

// ExperienceRequest represents one work-history entry.
type ExperienceRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

var experienceMessages = map[string]string{
	"Title":   "Title is required",
	"Company": "Company is required",
	"From":    "From Date is required",
}

// EducationRequest represents one education entry. When To is present it
// must fall after From.
type EducationRequest struct {
	School       string     `json:"school" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"fieldofstudy" validate:"required"`
	From         time.Time  `json:"from" validate:"required"`
	To           *time.Time `json:"to" validate:"omitempty,gtfield=From"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

var educationMessages = map[string]string{
	"School":       "School is required",
	"Degree":       "Degree is required",
	"FieldOfStudy": "FieldOfStudy is required",
	"From":         "From date is required and needs to be in the past",
	"To":           "From date is required and needs to be in the past",
}

// Me godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.Message
// @Failure 401 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.Me(c.Request().Context(), userID)
	if err != nil {
		if err == service.ErrProfileNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, errors.Message{Msg: "There is no profile for this user"})
		}
		return serverError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Upsert godoc
// @Summary Create or update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ProfileRequest true "Profile fields"
// @Success 201 {object} model.Profile
// @Failure 400 {object} errors.ErrorList
// @Failure 401 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.List("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(err, profileMessages)
	}

	profile, err := h.profileService.Upsert(c.Request().Context(), userID, service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
		Facebook:       req.Facebook,
	})
	if err != nil {
		return serverError(err)
	}
	return c.JSON(http.StatusCreated, profile)
}

// All godoc
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} model.Profile
// @Failure 500 {object} errors.Message
// @Router /profile [get]
func (h *ProfileHandler) All(c echo.Context) error {
	profiles, err := h.profileService.All(c.Request().Context())
	if err != nil {
		return serverError(err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// ByUser godoc
// @Summary Get a profile by user id
// @Tags profile
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /profile/user/{user_id} [get]
func (h *ProfileHandler) ByUser(c echo.Context) error {
	userID := c.Param("user_id")

	profile, err := h.profileService.ByUserID(c.Request().Context(), userID)
	if err != nil {
		if err == service.ErrProfileNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.Message{
				Msg: fmt.Sprintf("Profile does not exist for the user id - %s", userID),
			})
		}
		return serverError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount godoc
// @Summary Delete the caller's profile and account
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} errors.Message
// @Failure 401 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /profile [delete]
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.profileService.DeleteAccount(c.Request().Context(), userID); err != nil {
		return serverError(err)
	}
	return c.JSON(http.StatusOK, errors.Message{Msg: "User Deleted"})
}

// AddExperience godoc
// @Summary Add an experience entry
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ExperienceRequest true "Experience entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorList
// @Failure 401 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /profile/experience [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.List("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(err, experienceMessages)
	}

	profile, err := h.profileService.AddExperience(c.Request().Context(), userID, model.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		if err == service.ErrProfileNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, errors.Message{Msg: "There is no profile for this user"})
		}
		return serverError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience godoc
// @Summary Remove an experience entry
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param exp_id path string true "Experience ID"
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /profile/experience/{exp_id} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.RemoveExperience(c.Request().Context(), userID, c.Param("exp_id"))
	if err != nil {
		if err == service.ErrProfileNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, errors.Message{Msg: "There is no profile for this user"})
		}
		return serverError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation godoc
// @Summary Add an education entry
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body EducationRequest true "Education entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorList
// @Failure 401 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /profile/education [put]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req EducationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.List("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(err, educationMessages)
	}

	profile, err := h.profileService.AddEducation(c.Request().Context(), userID, model.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		if err == service.ErrProfileNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, errors.Message{Msg: "There is no profile for this user"})
		}
		return serverError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveEducation godoc
// @Summary Remove an education entry
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param edu_id path string true "Education ID"
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /profile/education/{edu_id} [delete]
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.RemoveEducation(c.Request().Context(), userID, c.Param("edu_id"))
	if err != nil {
		if err == service.ErrProfileNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, errors.Message{Msg: "There is no profile for this user"})
		}
		return serverError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GithubRepos godoc
// @Summary List a user's 5 most recently created GitHub repositories
// @Tags profile
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} errors.Message
// @Router /profile/github/{username} [get]
func (h *ProfileHandler) GithubRepos(c echo.Context) error {
	repos, err := h.githubClient.Repos(c.Request().Context(), c.Param("username"))
	if err != nil {
		return serverError(err)
	}
	return c.JSONBlob(http.StatusOK, repos)
}
