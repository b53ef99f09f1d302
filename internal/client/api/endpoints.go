package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jejakarbon/cli/internal/models"
)

// LoginRequest is the payload of POST /user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload of POST /user.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	TelpNumber string `json:"telp_number,omitempty"`
}

// ActivityRequest is the payload of POST /activity and PUT /activity/{id}.
// The server expects all three detail records present, with the two that
// do not match Source zero-valued.
type ActivityRequest struct {
	UserID      string                    `json:"user_id"`
	Source      string                    `json:"source"`
	Description string                    `json:"deskripsi"`
	Vehicle     models.VehicleDetails     `json:"vehicle_details"`
	Electronics models.ElectronicsDetails `json:"electrical_details"`
	Food        models.FoodDetails        `json:"food_details"`
}

// Login authenticates and returns the token, role and user.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var out models.LoginResult
	if _, err := c.do(ctx, http.MethodPost, "/user/login", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var out models.User
	if _, err := c.do(ctx, http.MethodPost, "/user", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if _, err := c.do(ctx, http.MethodGet, "/user/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateActivity records a new carbon entry.
func (c *Client) CreateActivity(ctx context.Context, req ActivityRequest) (*models.Activity, error) {
	var out models.Activity
	if _, err := c.do(ctx, http.MethodPost, "/activity", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateActivity replaces an existing carbon entry.
func (c *Client) UpdateActivity(ctx context.Context, id string, req ActivityRequest) (*models.Activity, error) {
	var out models.Activity
	if _, err := c.do(ctx, http.MethodPut, "/activity/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteActivity removes a carbon entry. Callers re-fetch the list on
// success; entries are never patched locally.
func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/activity/"+url.PathEscape(id), nil, nil)
	return err
}

// Activities lists all carbon entries visible to the caller.
func (c *Client) Activities(ctx context.Context) ([]models.Activity, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, http.MethodGet, "/activity", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeList[models.Activity](raw, "activities")
}

// Users lists accounts; admin scope.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, http.MethodGet, "/user", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeList[models.User](raw, "users")
}

// ActivitiesByUser lists the carbon entries of one user.
func (c *Client) ActivitiesByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, http.MethodGet, "/activity/user/"+url.PathEscape(userID), nil, &raw); err != nil {
		return nil, err
	}
	return normalizeList[models.Activity](raw, "activities")
}

// Dashboard fetches the aggregated carbon dashboard for a timeframe
// token such as "7_days" or "6_months".
func (c *Client) Dashboard(ctx context.Context, timeframe string) (*models.Dashboard, error) {
	path := "/carbon/dashboard"
	if timeframe != "" {
		path += "?timeframe=" + url.QueryEscape(timeframe)
	}
	var out models.Dashboard
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Badges lists every badge definition.
func (c *Client) Badges(ctx context.Context) ([]models.Badge, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, http.MethodGet, "/badge/", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeList[models.Badge](raw, "badges")
}

// UserBadges lists the badges a user has earned.
func (c *Client) UserBadges(ctx context.Context, userID string) ([]models.Badge, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, http.MethodGet, "/badge/user/"+url.PathEscape(userID), nil, &raw); err != nil {
		return nil, err
	}
	return normalizeList[models.Badge](raw, "badges")
}

// DailyChallenge fetches today's challenges with the user's progress.
func (c *Client) DailyChallenge(ctx context.Context) ([]models.UserChallenge, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, http.MethodGet, "/challenge/daily", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeList[models.UserChallenge](raw, "challenges")
}

// UpdateChallengeProgress reports progress against a challenge.
func (c *Client) UpdateChallengeProgress(ctx context.Context, id string, progress float64) (*models.UserChallenge, error) {
	body := map[string]float64{"progress": progress}
	var out models.UserChallenge
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/challenge/%s/progress", url.PathEscape(id)), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
