// Package models defines the data structures exchanged with the
// JejaKarbon REST API and kept in client state.
package models

// Role identifies the access level granted to a user.
type Role string

const (
	// RoleAdmin marks administrative accounts.
	RoleAdmin Role = "admin"
	// RoleUser marks regular accounts.
	RoleUser Role = "user"
)

// User represents an application account as returned by the server.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Name is the display name chosen at registration.
	Name string `json:"name"`
	// Email is the login email address.
	Email string `json:"email"`
	// TelpNumber is an optional phone number.
	TelpNumber string `json:"telp_number,omitempty"`
	// Role is the access level ("admin" or "user").
	Role Role `json:"role"`
	// ImageURL points to the profile picture, if any.
	ImageURL string `json:"image_url,omitempty"`
	// IsVerified reports whether the email has been confirmed.
	IsVerified bool `json:"is_verified"`
}

// Meta carries pagination information on list responses.
type Meta struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	MaxPage int `json:"max_page"`
	Count   int `json:"count"`
}

// LoginResult is the payload of a successful POST /user/login.
type LoginResult struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
	User  *User  `json:"user,omitempty"`
}

// EmissionSource is a per-category entry on the dashboard, one of
// "vehicle", "electronics" or "food".
type EmissionSource struct {
	Source           string  `json:"source"`
	DisplayName      string  `json:"display_name"`
	Value            float64 `json:"value"`
	PercentageChange float64 `json:"percentage_change"`
	// IsIncrease is authoritative for the trend direction. The sign of
	// PercentageChange must not be used to infer it.
	IsIncrease bool   `json:"is_increase"`
	Icon       string `json:"icon,omitempty"`
	Category   string `json:"category"`
}

// AverageStat is a daily or monthly average with its delta versus the
// previous comparison period.
type AverageStat struct {
	Value            float64 `json:"value"`
	PercentageChange float64 `json:"percentage_change"`
	ComparisonPeriod string  `json:"comparison_period"`
	IsIncrease       bool    `json:"is_increase"`
}

// TrendPoint is one labelled bucket of a carbon trend series.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Dashboard is the payload of GET /carbon/dashboard. CarbonTrend maps a
// timeframe token ("7_days", "1_month", "3_months", "6_months",
// "1_year") to its ordered series.
type Dashboard struct {
	DailyAverage    AverageStat             `json:"daily_average"`
	MonthlyAverage  AverageStat             `json:"monthly_average"`
	CarbonTrend     map[string][]TrendPoint `json:"carbon_trend"`
	EmissionSources []EmissionSource        `json:"emission_sources"`
}

// VehicleDetails holds the vehicle-specific fields of an activity.
type VehicleDetails struct {
	FuelType string  `json:"fuel_type"`
	Distance float64 `json:"distance"`
}

// ElectronicsDetails holds the electronics-specific fields of an activity.
type ElectronicsDetails struct {
	Item          string  `json:"item"`
	DurationUsage float64 `json:"duration_usage"`
}

// FoodDetails holds the food-specific fields of an activity.
type FoodDetails struct {
	FoodItem string  `json:"food_item"`
	Weight   float64 `json:"weight"`
}

// Activity is one carbon entry. Exactly one of the detail sub-records is
// populated, matching Source.
type Activity struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	Source         string              `json:"source"`
	Description    string              `json:"deskripsi"`
	CarbonEstimate float64             `json:"carbon_estimate"`
	CarbonOutput   float64             `json:"carbon_output"`
	Vehicle        *VehicleDetails     `json:"vehicle_details,omitempty"`
	Electronics    *ElectronicsDetails `json:"electrical_details,omitempty"`
	Food           *FoodDetails        `json:"food_details,omitempty"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
}

// ActivitySource values accepted by the activity endpoints.
const (
	SourceVehicle     = "vehicle"
	SourceElectronics = "electronics"
	SourceFood        = "food"
)

// Badge is a read-only achievement definition from GET /badge/.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
	Criteria    string `json:"criteria"`
	Category    string `json:"category"`
	Level       int    `json:"level"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Milestone is a staged target inside a challenge.
type Milestone struct {
	Target     float64 `json:"target"`
	Reward     string  `json:"reward"`
	IsAchieved bool    `json:"is_achieved"`
}

// UserChallenge is a user's progress overlay on a challenge, as returned
// by GET /challenge/daily.
type UserChallenge struct {
	ID                   string      `json:"id"`
	UserID               string      `json:"user_id"`
	ChallengeID          string      `json:"challenge_id"`
	ChallengeName        string      `json:"challenge_name"`
	ChallengeDescription string      `json:"challenge_description"`
	CurrentProgress      float64     `json:"current_progress"`
	MilestoneProgress    []Milestone `json:"milestone_progress"`
	LastResetDate        string      `json:"last_reset_date"`
	IsCompleted          bool        `json:"is_completed"`
	CreatedAt            string      `json:"created_at"`
	UpdatedAt            string      `json:"updated_at"`
}
