package planner

import (
	"fmt"
	"strconv"
	"strings"
)

// UserProfile holds the validated request input for one generation run.
// It is built once per request and never mutated afterwards.
type UserProfile struct {
	UserID              string
	Age                 int
	Height              string
	Weight              string
	Injuries            string
	WorkoutDays         []string
	FitnessGoal         string
	FitnessLevel        string
	DietaryRestrictions string
}

// ValidationError reports malformed or missing request input. It fails the
// whole request before any plan is generated, unlike generation and
// validation errors which are absorbed into the error list.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BuildProfile converts the loosely-typed request fields into a UserProfile.
// Required fields: user_id, age, height, weight, workout_days, fitness_goal,
// fitness_level. Optional injuries and dietary_restrictions default to "None".
func BuildProfile(raw map[string]interface{}) (UserProfile, error) {
	var profile UserProfile
	var err error

	if profile.UserID, err = requireString(raw, "user_id"); err != nil {
		return UserProfile{}, err
	}
	if profile.Age, err = requireAge(raw); err != nil {
		return UserProfile{}, err
	}
	if profile.Height, err = requireString(raw, "height"); err != nil {
		return UserProfile{}, err
	}
	if profile.Weight, err = requireString(raw, "weight"); err != nil {
		return UserProfile{}, err
	}
	if profile.WorkoutDays, err = requireDays(raw, "workout_days"); err != nil {
		return UserProfile{}, err
	}
	if profile.FitnessGoal, err = requireString(raw, "fitness_goal"); err != nil {
		return UserProfile{}, err
	}
	if profile.FitnessLevel, err = requireString(raw, "fitness_level"); err != nil {
		return UserProfile{}, err
	}

	profile.Injuries = optionalString(raw, "injuries")
	profile.DietaryRestrictions = optionalString(raw, "dietary_restrictions")

	return profile, nil
}

func requireString(raw map[string]interface{}, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", &ValidationError{Field: key, Message: "missing required field"}
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

// requireAge accepts an int, a float, or a numeric string. Anything else
// (e.g. "thirty") fails the request before the model is ever invoked.
func requireAge(raw map[string]interface{}) (int, error) {
	v, ok := raw["age"]
	if !ok || v == nil {
		return 0, &ValidationError{Field: "age", Message: "missing required field"}
	}
	switch age := v.(type) {
	case int:
		return age, nil
	case int64:
		return int(age), nil
	case float64:
		return int(age), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(age))
		if err != nil {
			return 0, &ValidationError{Field: "age", Message: fmt.Sprintf("must be an integer, got %q", age)}
		}
		return n, nil
	default:
		return 0, &ValidationError{Field: "age", Message: fmt.Sprintf("must be an integer, got %T", v)}
	}
}

// requireDays normalizes workout_days into a slice of day names. A bare
// string is wrapped in a one-element slice rather than rejected.
func requireDays(raw map[string]interface{}, key string) ([]string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, &ValidationError{Field: key, Message: "missing required field"}
	}
	switch days := v.(type) {
	case []string:
		return days, nil
	case []interface{}:
		out := make([]string, 0, len(days))
		for _, d := range days {
			if s, ok := d.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(d))
			}
		}
		return out, nil
	case string:
		return []string{days}, nil
	default:
		return []string{fmt.Sprint(v)}, nil
	}
}

func optionalString(raw map[string]interface{}, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return "None"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
