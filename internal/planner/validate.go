package planner

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultExerciseName  = "Exercise"
	defaultMealName      = "Meal"
	defaultSets          = 1
	defaultReps          = 10
	defaultDailyCalories = 2000
)

// ValidateWorkoutPlan coerces a raw workout plan into the strict schema.
// Missing keys take their documented defaults. A present field of the wrong
// type aborts validation: the error is returned and the plan comes back
// fully defaulted, never partially applied.
func ValidateWorkoutPlan(raw map[string]interface{}) (WorkoutPlan, error) {
	plan := emptyWorkoutPlan()

	schedule, err := stringList(raw, "schedule")
	if err != nil {
		return emptyWorkoutPlan(), err
	}

	exercises := []DayExercises{}
	if v, ok := raw["exercises"]; ok {
		list, ok := v.([]interface{})
		if !ok {
			return emptyWorkoutPlan(), fmt.Errorf("exercises: expected a list, got %T", v)
		}
		for _, entry := range list {
			ex, ok := entry.(map[string]interface{})
			if !ok {
				return emptyWorkoutPlan(), fmt.Errorf("exercises: expected an object entry, got %T", entry)
			}
			day, err := validateRoutines(ex)
			if err != nil {
				return emptyWorkoutPlan(), err
			}
			exercises = append(exercises, day)
		}
	}

	plan.Schedule = schedule
	plan.Exercises = exercises
	return plan, nil
}

func validateRoutines(ex map[string]interface{}) (DayExercises, error) {
	day := DayExercises{
		Day:      stringField(ex, "day", ""),
		Routines: []Routine{},
	}

	v, ok := ex["routines"]
	if !ok {
		return day, nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return DayExercises{}, fmt.Errorf("routines: expected a list, got %T", v)
	}

	for _, entry := range list {
		r, ok := entry.(map[string]interface{})
		if !ok {
			return DayExercises{}, fmt.Errorf("routines: expected an object entry, got %T", entry)
		}
		sets, err := intField(r, "sets", defaultSets)
		if err != nil {
			return DayExercises{}, err
		}
		reps, err := intField(r, "reps", defaultReps)
		if err != nil {
			return DayExercises{}, err
		}
		// Sets and reps must end up positive; a zero or negative value is as
		// malformed as a missing one and takes the field default.
		if sets < 1 {
			sets = defaultSets
		}
		if reps < 1 {
			reps = defaultReps
		}
		day.Routines = append(day.Routines, Routine{
			Name: stringField(r, "name", defaultExerciseName),
			Sets: sets,
			Reps: reps,
		})
	}
	return day, nil
}

// ValidateDietPlan coerces a raw diet plan into the strict schema. A meals
// field that is not a list is silently replaced with an empty one; a
// dailyCalories value that cannot be coerced to an integer is an error and
// yields the fully defaulted plan.
func ValidateDietPlan(raw map[string]interface{}) (DietPlan, error) {
	meals := []Meal{}
	if v, ok := raw["meals"]; ok {
		if list, ok := v.([]interface{}); ok {
			for _, entry := range list {
				m, ok := entry.(map[string]interface{})
				if !ok {
					return emptyDietPlan(), fmt.Errorf("meals: expected an object entry, got %T", entry)
				}
				meals = append(meals, Meal{
					Name:  stringField(m, "name", defaultMealName),
					Foods: foodList(m),
				})
			}
		}
	}

	calories, err := intField(raw, "dailyCalories", defaultDailyCalories)
	if err != nil {
		return emptyDietPlan(), err
	}

	return DietPlan{DailyCalories: calories, Meals: meals}, nil
}

// foodList tolerates a missing or wrong-typed foods field and stringifies
// any non-string entries.
func foodList(m map[string]interface{}) []string {
	foods := []string{}
	v, ok := m["foods"]
	if !ok {
		return foods
	}
	list, ok := v.([]interface{})
	if !ok {
		return foods
	}
	for _, f := range list {
		if s, ok := f.(string); ok {
			foods = append(foods, s)
		} else {
			foods = append(foods, fmt.Sprint(f))
		}
	}
	return foods
}

func stringList(raw map[string]interface{}, key string) ([]string, error) {
	v, ok := raw[key]
	if !ok {
		return []string{}, nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: expected a list, got %T", key, v)
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(entry))
		}
	}
	return out, nil
}

func stringField(m map[string]interface{}, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// intField applies best-effort integer coercion: ints and floats convert
// directly, numeric strings are parsed. A missing key takes the default
// without error; a present value that cannot convert is an error.
func intField(m map[string]interface{}, key string, def int) (int, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%s: cannot convert %q to an integer", key, n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%s: cannot convert %T to an integer", key, v)
	}
}
