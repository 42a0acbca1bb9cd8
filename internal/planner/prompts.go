package planner

import (
	"fmt"
	"strings"
)

/* =================================================================================
						PROMPT ENGINEERING & FALLBACKS
=================================================================================*/

/*
WorkoutSystemPrompt pins the exact output schema for workout generation.
The model is still free to ignore it, which is why validation exists.
*/
const WorkoutSystemPrompt = `You are an experienced fitness coach creating personalized workout plans.
CRITICAL SCHEMA INSTRUCTIONS:
- Your output MUST contain ONLY the fields specified below, NO ADDITIONAL FIELDS
- "sets" and "reps" MUST ALWAYS be NUMBERS, never strings
- Return ONLY a valid JSON object with this EXACT structure:
{
  "schedule": ["Monday", "Wednesday", "Friday"],
  "exercises": [
    {
      "day": "Monday",
      "routines": [
        {
          "name": "Exercise Name",
          "sets": 3,
          "reps": 10
        }
      ]
    }
  ]
}`

// DietSystemPrompt pins the exact output schema for diet generation.
const DietSystemPrompt = `You are an experienced nutrition coach creating personalized diet plans.
CRITICAL SCHEMA INSTRUCTIONS:
- Your output MUST contain ONLY the fields specified below, NO ADDITIONAL FIELDS
- "dailyCalories" MUST be a NUMBER, not a string
- Return ONLY a valid JSON object with this EXACT structure:
{
  "dailyCalories": 2000,
  "meals": [
    {
      "name": "Breakfast",
      "foods": ["Oatmeal with berries", "Greek yogurt", "Black coffee"]
    },
    {
      "name": "Lunch",
      "foods": ["Grilled chicken salad", "Whole grain bread", "Water"]
    }
  ]
}`

/*
The user prompt templates are formatted strings; fmt.Sprintf injects the
profile fields at runtime.
*/
const workoutPromptTemplate = `Create a personalized workout plan based on:
Age: %d
Height: %s
Weight: %s
Injuries or limitations: %s
Available days for workout: %s
Fitness goal: %s
Fitness level: %s`

const dietPromptTemplate = `Create a personalized diet plan based on:
Age: %d
Height: %s
Weight: %s
Fitness goal: %s
Dietary restrictions: %s`

func buildWorkoutPrompt(user UserProfile) string {
	return fmt.Sprintf(
		workoutPromptTemplate,
		user.Age,
		user.Height,
		user.Weight,
		user.Injuries,
		strings.Join(user.WorkoutDays, ", "),
		user.FitnessGoal,
		user.FitnessLevel,
	)
}

func buildDietPrompt(user UserProfile) string {
	return fmt.Sprintf(
		dietPromptTemplate,
		user.Age,
		user.Height,
		user.Weight,
		user.FitnessGoal,
		user.DietaryRestrictions,
	)
}

/* =================================================================================
							DETERMINISTIC FALLBACKS
=================================================================================*/

// fallbackWorkoutPlan returns the fixed 3-exercise routine repeated for every
// day in the user's schedule. Produced as a raw plan so it flows through the
// same validation path as real model output.
func fallbackWorkoutPlan(user UserProfile) map[string]interface{} {
	schedule := make([]interface{}, 0, len(user.WorkoutDays))
	exercises := make([]interface{}, 0, len(user.WorkoutDays))
	for _, day := range user.WorkoutDays {
		schedule = append(schedule, day)
		exercises = append(exercises, map[string]interface{}{
			"day": day,
			"routines": []interface{}{
				map[string]interface{}{"name": "Push-ups", "sets": 3, "reps": 10},
				map[string]interface{}{"name": "Squats", "sets": 3, "reps": 15},
				map[string]interface{}{"name": "Plank", "sets": 3, "reps": 30},
			},
		})
	}
	return map[string]interface{}{
		"schedule":  schedule,
		"exercises": exercises,
	}
}

// fallbackDietPlan returns the fixed 2000-calorie three-meal plan.
func fallbackDietPlan(UserProfile) map[string]interface{} {
	return map[string]interface{}{
		"dailyCalories": 2000,
		"meals": []interface{}{
			map[string]interface{}{
				"name":  "Breakfast",
				"foods": []interface{}{"Oatmeal with berries", "Greek yogurt", "Coffee"},
			},
			map[string]interface{}{
				"name":  "Lunch",
				"foods": []interface{}{"Grilled chicken salad", "Brown rice", "Water"},
			},
			map[string]interface{}{
				"name":  "Dinner",
				"foods": []interface{}{"Salmon", "Vegetables", "Sweet potato"},
			},
		},
	}
}

// planRequest parameterizes one generation stage. The workout and diet flows
// share a single implementation so their error handling cannot diverge.
type planRequest struct {
	label    string
	system   string
	prompt   func(UserProfile) string
	fallback func(UserProfile) map[string]interface{}
}

var (
	workoutRequest = planRequest{
		label:    "Workout",
		system:   WorkoutSystemPrompt,
		prompt:   buildWorkoutPrompt,
		fallback: fallbackWorkoutPlan,
	}
	dietRequest = planRequest{
		label:    "Diet",
		system:   DietSystemPrompt,
		prompt:   buildDietPrompt,
		fallback: fallbackDietPlan,
	}
)
