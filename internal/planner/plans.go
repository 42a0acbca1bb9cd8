package planner

// Routine is a single exercise entry. Sets and Reps are always positive
// integers after validation, regardless of what the model returned.
type Routine struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

// DayExercises groups the routines scheduled for one day.
type DayExercises struct {
	Day      string    `json:"day"`
	Routines []Routine `json:"routines"`
}

// WorkoutPlan is the validated workout schema returned to the caller.
type WorkoutPlan struct {
	Schedule  []string       `json:"schedule"`
	Exercises []DayExercises `json:"exercises"`
}

// Meal is one validated meal with its food list.
type Meal struct {
	Name  string   `json:"name"`
	Foods []string `json:"foods"`
}

// DietPlan is the validated diet schema returned to the caller.
type DietPlan struct {
	DailyCalories int    `json:"dailyCalories"`
	Meals         []Meal `json:"meals"`
}

// FinalResult is assembled once at the end of the pipeline. Success is true
// iff no stage recorded an error, even when validation had to substitute
// heavy defaults.
type FinalResult struct {
	Success     bool        `json:"success"`
	WorkoutPlan WorkoutPlan `json:"workout_plan"`
	DietPlan    DietPlan    `json:"diet_plan"`
	Errors      []string    `json:"errors"`
}

func emptyWorkoutPlan() WorkoutPlan {
	return WorkoutPlan{Schedule: []string{}, Exercises: []DayExercises{}}
}

func emptyDietPlan() DietPlan {
	return DietPlan{DailyCalories: defaultDailyCalories, Meals: []Meal{}}
}
