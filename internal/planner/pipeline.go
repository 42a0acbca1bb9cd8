/*
Package planner implements the plan-generation pipeline: it builds prompts
from a user profile, drives the model client, and coerces whatever comes back
into the strict workout/diet schema, degrading to deterministic fallback
plans when the model fails or returns garbage.
*/
package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ModelClient is the remote model invocation dependency. One instance is
// constructed at process startup and shared across requests; implementations
// must be safe for concurrent use.
type ModelClient interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// PipelineState is the mutable record threaded through the stages of one
// request. It is exclusively owned by a single in-flight request.
type PipelineState struct {
	Profile          UserProfile
	WorkoutPlan      map[string]interface{}
	DietPlan         map[string]interface{}
	ValidatedWorkout WorkoutPlan
	ValidatedDiet    DietPlan
	Errors           []string
	Final            *FinalResult
}

func newPipelineState(profile UserProfile) *PipelineState {
	return &PipelineState{
		Profile:     profile,
		WorkoutPlan: map[string]interface{}{},
		DietPlan:    map[string]interface{}{},
		Errors:      []string{},
	}
}

// Generator runs the fixed pipeline:
// generate workout -> generate diet -> validate workout -> validate diet -> finalize.
// Stage failures are recorded in the state's error list and never abort the
// run; the pipeline always reaches finalize and always returns a result.
type Generator struct {
	model ModelClient
}

func NewGenerator(model ModelClient) *Generator {
	return &Generator{model: model}
}

// Generate is the top-level entry point. Profile construction failures and
// panics escaping a stage are the only errors returned; everything else is
// absorbed into the result's error list.
func (g *Generator) Generate(ctx context.Context, raw map[string]interface{}) (result *FinalResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("plan pipeline panicked: %v", r)
			result = nil
			err = fmt.Errorf("pipeline execution error: %v", r)
		}
	}()

	profile, err := BuildProfile(raw)
	if err != nil {
		return nil, err
	}

	state := newPipelineState(profile)
	g.generatePlans(ctx, state)
	g.validateWorkout(state)
	g.validateDiet(state)
	g.finalize(state)
	return state.Final, nil
}

// generatePlans runs the two independent generation stages. They are fanned
// out concurrently, but both completions are joined before validation starts
// and the error notes keep the workout-first order of the sequential
// pipeline, so the observable behavior is unchanged.
func (g *Generator) generatePlans(ctx context.Context, state *PipelineState) {
	var workoutNote, dietNote string

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		state.WorkoutPlan, workoutNote = g.requestPlan(grpCtx, state.Profile, workoutRequest)
		return nil
	})
	grp.Go(func() error {
		state.DietPlan, dietNote = g.requestPlan(grpCtx, state.Profile, dietRequest)
		return nil
	})
	_ = grp.Wait() // stage goroutines never return errors

	if workoutNote != "" {
		state.Errors = append(state.Errors, workoutNote)
	}
	if dietNote != "" {
		state.Errors = append(state.Errors, dietNote)
	}
}

// requestPlan invokes the model for one plan and parses the response. On any
// failure it substitutes the stage's deterministic fallback and returns a
// descriptive error note; a single failure is never retried and never fails
// the overall request.
func (g *Generator) requestPlan(ctx context.Context, profile UserProfile, req planRequest) (map[string]interface{}, string) {
	log.Info().Str("plan", req.label).Msg("Sending prompt to model...")

	text, err := g.model.Chat(ctx, req.system, req.prompt(profile))
	if err != nil {
		log.Warn().Err(err).Str("plan", req.label).Msg("Model invocation failed, using fallback plan")
		return req.fallback(profile), fmt.Sprintf("%s generation error: %v", req.label, err)
	}

	var plan map[string]interface{}
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &plan); err != nil {
		log.Warn().Err(err).Str("plan", req.label).Msg("Model returned unparseable output, using fallback plan")
		return req.fallback(profile), fmt.Sprintf("%s generation error: %v", req.label, err)
	}
	return plan, ""
}

func (g *Generator) validateWorkout(state *PipelineState) {
	plan, err := ValidateWorkoutPlan(state.WorkoutPlan)
	if err != nil {
		state.Errors = append(state.Errors, fmt.Sprintf("Workout validation error: %v", err))
	}
	state.ValidatedWorkout = plan
}

func (g *Generator) validateDiet(state *PipelineState) {
	plan, err := ValidateDietPlan(state.DietPlan)
	if err != nil {
		state.Errors = append(state.Errors, fmt.Sprintf("Diet validation error: %v", err))
	}
	state.ValidatedDiet = plan
}

// finalize assembles the result from whatever state exists, regardless of
// how many prior stages recorded errors.
func (g *Generator) finalize(state *PipelineState) {
	state.Final = &FinalResult{
		Success:     len(state.Errors) == 0,
		WorkoutPlan: state.ValidatedWorkout,
		DietPlan:    state.ValidatedDiet,
		Errors:      state.Errors,
	}
}
