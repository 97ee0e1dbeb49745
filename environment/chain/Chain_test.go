package chain

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	if _, _, err := New(1, 0.9); err == nil {
		t.Error("new(1) should fail: no non-terminal states")
	}

	env, step, err := New(3, 0.9)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !step.First() {
		t.Error("first step is not of type First")
	}
	if step.Observation != 0 {
		t.Errorf("starting state = %d, want 0", step.Observation)
	}
	if env.NumStates() != 3 || env.NumActions() != 2 {
		t.Errorf("spaces are %d states x %d actions, want 3 x 2",
			env.NumStates(), env.NumActions())
	}
}

func TestDynamics(t *testing.T) {
	env, _, err := New(3, 0.9)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// Moving left in the leftmost state stays in place
	step, done := env.Step(Left)
	if done || step.Observation != 0 || step.Reward != 0 {
		t.Errorf("left at wall: got (%v, %v, done=%v), want (0, 0, false)",
			step.Observation, step.Reward, done)
	}

	// Two steps right reach the terminal state with reward 1
	step, done = env.Step(Right)
	if done || step.Observation != 1 || step.Reward != 0 {
		t.Errorf("right: got (%v, %v, done=%v), want (1, 0, false)",
			step.Observation, step.Reward, done)
	}
	step, done = env.Step(Right)
	if !done || step.Observation != 2 || step.Reward != GoalReward {
		t.Errorf("right to goal: got (%v, %v, done=%v), want (2, 1, true)",
			step.Observation, step.Reward, done)
	}
	if !step.Last() {
		t.Error("goal step is not of type Last")
	}

	// Reset starts a fresh episode
	step = env.Reset()
	if !step.First() || step.Observation != 0 || step.Number != 0 {
		t.Errorf("reset: got %v", step)
	}
}

func TestOptimalValue(t *testing.T) {
	const discount = 0.9

	env, _, err := New(3, discount)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	tests := []struct {
		state, action int
		want          float64
	}{
		{0, Right, discount},
		{1, Right, GoalReward},
		{0, Left, discount * discount},
		{1, Left, discount * discount},
		{2, Left, 0},
		{2, Right, 0},
	}

	for _, test := range tests {
		got := env.OptimalValue(test.state, test.action)
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("optimalvalue(%d, %d) = %v, want %v",
				test.state, test.action, got, test.want)
		}
	}
}
