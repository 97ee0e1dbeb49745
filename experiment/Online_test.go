package experiment_test

import (
	"path/filepath"
	"testing"

	"github.com/golab/golab/agent/tabular/random"
	"github.com/golab/golab/environment/chain"
	"github.com/golab/golab/experiment"
	"github.com/golab/golab/experiment/trackers"
)

func TestOnlineRun(t *testing.T) {
	env, _, err := chain.New(5, 0.9)
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	a, err := random.New(env.NumActions(), env.NumStates(), 17)
	if err != nil {
		t.Fatalf("random: %v", err)
	}

	dir := t.TempDir()
	returnFile := filepath.Join(dir, "returns.bin")
	lengthFile := filepath.Join(dir, "lengths.bin")

	e := experiment.NewOnline(env, a, 5000, trackers.NewReturn(returnFile))
	e.Register(trackers.NewEpisodeLength(lengthFile))

	if err := e.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	e.Save()

	returns := trackers.LoadData(returnFile)
	lengths := trackers.LoadIntData(lengthFile)

	if len(returns) == 0 {
		t.Fatal("no episodes completed in 5000 steps")
	}
	if len(returns) != len(lengths) {
		t.Fatalf("tracked %d returns but %d lengths",
			len(returns), len(lengths))
	}

	// Every finished chain episode earns exactly the goal reward
	for i, r := range returns {
		if r != chain.GoalReward {
			t.Errorf("episode %d return = %v, want %v",
				i, r, chain.GoalReward)
		}
	}
	for i, l := range lengths {
		if l < env.NumStates()-1 {
			t.Errorf("episode %d length = %d, shorter than the minimum %d",
				i, l, env.NumStates()-1)
		}
	}
}

func TestOnlineRunEpisode(t *testing.T) {
	env, _, err := chain.New(3, 0.9)
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	a, err := random.New(env.NumActions(), env.NumStates(), 3)
	if err != nil {
		t.Fatalf("random: %v", err)
	}

	e := experiment.NewOnline(env, a, 100000)

	// A single episode on a tiny chain should finish well before the
	// timestep limit
	ended, err := e.RunEpisode()
	if err != nil {
		t.Fatalf("runepisode: %v", err)
	}
	if ended {
		t.Error("timestep limit reached after a single episode")
	}
}
