package main

import (
	"fmt"
	"log"

	"github.com/golab/golab/agent/tabular/qlearning"
	"github.com/golab/golab/environment/gridworld"
	"github.com/golab/golab/experiment"
	"github.com/golab/golab/experiment/trackers"
	"github.com/golab/golab/utils/matutils"
	"github.com/golab/golab/utils/progressbar"
)

func main() {
	var seed uint64 = 192382

	// Create the environment: a 5x5 gridworld with the goal in the
	// top-right corner and a per-step penalty
	rows, cols := 5, 5
	task, err := gridworld.NewGoal([]int{cols - 1}, []int{rows - 1},
		rows, cols, -0.1, 1.0)
	if err != nil {
		log.Fatal(err)
	}
	starter, err := gridworld.NewSingleStart(0, 0, rows, cols)
	if err != nil {
		log.Fatal(err)
	}
	g, _, err := gridworld.New(rows, cols, task, 0.99, starter)
	if err != nil {
		log.Fatal(err)
	}

	// Create the learning algorithm
	config := qlearning.NewConfig(g.NumActions(), g.NumStates())
	q, err := qlearning.New(config, seed)
	if err != nil {
		log.Fatal(err)
	}

	// Experiment
	var tracker trackers.Tracker = trackers.NewReturn("./data.bin")
	e := experiment.NewOnline(g, q, 50_000, tracker)

	maxEpisodes := 1_000
	pbar := progressbar.New(60, maxEpisodes)
	for i := 0; i < maxEpisodes; i++ {
		ended, err := e.RunEpisode()
		if err != nil {
			log.Fatal(err)
		}
		pbar.Increment()
		pbar.Display()
		if ended {
			break
		}
	}
	e.Save()

	data := trackers.LoadData("./data.bin")
	if len(data) > 10 {
		data = data[len(data)-10:]
	}
	fmt.Println(data)

	// Run one greedy episode with the learned table
	q.Eval()
	step := g.Reset()
	if err := q.BeginEpisode(step.Observation); err != nil {
		log.Fatal(err)
	}
	for !step.Last() && step.Number < 100 {
		action, err := q.Act()
		if err != nil {
			log.Fatal(err)
		}
		step, _ = g.Step(action)
		if err := q.Learn(step.Reward, step.Observation); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("greedy episode finished in %d steps\n", step.Number)

	fmt.Println(matutils.Format(q.Table()))
}
