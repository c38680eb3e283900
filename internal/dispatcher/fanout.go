package dispatcher

import "sync"

// task is one notification dispatch attempt. Token is set for push tasks so
// invalid-token outcomes can be traced back to the row to prune.
type task struct {
	Channel string
	Token   string
	Run     func() error
}

// outcome is the settled result of one task
type outcome struct {
	Channel string
	Token   string
	Err     error
}

// settleAll runs every task concurrently and waits for all of them to
// settle. A failing task never aborts its siblings; each outcome carries
// its own error for the caller to log and act on.
func settleAll(tasks []task) []outcome {
	outcomes := make([]outcome, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, t := range tasks {
		go func(i int, t task) {
			defer wg.Done()
			outcomes[i] = outcome{Channel: t.Channel, Token: t.Token, Err: t.Run()}
		}(i, t)
	}
	wg.Wait()

	return outcomes
}
