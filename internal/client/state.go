package client

// State is a step of one acquisition run.
type State int

const (
	StateInit State = iota
	StateTokenLoaded
	StateStockFetched
	StateGenerationRequested
	StateSucceeded
	StateFailed
	StateIdling
	StateExit
)

var stateNames = map[State]string{
	StateInit:                "init",
	StateTokenLoaded:         "token_loaded",
	StateStockFetched:        "stock_fetched",
	StateGenerationRequested: "generation_requested",
	StateSucceeded:           "succeeded",
	StateFailed:              "failed",
	StateIdling:              "idling",
	StateExit:                "exit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
