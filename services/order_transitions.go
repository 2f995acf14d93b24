package services

import "github.com/abdul-09/slooze-restaurant/entity"

// transitions is the explicit adjacency table of the order state machine.
// Terminal states (delivered, cancelled) have no exits. The persistence guard
// is still a compare-and-swap on the current status, so a concurrent change
// invalidates the transition instead of racing it.
var transitions = map[string][]string{
	entity.StatusPending:   {entity.StatusConfirmed, entity.StatusCancelled},
	entity.StatusConfirmed: {entity.StatusPreparing, entity.StatusCancelled},
	entity.StatusPreparing: {entity.StatusReady},
	entity.StatusReady:     {entity.StatusDelivered},
	entity.StatusDelivered: {},
	entity.StatusCancelled: {},
}

// cancellable mirrors the transition table's edges into cancelled.
var cancellable = []string{entity.StatusPending, entity.StatusConfirmed}

func canTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
