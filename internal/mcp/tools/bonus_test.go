package tools

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBonusGateTripsOnce(t *testing.T) {
	g := &BonusGate{}

	assert.False(t, g.Loaded())
	assert.True(t, g.TryMarkLoaded())
	assert.True(t, g.Loaded())
	assert.False(t, g.TryMarkLoaded(), "second mark must lose")
	assert.True(t, g.Loaded())
}

func TestBonusGateConcurrentWinners(t *testing.T) {
	g := &BonusGate{}

	const callers = 32
	var wg sync.WaitGroup
	wins := make(chan bool, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- g.TryMarkLoaded()
		}()
	}
	wg.Wait()
	close(wins)

	var winners int
	for won := range wins {
		if won {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "exactly one caller may trip the gate")
}
