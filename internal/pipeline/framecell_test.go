package pipeline_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hawkeye-video/hawkeye/internal/pipeline"
)

func TestFrameCellLatestNilBeforePublish(t *testing.T) {
	var c pipeline.FrameCell
	assert.Nil(t, c.Latest())
}

func TestFrameCellPublishThenLatest(t *testing.T) {
	var c pipeline.FrameCell
	c.Publish([]byte("frame-1"))
	assert.Equal(t, []byte("frame-1"), c.Latest())
	c.Publish([]byte("frame-2"))
	assert.Equal(t, []byte("frame-2"), c.Latest())
}

// TestFrameCellConcurrentAccess exercises the cell under a concurrent
// writer and many readers; -race must find no data race here.
func TestFrameCellConcurrentAccess(t *testing.T) {
	var c pipeline.FrameCell
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			c.Publish([]byte{byte(i)})
		}
	}()

	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = c.Latest()
			}
		}()
	}
	wg.Wait()
}
