package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasklist/internal/core/notify"
)

const testTTL = 3 * time.Second

func TestToastController_Push(t *testing.T) {
	c := NewToastController(testTTL)

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "hello"})

	require.True(t, c.HasToasts())
	assert.Equal(t, "hello", c.Toasts()[0].notification.Message)
	assert.Equal(t, testTTL, c.Toasts()[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController(testTTL)

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Notification{Level: notify.LevelInfo, Message: fmt.Sprint(i)})
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2", c.Toasts()[0].notification.Message)
}

func TestToastController_Push_disabled(t *testing.T) {
	c := NewToastController(0)
	c.Push(notify.Notification{Message: "ignored"})
	assert.False(t, c.HasToasts())
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController(testTTL)
	c.Push(notify.Notification{Message: "expires"})
	c.Push(notify.Notification{Message: "survives"})

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Message)
	assert.Equal(t, testTTL-100*time.Millisecond, c.Toasts()[0].remaining)
}

func TestToastController_Ticking(t *testing.T) {
	c := NewToastController(testTTL)
	assert.False(t, c.Ticking())
	c.SetTicking(true)
	assert.True(t, c.Ticking())
}
