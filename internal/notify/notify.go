// Package notify collects toast notifications raised while a request is handled so the page
// layout can render them.
package notify

import (
	"sync"

	"github.com/gin-gonic/gin"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Toast struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type Notifier interface {
	Success(message string)
	Error(message string)
}

type Collector struct {
	mu     sync.Mutex
	toasts []Toast
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Success(message string) {
	c.add(LevelSuccess, message)
}

func (c *Collector) Error(message string) {
	c.add(LevelError, message)
}

func (c *Collector) add(level Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = append(c.toasts, Toast{Level: level, Message: message})
}

func (c *Collector) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

const contextKey = "notifier"

func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, NewCollector())
		c.Next()
	}
}

// FromContext returns the request's collector, creating one when Middleware is not installed.
func FromContext(c *gin.Context) *Collector {
	if v, ok := c.Get(contextKey); ok {
		if collector, ok := v.(*Collector); ok {
			return collector
		}
	}
	collector := NewCollector()
	c.Set(contextKey, collector)
	return collector
}
