package ctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithValue(t *testing.T) {
	req := require.New(t)
	c := WithValue(Background(), "requestID", "abc-123")
	req.Equal("abc-123", c.Value("requestID"))
}

func TestWithTimeout(t *testing.T) {
	req := require.New(t)
	c, cancel := WithTimeout(Background(), time.Second)
	defer cancel()
	deadline, ok := c.Deadline()
	req.True(ok)
	req.True(deadline.After(time.Now()))
}

func TestWithCancel(t *testing.T) {
	req := require.New(t)
	c, cancel := WithCancel(Background())
	req.NoError(c.Err())
	cancel()
	req.Error(c.Err())
}
