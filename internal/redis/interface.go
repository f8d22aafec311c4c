package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client wraps redis.UniversalClient so repositories depend on an interface
// that can be mocked.
type Client interface {
	redis.UniversalClient
}
