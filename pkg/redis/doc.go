// Package redis connects to Redis with go-redis/v9.
//
// Redis is optional for the dashboard. It backs the contributors response
// cache when REDIS_URL is set:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Healthcheck adapts a client into a readiness probe.
package redis
