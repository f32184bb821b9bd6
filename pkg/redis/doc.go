// Package redis opens go-redis clients with pool defaults and startup retry,
// and exposes health and shutdown hooks for them.
//
//	client, err := redis.Open(ctx, cfg.RedisURL, redis.WithPoolSize(20))
//	if err != nil {
//	    return err
//	}
//	checks["redis"] = redis.Healthcheck(client)
//	hooks = append(hooks, redis.Shutdown(client))
package redis
