package middleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/cache"
)

// CacheStatusHeader reports whether a response was served from the cache
const CacheStatusHeader = "X-Cache"

// bodyRecorder tees the response body so it can be stored after the handler returns
type bodyRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// ReadThroughCache serves GET responses from rt when present. On a miss the handler
// runs and a 200 response body is stored under the same key, unless the family was
// invalidated while the handler ran.
func ReadThroughCache(rt *cache.ReadThrough, prefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet {
				return next(c)
			}

			ctx := req.Context()
			key := cache.Key(prefix, req.URL.Path, c.QueryParams())

			if payload, ok := rt.Lookup(ctx, key); ok {
				c.Response().Header().Set(CacheStatusHeader, "HIT")
				return c.JSONBlob(http.StatusOK, payload)
			}
			c.Response().Header().Set(CacheStatusHeader, "MISS")
			gen, genErr := rt.Generation(ctx, key)

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec
			err := next(c)
			c.Response().Writer = rec.ResponseWriter

			if err == nil && genErr == nil && c.Response().Status == http.StatusOK && rec.body.Len() > 0 {
				rt.Store(ctx, key, rec.body.Bytes(), gen)
			}
			return err
		}
	}
}
