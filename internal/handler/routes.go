package handler

import (
	"net/http"
)

// Routes bundles everything NewRouter mounts.
type Routes struct {
	Probe   *Handler
	Users   *UserHandler
	Contact *ContactHandler
	Stats   *StatsHandler
	Metrics *Metrics
	// ContactLimiter throttles POST /api/contact when set.
	ContactLimiter *RateLimiter
	// Static serves every path no API route matched. Nil disables it.
	Static http.Handler
}

// NewRouter registers the API before the static catch-all and wraps the mux
// in the shared middleware chain.
func NewRouter(rt Routes) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", rt.Probe.Health)
	mux.HandleFunc("GET /api/hello", rt.Probe.Hello)

	mux.HandleFunc("GET /api/users", rt.Users.List)
	mux.HandleFunc("POST /api/users", rt.Users.Create)
	mux.HandleFunc("PATCH /api/users/{id}", rt.Users.UpdateStatus)
	mux.HandleFunc("DELETE /api/users/{id}", rt.Users.Delete)

	var submit http.Handler = http.HandlerFunc(rt.Contact.Submit)
	if rt.ContactLimiter != nil {
		submit = rt.ContactLimiter.Middleware(submit)
	}
	mux.Handle("POST /api/contact", submit)
	mux.HandleFunc("GET /api/stats", rt.Stats.Get)

	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics.Handler())
	}
	if rt.Static != nil {
		mux.Handle("/", rt.Static)
	}

	var h http.Handler = mux
	if rt.Metrics != nil {
		h = rt.Metrics.Middleware(h)
	}
	h = SecurityHeaders(h)
	h = rt.Probe.CORS(h)
	return RequestLogger(h)
}
