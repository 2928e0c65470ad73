package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sqlapp/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("middleware", func() {
	var (
		seenID string
		next   http.Handler
		w      *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		seenID = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
		w = httptest.NewRecorder()
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			req := httptest.NewRequest("GET", "/health-check", nil)
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seenID).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
		})

		It("should keep an inbound id", func() {
			req := httptest.NewRequest("GET", "/health-check", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-42")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seenID).To(Equal("req-42"))
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("req-42"))
		})
	})

	Describe("Logging", func() {
		It("should log the status written by the handler", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			logger := zap.New(core).Sugar()

			hdlr := middleware.NewLoggingMiddleware(logger).Logging(next)
			hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

			req := httptest.NewRequest("GET", "/items/", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-7")
			hdlr.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			entries := logs.FilterMessage("request served").All()
			Expect(entries).To(HaveLen(1))
			fields := entries[0].ContextMap()
			Expect(fields["status"]).To(BeEquivalentTo(http.StatusTeapot))
			Expect(fields["path"]).To(Equal("/items/"))
			Expect(fields["request_id"]).To(Equal("req-7"))
		})
	})

	Describe("RateLimit", func() {
		It("should pass everything through when disabled", func() {
			limiter := middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), 0, 1)
			Expect(limiter).To(BeNil())

			hdlr := limiter.RateLimit(next)
			for i := 0; i < 5; i++ {
				w = httptest.NewRecorder()
				hdlr.ServeHTTP(w, httptest.NewRequest("GET", "/items/", nil))
				Expect(w.Code).To(Equal(http.StatusTeapot))
			}
		})

		It("should reject requests beyond the burst", func() {
			hdlr := middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), 0.001, 2).RateLimit(next)

			codes := []int{}
			for i := 0; i < 3; i++ {
				w = httptest.NewRecorder()
				hdlr.ServeHTTP(w, httptest.NewRequest("GET", "/items/", nil))
				codes = append(codes, w.Code)
			}

			Expect(codes).To(Equal([]int{http.StatusTeapot, http.StatusTeapot, http.StatusTooManyRequests}))
			Expect(w.Body.String()).To(MatchJSON(`{"detail":"Too many requests"}`))
		})
	})
})
