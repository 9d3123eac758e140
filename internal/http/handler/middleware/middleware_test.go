package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"walletrisk/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		seenID string
		next   http.Handler
		w      *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		seenID = ""
		w = httptest.NewRecorder()
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, httptest.NewRequest("GET", "/risk/scores", nil))

			_, err := uuid.Parse(seenID)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Header().Get("X-Request-ID")).To(Equal(seenID))
		})

		It("should reuse the incoming id", func() {
			req := httptest.NewRequest("GET", "/risk/scores", nil)
			req.Header.Set("X-Request-ID", "abc-123")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seenID).To(Equal("abc-123"))
		})
	})

	Describe("Logging", func() {
		It("should log the response status with the request id", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			h := middleware.NewLoggingMiddleware(zap.New(core).Sugar()).Logging(next)
			h = middleware.NewRequestIDMiddleware().RequestID(h)

			req := httptest.NewRequest("GET", "/risk/scores", nil)
			req.Header.Set("X-Request-ID", "abc-123")
			h.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(logs.Len()).To(Equal(1))
			fields := logs.All()[0].ContextMap()
			Expect(fields["status"]).To(BeEquivalentTo(http.StatusTeapot))
			Expect(fields["path"]).To(Equal("/risk/scores"))
			Expect(fields["request_id"]).To(Equal("abc-123"))
		})
	})
})
