// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
	"github.com/MKhiriev/go-trail-service/internal/mock"
	"github.com/MKhiriev/go-trail-service/internal/service"
	"github.com/MKhiriev/go-trail-service/internal/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	trails       *mock.MockTrailService
	verification *mock.MockVerificationService
	appInfo      *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, m *metrics.Manager) (*Handler, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testMocks{
		trails:       mock.NewMockTrailService(ctrl),
		verification: mock.NewMockVerificationService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	h := &Handler{
		services: &service.Services{
			TrailService:        mocks.trails,
			VerificationService: mocks.verification,
			AppInfoService:      mocks.appInfo,
		},
		metrics:  m,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger.Nop(),
	}
	return h, mocks
}

func newTestRouter(t *testing.T) (http.Handler, *testMocks) {
	t.Helper()
	h, mocks := newTestHandler(t, nil)
	return h.Init(), mocks
}

type requestOption func(r *http.Request)

func withBasicAuth(email, password string) requestOption {
	return func(r *http.Request) { r.SetBasicAuth(email, password) }
}

func withHeader(key, value string) requestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

func doRequest(router http.Handler, method, target, body string, opts ...requestOption) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}
