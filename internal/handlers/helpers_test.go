package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2sh3r/aitrade/internal/middleware"
	"github.com/a2sh3r/aitrade/internal/mocks/service_mocks"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

type mocks struct {
	users       *service_mocks.MockUserService
	payments    *service_mocks.MockPaymentService
	withdrawals *service_mocks.MockWithdrawalService
	credits     *service_mocks.MockCreditService
	affiliate   *service_mocks.MockAffiliateService
	payouts     *service_mocks.MockPayoutService
	leads       *service_mocks.MockLeadService
	wallets     *service_mocks.MockWalletService
}

func newTestHandler(t *testing.T) (*Handler, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		users:       service_mocks.NewMockUserService(ctrl),
		payments:    service_mocks.NewMockPaymentService(ctrl),
		withdrawals: service_mocks.NewMockWithdrawalService(ctrl),
		credits:     service_mocks.NewMockCreditService(ctrl),
		affiliate:   service_mocks.NewMockAffiliateService(ctrl),
		payouts:     service_mocks.NewMockPayoutService(ctrl),
		leads:       service_mocks.NewMockLeadService(ctrl),
		wallets:     service_mocks.NewMockWalletService(ctrl),
	}
	h := NewHandler(Deps{
		Users:       m.users,
		Payments:    m.payments,
		Withdrawals: m.withdrawals,
		Credits:     m.credits,
		Affiliate:   m.affiliate,
		Payouts:     m.payouts,
		Leads:       m.leads,
		Wallets:     m.wallets,
		SecretKey:   "test",
	})
	return h, m
}

// authed builds a request as JWTMiddleware would hand it to a handler, with chi URL params set.
func authed(method, target string, body io.Reader, userID uuid.UUID, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithUserID(ctx, userID, "sid-test")
	return req.WithContext(ctx)
}
