package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/math"
	"github.com/alecthomas/assert/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mocks"
	donationhttp "github.com/givepool/donation-interceptor/donation/delivery/http"
	"github.com/givepool/donation-interceptor/log"
)

type DonationHandlerTestSuite struct {
	suite.Suite
}

const (
	testPoolID      = uint64(42)
	testCaller      = "manager1"
	testCallHeader  = "X-Caller-Address"
	testPoolIDParam = "42"
)

func TestDonationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DonationHandlerTestSuite))
}

func defaultConfig() domain.PoolDonationConfig {
	return domain.NewDefaultPoolDonationConfig("charity1")
}

// newRequest builds an echo context routed the way the server routes it.
func newRequest(e *echo.Echo, method, target, caller string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	if caller != "" {
		req.Header.Set(testCallHeader, caller)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

func (suite *DonationHandlerTestSuite) TestGetConfig() {
	mock := &mocks.GovernanceUsecaseMock{
		GetConfigFunc: func(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error) {
			suite.Require().Equal(testPoolID, poolID)
			return defaultConfig(), nil
		},
	}

	e := echo.New()
	donationhttp.NewDonationHandler(e, mock, &log.NoOpLogger{})

	c, rec := newRequest(e, http.MethodGet, "/donation/config/42", "")
	c.SetPath("/donation/config/:id")
	c.SetParamNames("id")
	c.SetParamValues(testPoolIDParam)

	handler := &donationhttp.DonationHandler{GUsecase: mock}
	suite.Require().NoError(handler.GetConfig(c))
	suite.Require().Equal(http.StatusOK, rec.Code)

	var config domain.PoolDonationConfig
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &config))
	assert.Equal(suite.T(), domain.DefaultDonationBps, config.DonationBps)
	assert.Equal(suite.T(), domain.Address("charity1"), config.Recipient)
}

func (suite *DonationHandlerTestSuite) TestGetConfig_InvalidPoolID() {
	mock := &mocks.GovernanceUsecaseMock{}

	e := echo.New()
	c, rec := newRequest(e, http.MethodGet, "/donation/config/abc", "")
	c.SetPath("/donation/config/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	handler := &donationhttp.DonationHandler{GUsecase: mock}
	suite.Require().NoError(handler.GetConfig(c))
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *DonationHandlerTestSuite) TestSetRate() {
	var gotBps uint64
	var gotCaller domain.Address

	mock := &mocks.GovernanceUsecaseMock{
		SetRateFunc: func(ctx context.Context, poolID uint64, newBps uint64, caller domain.Address) error {
			gotBps = newBps
			gotCaller = caller
			return nil
		},
		GetConfigFunc: func(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error) {
			config := defaultConfig()
			config.DonationBps = 5000
			return config, nil
		},
	}

	e := echo.New()
	c, rec := newRequest(e, http.MethodPost, "/donation/config/42/rate?bps=5000", testCaller)
	c.SetPath("/donation/config/:id/rate")
	c.SetParamNames("id")
	c.SetParamValues(testPoolIDParam)

	handler := &donationhttp.DonationHandler{GUsecase: mock}
	suite.Require().NoError(handler.SetRate(c))
	suite.Require().Equal(http.StatusOK, rec.Code)

	assert.Equal(suite.T(), uint64(5000), gotBps)
	assert.Equal(suite.T(), domain.Address(testCaller), gotCaller)

	var config domain.PoolDonationConfig
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &config))
	assert.Equal(suite.T(), uint64(5000), config.DonationBps)
}

func (suite *DonationHandlerTestSuite) TestSetRate_Unauthorized() {
	mock := &mocks.GovernanceUsecaseMock{
		SetRateFunc: func(ctx context.Context, poolID uint64, newBps uint64, caller domain.Address) error {
			return domain.UnauthorizedError{Caller: caller, RequiredRole: domain.RoleDonationManager}
		},
	}

	e := echo.New()
	c, rec := newRequest(e, http.MethodPost, "/donation/config/42/rate?bps=5000", "guardian1")
	c.SetPath("/donation/config/:id/rate")
	c.SetParamNames("id")
	c.SetParamValues(testPoolIDParam)

	handler := &donationhttp.DonationHandler{GUsecase: mock}
	suite.Require().NoError(handler.SetRate(c))
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *DonationHandlerTestSuite) TestSetRate_MissingCaller() {
	mock := &mocks.GovernanceUsecaseMock{}

	e := echo.New()
	c, rec := newRequest(e, http.MethodPost, "/donation/config/42/rate?bps=5000", "")
	c.SetPath("/donation/config/:id/rate")
	c.SetParamNames("id")
	c.SetParamValues(testPoolIDParam)

	handler := &donationhttp.DonationHandler{GUsecase: mock}
	suite.Require().NoError(handler.SetRate(c))
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *DonationHandlerTestSuite) TestSetRate_MissingBps() {
	mock := &mocks.GovernanceUsecaseMock{}

	e := echo.New()
	c, rec := newRequest(e, http.MethodPost, "/donation/config/42/rate", testCaller)
	c.SetPath("/donation/config/:id/rate")
	c.SetParamNames("id")
	c.SetParamValues(testPoolIDParam)

	handler := &donationhttp.DonationHandler{GUsecase: mock}
	suite.Require().NoError(handler.SetRate(c))
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *DonationHandlerTestSuite) TestSetRecipient() {
	var gotRecipient domain.Address

	mock := &mocks.GovernanceUsecaseMock{
		SetRecipientFunc: func(ctx context.Context, poolID uint64, newRecipient domain.Address, caller domain.Address) error {
			gotRecipient = newRecipient
			return nil
		},
		GetConfigFunc: func(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error) {
			config := defaultConfig()
			config.Recipient = "charity2"
			return config, nil
		},
	}

	e := echo.New()
	c, rec := newRequest(e, http.MethodPost, "/donation/config/42/recipient?recipient=charity2", testCaller)
	c.SetPath("/donation/config/:id/recipient")
	c.SetParamNames("id")
	c.SetParamValues(testPoolIDParam)

	handler := &donationhttp.DonationHandler{GUsecase: mock}
	suite.Require().NoError(handler.SetRecipient(c))
	suite.Require().Equal(http.StatusOK, rec.Code)
	assert.Equal(suite.T(), domain.Address("charity2"), gotRecipient)
}

func (suite *DonationHandlerTestSuite) TestSetEnabled() {
	var gotEnabled bool

	mock := &mocks.GovernanceUsecaseMock{
		SetEnabledFunc: func(ctx context.Context, poolID uint64, enabled bool, caller domain.Address) error {
			gotEnabled = enabled
			return nil
		},
		GetConfigFunc: func(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error) {
			config := defaultConfig()
			config.Enabled = false
			return config, nil
		},
	}

	e := echo.New()
	c, rec := newRequest(e, http.MethodPost, "/donation/config/42/enabled?enabled=false", "guardian1")
	c.SetPath("/donation/config/:id/enabled")
	c.SetParamNames("id")
	c.SetParamValues(testPoolIDParam)

	handler := &donationhttp.DonationHandler{GUsecase: mock}
	suite.Require().NoError(handler.SetEnabled(c))
	suite.Require().Equal(http.StatusOK, rec.Code)
	assert.False(suite.T(), gotEnabled)

	var config domain.PoolDonationConfig
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &config))
	assert.False(suite.T(), config.Enabled)
}

func (suite *DonationHandlerTestSuite) TestGetRecentRecords() {
	record := domain.DonationRecord{
		User:           "swapper1",
		PoolID:         testPoolID,
		DonationToken:  "token0",
		DonationAmount: math.NewInt(1000),
		SwapAmount:     math.NewInt(999_000),
	}

	mock := &mocks.GovernanceUsecaseMock{
		RecentDonationsFunc: func(ctx context.Context, poolID uint64) []domain.DonationRecord {
			if poolID == testPoolID {
				return []domain.DonationRecord{record}
			}
			return nil
		},
	}

	e := echo.New()
	c, rec := newRequest(e, http.MethodGet, "/donation/records/42/recent", "")
	c.SetPath("/donation/records/:id/recent")
	c.SetParamNames("id")
	c.SetParamValues(testPoolIDParam)

	handler := &donationhttp.DonationHandler{GUsecase: mock}
	suite.Require().NoError(handler.GetRecentRecords(c))
	suite.Require().Equal(http.StatusOK, rec.Code)

	var records []domain.DonationRecord
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &records))
	suite.Require().Equal(1, len(records))
	assert.Equal(suite.T(), record.User, records[0].User)
	assert.True(suite.T(), records[0].DonationAmount.Equal(math.NewInt(1000)))

	// Empty result marshals to an empty array rather than null.
	c2, rec2 := newRequest(e, http.MethodGet, "/donation/records/7/recent", "")
	c2.SetPath("/donation/records/:id/recent")
	c2.SetParamNames("id")
	c2.SetParamValues("7")

	suite.Require().NoError(handler.GetRecentRecords(c2))
	assert.Equal(suite.T(), "[]\n", rec2.Body.String())
}
