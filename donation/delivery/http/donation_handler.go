package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
	"github.com/givepool/donation-interceptor/log"
)

// DonationHandler represent the httphandler for donation governance
type DonationHandler struct {
	GUsecase mvc.GovernanceUsecase
	logger   log.Logger
}

const donationResource = "/donation"

// callerHeader carries the governance caller's address. The proof of role
// behind it (signature verification, mTLS identity) is supplied by the
// deployment's ingress, not by this handler.
const callerHeader = "X-Caller-Address"

func formatDonationResource(resource string) string {
	return donationResource + resource
}

// NewDonationHandler will initialize the donation/ resources endpoint
func NewDonationHandler(e *echo.Echo, gu mvc.GovernanceUsecase, logger log.Logger) {
	handler := &DonationHandler{
		GUsecase: gu,
		logger:   logger,
	}
	e.GET(formatDonationResource("/config/:id"), handler.GetConfig)
	e.POST(formatDonationResource("/config/:id/rate"), handler.SetRate)
	e.POST(formatDonationResource("/config/:id/recipient"), handler.SetRecipient)
	e.POST(formatDonationResource("/config/:id/enabled"), handler.SetEnabled)
	e.GET(formatDonationResource("/records/:id/recent"), handler.GetRecentRecords)
}

// @Summary Pool Donation Config
// @Description returns the effective donation config for the given pool.
// @Produce  json
// @Param  id  path  int  true  "Pool ID"
// @Success 200  {object}  domain.PoolDonationConfig  "The effective donation config"
// @Router /donation/config/{id} [get]
func (a *DonationHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := getValidPoolID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	config, err := a.GUsecase.GetConfig(ctx, poolID)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, config)
}

// @Summary Set Donation Rate
// @Description updates the donation rate for the pool. Requires the donation-manager role.
// @Produce  json
// @Param  id  path  int  true  "Pool ID"
// @Param  bps  query  int  true  "New donation rate over the 1,000,000 denominator"
// @Success 200  {object}  domain.PoolDonationConfig  "The updated donation config"
// @Router /donation/config/{id}/rate [post]
func (a *DonationHandler) SetRate(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := getValidPoolID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	caller, err := getValidCaller(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	bpsStr := c.QueryParam("bps")
	if len(bpsStr) == 0 {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: "bps is required"})
	}

	bps, err := strconv.ParseUint(bpsStr, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := a.GUsecase.SetRate(ctx, poolID, bps, caller); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return a.GetConfig(c)
}

// @Summary Set Donation Recipient
// @Description updates the donation recipient for the pool. Requires the donation-manager role.
// @Produce  json
// @Param  id  path  int  true  "Pool ID"
// @Param  recipient  query  string  true  "New recipient address"
// @Success 200  {object}  domain.PoolDonationConfig  "The updated donation config"
// @Router /donation/config/{id}/recipient [post]
func (a *DonationHandler) SetRecipient(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := getValidPoolID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	caller, err := getValidCaller(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	recipient := c.QueryParam("recipient")
	if len(recipient) == 0 {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: "recipient is required"})
	}

	if err := a.GUsecase.SetRecipient(ctx, poolID, domain.Address(recipient), caller); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return a.GetConfig(c)
}

// @Summary Toggle Donation Collection
// @Description enables or disables donation collection for the pool. Requires the guardian role.
// @Produce  json
// @Param  id  path  int  true  "Pool ID"
// @Param  enabled  query  bool  true  "Whether donation collection is enabled"
// @Success 200  {object}  domain.PoolDonationConfig  "The updated donation config"
// @Router /donation/config/{id}/enabled [post]
func (a *DonationHandler) SetEnabled(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := getValidPoolID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	caller, err := getValidCaller(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	enabledStr := c.QueryParam("enabled")
	if len(enabledStr) == 0 {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: "enabled is required"})
	}

	enabled, err := strconv.ParseBool(enabledStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := a.GUsecase.SetEnabled(ctx, poolID, enabled, caller); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return a.GetConfig(c)
}

// @Summary Recent Donation Records
// @Description returns the most recent donation records retained in memory for the pool.
// @Produce  json
// @Param  id  path  int  true  "Pool ID"
// @Success 200  {array}  domain.DonationRecord  "Recent donation records"
// @Router /donation/records/{id}/recent [get]
func (a *DonationHandler) GetRecentRecords(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := getValidPoolID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	records := a.GUsecase.RecentDonations(ctx, poolID)
	if records == nil {
		records = []domain.DonationRecord{}
	}

	return c.JSON(http.StatusOK, records)
}

// getValidPoolID returns the pool ID from the path if it is valid.
func getValidPoolID(c echo.Context) (uint64, error) {
	idStr := c.Param("id")
	return strconv.ParseUint(idStr, 10, 64)
}

// getValidCaller returns the caller address from the request header if present.
func getValidCaller(c echo.Context) (domain.Address, error) {
	caller := c.Request().Header.Get(callerHeader)
	if len(caller) == 0 {
		return "", domain.ErrBadParamInput
	}
	return domain.Address(caller), nil
}
