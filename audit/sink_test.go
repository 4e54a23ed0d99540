package audit_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/suite"

	"github.com/givepool/donation-interceptor/audit"
	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/log"
)

type SinkTestSuite struct {
	suite.Suite
	sink *audit.Sink
}

const testPoolID = uint64(3)

func TestSinkTestSuite(t *testing.T) {
	suite.Run(t, new(SinkTestSuite))
}

func (suite *SinkTestSuite) SetupTest() {
	sink, err := audit.NewSink(&log.NoOpLogger{})
	suite.Require().NoError(err)
	suite.sink = sink
}

func makeRecord(poolID uint64, amount int64) domain.DonationRecord {
	return domain.DonationRecord{
		User:           "swapper1",
		PoolID:         poolID,
		DonationToken:  "token0",
		DonationAmount: math.NewInt(amount),
		SwapAmount:     math.NewInt(amount * 999),
	}
}

func (suite *SinkTestSuite) TestRecentDonations() {
	// Unknown pool has no records.
	assert.Equal(suite.T(), 0, len(suite.sink.RecentDonations(testPoolID)))

	suite.sink.EmitDonation(makeRecord(testPoolID, 1000))
	suite.sink.EmitDonation(makeRecord(testPoolID, 2000))
	suite.sink.EmitDonation(makeRecord(testPoolID+1, 3000))

	records := suite.sink.RecentDonations(testPoolID)
	suite.Require().Equal(2, len(records))

	// Ordering per pool is emission order.
	assert.True(suite.T(), records[0].DonationAmount.Equal(math.NewInt(1000)))
	assert.True(suite.T(), records[1].DonationAmount.Equal(math.NewInt(2000)))

	// Records do not leak across pools.
	otherRecords := suite.sink.RecentDonations(testPoolID + 1)
	suite.Require().Equal(1, len(otherRecords))
	assert.True(suite.T(), otherRecords[0].DonationAmount.Equal(math.NewInt(3000)))
}

func (suite *SinkTestSuite) TestRecentDonations_Bounded() {
	for i := int64(0); i < 150; i++ {
		suite.sink.EmitDonation(makeRecord(testPoolID, 1000+i))
	}

	records := suite.sink.RecentDonations(testPoolID)
	suite.Require().Equal(100, len(records))

	// Oldest records were dropped.
	assert.True(suite.T(), records[0].DonationAmount.Equal(math.NewInt(1050)))
	assert.True(suite.T(), records[99].DonationAmount.Equal(math.NewInt(1149)))
}

func (suite *SinkTestSuite) TestRecentDonations_ReturnsCopy() {
	suite.sink.EmitDonation(makeRecord(testPoolID, 1000))

	records := suite.sink.RecentDonations(testPoolID)
	suite.Require().Equal(1, len(records))
	records[0].DonationAmount = math.NewInt(999_999)

	fresh := suite.sink.RecentDonations(testPoolID)
	assert.True(suite.T(), fresh[0].DonationAmount.Equal(math.NewInt(1000)))
}
