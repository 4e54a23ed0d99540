package mocks

import (
	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
)

var _ mvc.EventEmitter = &EventEmitterMock{}

// EventEmitterMock records emitted audit events in order.
type EventEmitterMock struct {
	DonationRecords []domain.DonationRecord
	ConfigUpdates   []domain.ConfigUpdate
}

func (m *EventEmitterMock) EmitDonation(record domain.DonationRecord) {
	m.DonationRecords = append(m.DonationRecords, record)
}

func (m *EventEmitterMock) EmitConfigUpdate(update domain.ConfigUpdate) {
	m.ConfigUpdates = append(m.ConfigUpdates, update)
}

func (m *EventEmitterMock) RecentDonations(poolID uint64) []domain.DonationRecord {
	records := make([]domain.DonationRecord, 0, len(m.DonationRecords))
	for _, record := range m.DonationRecords {
		if record.PoolID == poolID {
			records = append(records, record)
		}
	}
	return records
}
