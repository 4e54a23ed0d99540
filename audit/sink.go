package audit

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
	"github.com/givepool/donation-interceptor/log"
)

const (
	// maxTrackedPools bounds the number of pools with in-memory record
	// buffers. Least-recently-donating pools are evicted first.
	maxTrackedPools = 1024

	// recentRecordsPerPool bounds the in-memory buffer per pool.
	recentRecordsPerPool = 100
)

var (
	donationsWithheld = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donation_withheld_total",
			Help: "Total number of donations withheld",
		},
		[]string{"token"},
	)
	donationAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donation_amount_total",
			Help: "Total donation amount withheld, in smallest denomination units",
		},
		[]string{"token"},
	)
	configUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donation_config_updates_total",
			Help: "Total number of donation config updates",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(donationsWithheld)
	prometheus.MustRegister(donationAmount)
	prometheus.MustRegister(configUpdates)
}

var _ mvc.EventEmitter = &Sink{}

// Sink is the append-only audit output channel. Events are written
// synchronously by the interceptor after a successful withholding, so
// ordering per swap is preserved. Emitted events are not queryable state;
// the recent-records buffer exists only as an operator convenience.
type Sink struct {
	logger log.Logger

	mu     sync.Mutex
	recent *lru.Cache[uint64, []domain.DonationRecord]
}

// NewSink creates a new audit sink.
func NewSink(logger log.Logger) (*Sink, error) {
	recent, err := lru.New[uint64, []domain.DonationRecord](maxTrackedPools)
	if err != nil {
		return nil, err
	}

	return &Sink{
		logger: logger,
		recent: recent,
	}, nil
}

// EmitDonation implements mvc.EventEmitter.
func (s *Sink) EmitDonation(record domain.DonationRecord) {
	donationsWithheld.WithLabelValues(record.DonationToken).Inc()

	amount, err := record.DonationAmount.ToLegacyDec().Float64()
	if err == nil {
		donationAmount.WithLabelValues(record.DonationToken).Add(amount)
	}

	s.logger.Info("donation withheld",
		zap.String("user", string(record.User)),
		zap.Uint64("pool_id", record.PoolID),
		zap.String("donation_token", record.DonationToken),
		zap.String("donation_amount", record.DonationAmount.String()),
		zap.String("swap_amount", record.SwapAmount.String()),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	records, _ := s.recent.Get(record.PoolID)
	records = append(records, record)
	if len(records) > recentRecordsPerPool {
		records = records[len(records)-recentRecordsPerPool:]
	}
	s.recent.Add(record.PoolID, records)
}

// EmitConfigUpdate implements mvc.EventEmitter.
func (s *Sink) EmitConfigUpdate(update domain.ConfigUpdate) {
	configUpdates.WithLabelValues(string(update.Kind)).Inc()

	s.logger.Info("donation config updated",
		zap.Uint64("pool_id", update.PoolID),
		zap.String("kind", string(update.Kind)),
		zap.Uint64("new_bps", update.NewBps),
		zap.String("new_recipient", string(update.NewRecipient)),
		zap.Bool("enabled", update.Enabled),
	)
}

// RecentDonations implements mvc.EventEmitter.
func (s *Sink) RecentDonations(poolID uint64) []domain.DonationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.recent.Get(poolID)
	if !ok {
		return nil
	}

	result := make([]domain.DonationRecord, len(records))
	copy(result, records)
	return result
}
