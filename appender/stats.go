package appender

import "sync/atomic"

// Stats tracks appender statistics
type Stats struct {
	// ProcessedTotal counts events written
	ProcessedTotal uint64
	// FilteredTotal counts events below the appender's level
	FilteredTotal uint64
	// FailedTotal counts events whose write returned an error
	FailedTotal uint64
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.FilteredTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.FilteredTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed uint64
	Filtered  uint64
	Failed    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: atomic.LoadUint64(&s.ProcessedTotal),
		Filtered:  atomic.LoadUint64(&s.FilteredTotal),
		Failed:    atomic.LoadUint64(&s.FailedTotal),
	}
}

func (s *Stats) record(err error) error {
	if err != nil {
		s.IncrementFailed()
		return err
	}
	s.IncrementProcessed()
	return nil
}
