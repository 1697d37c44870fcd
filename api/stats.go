package api

import (
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Stats counts the calculations served since the last report.
type Stats struct {
	mu       sync.Mutex
	served   map[string]int
	rejected map[string]int
}

func NewStats() *Stats {
	return &Stats{
		served:   make(map[string]int),
		rejected: make(map[string]int),
	}
}

func (s *Stats) count(action string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.served[action]++
	} else {
		s.rejected[action]++
	}
}

// Snapshot returns the served and rejected counts per action and resets
// them.
func (s *Stats) Snapshot() (map[string]int, map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	served, rejected := s.served, s.rejected
	s.served = make(map[string]int)
	s.rejected = make(map[string]int)
	return served, rejected
}

// Report logs the counts of the last period.
func (s *Stats) Report() {
	served, rejected := s.Snapshot()
	if len(served) == 0 && len(rejected) == 0 {
		log.Debug("No calculation served")
		return
	}

	actions := make([]string, 0, len(served)+len(rejected))
	for a := range served {
		actions = append(actions, a)
	}
	for a := range rejected {
		if _, ok := served[a]; !ok {
			actions = append(actions, a)
		}
	}
	sort.Strings(actions)

	for _, a := range actions {
		log.WithFields(log.Fields{
			"action":   a,
			"served":   served[a],
			"rejected": rejected[a],
		}).Info("Calculations")
	}
}
