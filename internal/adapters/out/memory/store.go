// Package memory keeps fleet state in process memory.
//
// A Store is shared by every unit of work created from the same factory. A
// unit of work holds the store lock from Begin until Commit or Rollback, so
// transactions are serialized and a failed operation leaves no trace.
// Repository calls made outside of a transaction read and write the store
// directly.
package memory

import (
	"slices"
	"strings"

	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/core/domain/model/rocket"

	"github.com/sasha-s/go-deadlock"
)

// Store holds committed rockets and missions in insertion order.
type Store struct {
	mu deadlock.RWMutex

	rockets      map[string]*rocket.Rocket
	rocketOrder  []string
	missions     map[string]*mission.Mission
	missionOrder []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		rockets:  make(map[string]*rocket.Rocket),
		missions: make(map[string]*mission.Mission),
	}
}

func (s *Store) putRocket(r *rocket.Rocket) {
	key := r.Name().String()
	if _, ok := s.rockets[key]; !ok {
		s.rocketOrder = append(s.rocketOrder, key)
	}
	s.rockets[key] = r
}

func (s *Store) putMission(m *mission.Mission) {
	key := m.Name().String()
	if _, ok := s.missions[key]; !ok {
		s.missionOrder = append(s.missionOrder, key)
	}
	s.missions[key] = m
}

// writer is implemented by Store for direct writes and by changeSet for
// buffered ones.
type writer interface {
	putRocket(r *rocket.Rocket)
	putMission(m *mission.Mission)
}

// changeSet buffers the writes of one transaction. New names keep the order
// of their first write.
type changeSet struct {
	rockets      map[string]*rocket.Rocket
	rocketOrder  []string
	missions     map[string]*mission.Mission
	missionOrder []string
}

func newChangeSet() *changeSet {
	return &changeSet{
		rockets:  make(map[string]*rocket.Rocket),
		missions: make(map[string]*mission.Mission),
	}
}

func (c *changeSet) putRocket(r *rocket.Rocket) {
	key := r.Name().String()
	if _, ok := c.rockets[key]; !ok {
		c.rocketOrder = append(c.rocketOrder, key)
	}
	c.rockets[key] = r
}

func (c *changeSet) putMission(m *mission.Mission) {
	key := m.Name().String()
	if _, ok := c.missions[key]; !ok {
		c.missionOrder = append(c.missionOrder, key)
	}
	c.missions[key] = m
}

func (c *changeSet) applyTo(s *Store) {
	for _, key := range c.rocketOrder {
		s.putRocket(c.rockets[key])
	}
	for _, key := range c.missionOrder {
		s.putMission(c.missions[key])
	}
}

// view resolves reads against the store with pending writes layered on top.
type view struct {
	store   *Store
	pending *changeSet
}

func (v view) rocket(key string) (*rocket.Rocket, bool) {
	if v.pending != nil {
		if r, ok := v.pending.rockets[key]; ok {
			return r, true
		}
	}
	r, ok := v.store.rockets[key]
	return r, ok
}

func (v view) mission(key string) (*mission.Mission, bool) {
	if v.pending != nil {
		if m, ok := v.pending.missions[key]; ok {
			return m, true
		}
	}
	m, ok := v.store.missions[key]
	return m, ok
}

func (v view) rocketKeys() []string {
	keys := slices.Clone(v.store.rocketOrder)
	if v.pending == nil {
		return keys
	}
	for _, key := range v.pending.rocketOrder {
		if _, ok := v.store.rockets[key]; !ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func (v view) missionKeys() []string {
	keys := slices.Clone(v.store.missionOrder)
	if v.pending == nil {
		return keys
	}
	for _, key := range v.pending.missionOrder {
		if _, ok := v.store.missions[key]; !ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func compareMissions(a, b *mission.Mission) int {
	if a.AllRocketsCount() != b.AllRocketsCount() {
		return b.AllRocketsCount() - a.AllRocketsCount()
	}
	return strings.Compare(b.Name().String(), a.Name().String())
}
