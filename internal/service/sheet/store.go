package sheet

import (
	"sync"

	"github.com/dmoura/edubot/internal/model/sheet"
)

// StartingHP is the hit point total of a freshly created sheet.
const StartingHP = 100

// Store keeps one character sheet per user in memory. It is safe for
// concurrent use. Sheets never expire but do not survive a restart.
type Store struct {
	mu     sync.RWMutex
	sheets map[int64]sheet.Sheet
}

// NewStore bootstraps an empty in-memory store.
func NewStore() *Store {
	return &Store{sheets: make(map[int64]sheet.Sheet)}
}

// Create overwrites the user's sheet with a fresh one named name, at
// StartingHP and with an empty inventory.
func (s *Store) Create(userID int64, name string) sheet.Sheet {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := sheet.Sheet{UserID: userID, Name: name, HP: StartingHP}
	s.sheets[userID] = created
	return created
}

// Get returns a copy of the user's sheet when one exists.
func (s *Store) Get(userID int64) (sheet.Sheet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current, ok := s.sheets[userID]
	if !ok {
		return sheet.Sheet{}, false
	}
	current.Inventory = append([]string(nil), current.Inventory...)
	return current, true
}

// AddItem appends item to the user's inventory. It reports false when the
// user has no sheet.
func (s *Store) AddItem(userID int64, item string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sheets[userID]
	if !ok {
		return false
	}
	current.Inventory = append(current.Inventory, item)
	s.sheets[userID] = current
	return true
}

// Damage subtracts amount from the user's hit points, clamping at zero,
// and returns the updated sheet.
func (s *Store) Damage(userID int64, amount int) (sheet.Sheet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sheets[userID]
	if !ok {
		return sheet.Sheet{}, false
	}
	current.HP -= amount
	if current.HP < 0 {
		current.HP = 0
	}
	s.sheets[userID] = current
	return current, true
}

// Heal adds amount to the user's hit points and returns the updated sheet.
func (s *Store) Heal(userID int64, amount int) (sheet.Sheet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sheets[userID]
	if !ok {
		return sheet.Sheet{}, false
	}
	current.HP += amount
	s.sheets[userID] = current
	return current, true
}
